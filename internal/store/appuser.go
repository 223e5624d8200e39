package store

import (
	"context"
	"fmt"

	"github.com/devika/mathquest/ent"
	"github.com/devika/mathquest/ent/appuser"
	"github.com/devika/mathquest/ent/usagerecord"
)

// appUserRepo implements AppUserRepo using the ent client.
type appUserRepo struct {
	client *ent.Client
}

func (r *appUserRepo) GetOrCreate(ctx context.Context, sessionID string) (*AppUser, error) {
	row, err := r.client.AppUser.Query().
		Where(appuser.SessionID(sessionID)).
		Only(ctx)
	if err == nil {
		return entAppUser(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query app user: %w", err)
	}

	row, err = r.client.AppUser.Create().
		SetSessionID(sessionID).
		Save(ctx)
	if err != nil {
		// Lost a create race; the row exists now.
		if ent.IsConstraintError(err) {
			row, err = r.client.AppUser.Query().
				Where(appuser.SessionID(sessionID)).
				Only(ctx)
			if err != nil {
				return nil, fmt.Errorf("re-query app user: %w", err)
			}
			return entAppUser(row), nil
		}
		return nil, fmt.Errorf("create app user: %w", err)
	}
	return entAppUser(row), nil
}

func (r *appUserRepo) UpdateSubscription(ctx context.Context, sessionID, customerID, subscriptionID, status string) error {
	if _, err := r.GetOrCreate(ctx, sessionID); err != nil {
		return err
	}

	_, err := r.client.AppUser.Update().
		Where(appuser.SessionID(sessionID)).
		SetStripeCustomerID(customerID).
		SetStripeSubscriptionID(subscriptionID).
		SetSubscriptionStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	return nil
}

func (r *appUserRepo) IncrementUsage(ctx context.Context, sessionID, day string) (int, error) {
	err := r.client.UsageRecord.Create().
		SetSessionID(sessionID).
		SetDay(day).
		SetCount(1).
		OnConflictColumns(usagerecord.FieldSessionID, usagerecord.FieldDay).
		Update(func(u *ent.UsageRecordUpsert) {
			u.AddCount(1)
		}).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("increment usage: %w", err)
	}
	return r.DailyUsage(ctx, sessionID, day)
}

func (r *appUserRepo) DailyUsage(ctx context.Context, sessionID, day string) (int, error) {
	row, err := r.client.UsageRecord.Query().
		Where(usagerecord.SessionID(sessionID), usagerecord.Day(day)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query usage: %w", err)
	}
	return row.Count, nil
}

func entAppUser(row *ent.AppUser) *AppUser {
	return &AppUser{
		SessionID:            row.SessionID,
		StripeCustomerID:     row.StripeCustomerID,
		StripeSubscriptionID: row.StripeSubscriptionID,
		SubscriptionStatus:   row.SubscriptionStatus,
		CreatedAt:            row.CreatedAt,
	}
}
