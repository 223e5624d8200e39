package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPurchase(ctx context.Context, data PurchaseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PurchaseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetItemID(data.ItemID).
		SetPrice(data.Price).
		SetCoinsAfter(data.CoinsAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save purchase event: %w", err)
	}

	return nil
}
