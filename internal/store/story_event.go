package store

import (
	"context"
	"fmt"

	"github.com/devika/mathquest/ent"
	"github.com/devika/mathquest/ent/storyevent"
)

func (r *eventRepo) AppendStory(ctx context.Context, data StoryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StoryEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetHero(data.Hero).
		SetProblem(data.Problem).
		SetProblemType(data.ProblemType).
		SetAgeGroup(data.AgeGroup).
		SetSolvedLocally(data.SolvedLocally).
		SetAnswer(data.Answer).
		SetSource(data.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save story event: %w", err)
	}

	return nil
}

func (r *eventRepo) RecentStories(ctx context.Context, sessionID string, limit int) ([]StoryRecord, error) {
	q := r.client.StoryEvent.Query().
		Where(storyevent.SessionID(sessionID)).
		Order(ent.Desc(storyevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query story events: %w", err)
	}

	records := make([]StoryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, StoryRecord{
			Sequence:    row.Sequence,
			Timestamp:   row.Timestamp,
			Hero:        row.Hero,
			Problem:     row.Problem,
			ProblemType: row.ProblemType,
			Answer:      row.Answer,
		})
	}
	return records, nil
}
