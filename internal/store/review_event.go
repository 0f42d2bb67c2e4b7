package store

import (
	"context"
	"fmt"

	"github.com/ksander/retain/ent"
	"github.com/ksander/retain/ent/reviewevent"
)

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetItemID(data.ItemID).
		SetLessonID(data.LessonID).
		SetQuality(data.Quality).
		SetIntervalDays(data.IntervalDays).
		SetEaseFactor(data.EaseFactor).
		SetDueAt(data.DueAt)
	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendRatingEvent(ctx context.Context, data RatingEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RatingEvent.Create().
		SetSequence(seqNum).
		SetUnitID(data.UnitID).
		SetOldRating(data.OldRating).
		SetNewRating(data.NewRating).
		SetExpected(data.Expected).
		SetObserved(data.Observed)
	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save rating event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentReviewAccuracy(ctx context.Context, itemID string, lastN int) (float64, int, error) {
	events, err := r.client.ReviewEvent.Query().
		Where(reviewevent.ItemID(itemID)).
		Order(ent.Desc(reviewevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query review events: %w", err)
	}

	count := len(events)
	if count == 0 {
		return 0, 0, nil
	}

	passed := 0
	for _, e := range events {
		if e.Quality >= 3 {
			passed++
		}
	}
	return float64(passed) / float64(count), count, nil
}
