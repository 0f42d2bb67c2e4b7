package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetLessonID(data.LessonID).
		SetAction(data.Action)
	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetLessonID(data.LessonID).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetPassed(data.Passed).
		SetAttempt(data.Attempt).
		SetFirstPass(data.FirstPass)
	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}
