package store

import (
	"context"
	"fmt"

	"github.com/Rafi-Luffy/ManaQuiz/ent"
	"github.com/Rafi-Luffy/ManaQuiz/ent/attemptevent"
)

// attemptRepo implements AttemptRepo backed by ent and the global
// sequence counter.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetExamTitle(data.ExamTitle).
		SetCategory(data.Category).
		SetDifficulty(data.Difficulty).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectAnswers(data.CorrectAnswers).
		SetScore(data.Score).
		SetTimeSpent(data.TimeSpent).
		SetSource(data.Source)

	if data.Subcategory != "" {
		builder = builder.SetSubcategory(data.Subcategory)
	}
	if data.FileName != "" {
		builder = builder.SetFileName(data.FileName)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) List(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Asc(attemptevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Category != "" {
		q = q.Where(attemptevent.Category(opts.Category))
	}
	if !opts.From.IsZero() {
		q = q.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(attemptevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	records := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AttemptEventData: AttemptEventData{
				AttemptID:      e.AttemptID,
				ExamTitle:      e.ExamTitle,
				Category:       e.Category,
				Subcategory:    e.Subcategory,
				Difficulty:     e.Difficulty,
				TotalQuestions: e.TotalQuestions,
				CorrectAnswers: e.CorrectAnswers,
				Score:          e.Score,
				TimeSpent:      e.TimeSpent,
				Source:         e.Source,
				FileName:       e.FileName,
			},
		})
	}
	return records, nil
}

func (r *attemptRepo) Count(ctx context.Context, category string) (int, error) {
	q := r.client.AttemptEvent.Query()
	if category != "" {
		q = q.Where(attemptevent.Category(category))
	}
	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempt events: %w", err)
	}
	return n, nil
}
