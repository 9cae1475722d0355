package store

import (
	"context"
	"fmt"
	"time"
)

// snapshotsToKeep bounds how many pre-reset snapshots are retained.
const snapshotsToKeep = 5

// ResetProgress wipes all learner progress: the event log, review
// schedules, and mastery records. Questions survive a reset. A snapshot of
// the derived state is taken first so the pre-reset state stays auditable.
func (s *Store) ResetProgress(ctx context.Context) error {
	if err := s.snapshotBeforeReset(ctx); err != nil {
		return fmt.Errorf("snapshot before reset: %w", err)
	}

	if _, err := s.client.AnswerEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete answer events: %w", err)
	}
	if _, err := s.client.TestAttemptEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete test attempts: %w", err)
	}
	if _, err := s.client.SessionEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete session events: %w", err)
	}
	if _, err := s.client.AchievementEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete achievement events: %w", err)
	}
	if _, err := s.client.ReviewSchedule.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete review schedules: %w", err)
	}
	if _, err := s.client.CategoryMastery.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete category mastery: %w", err)
	}
	return nil
}

func (s *Store) snapshotBeforeReset(ctx context.Context) error {
	mastery, err := s.MasteryRepo().AllCategoryMastery(ctx)
	if err != nil {
		return err
	}
	schedules, err := s.ScheduleRepo().AllSchedules(ctx)
	if err != nil {
		return err
	}

	var seq int64
	err = s.db.QueryRowContext(ctx,
		`SELECT next_val - 1 FROM global_sequence WHERE id = 1`,
	).Scan(&seq)
	if err != nil {
		return fmt.Errorf("read sequence: %w", err)
	}

	repo := s.SnapshotRepo()
	err = repo.Save(ctx, &Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		Data: SnapshotData{
			Version:   1,
			Mastery:   mastery,
			Schedules: schedules,
		},
	})
	if err != nil {
		return err
	}
	return repo.Prune(ctx, snapshotsToKeep)
}
