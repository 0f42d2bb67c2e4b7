package cmd

import (
	"fmt"
	"time"

	"github.com/ksander/retain/internal/catalog"
	"github.com/ksander/retain/internal/engine"
	"github.com/ksander/retain/internal/store"
	"github.com/spf13/cobra"
)

// session bundles one CLI invocation's engine and its backing store.
type session struct {
	engine *engine.Engine
	store  *store.Store
}

// openSession opens the store, loads the latest snapshot, and builds an
// engine over it. The caller must close the returned session.
func openSession(cmd *cobra.Command) (*session, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	snap, err := st.SnapshotRepo().Latest(cmd.Context())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	cfg := engine.ConfigFromEnv()
	var e *engine.Engine
	if snap != nil {
		e = engine.New(&snap.Data, cat, st.EventRepo(), cfg)
		e.LoadSeq(snap.Sequence)
	} else {
		e = engine.New(nil, cat, st.EventRepo(), cfg)
	}
	return &session{engine: e, store: st}, nil
}

// commit persists the engine state as a new snapshot and prunes old ones.
func (s *session) commit(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if err := s.engine.Commit(ctx, s.store.SnapshotRepo()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return s.store.SnapshotRepo().Prune(ctx, 10)
}

func (s *session) close() {
	s.store.Close()
}

// runStatus is the bare `retain` invocation: a one-screen summary of
// where the learner stands and what to do next.
func runStatus(cmd *cobra.Command) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	now := time.Now()
	rec := s.engine.Record()
	fmt.Printf("XP %d | streak %d day(s) | today %d/%d XP\n", rec.XP, rec.Streak, rec.DailyXP, rec.DailyGoal)

	sess := s.engine.ReviewSession(now)
	if sess.TotalDue > 0 {
		fmt.Printf("Reviews due: %d (%s priority). Run `retain due`.\n", sess.TotalDue, sess.Priority)
	} else {
		fmt.Println("No reviews due.")
	}

	if u, ok := s.engine.NextUnit(); ok {
		fmt.Printf("Next up: %s (%s)\n", u.Name, u.ID)
	} else {
		fmt.Println("All available lessons completed.")
	}
	return nil
}
