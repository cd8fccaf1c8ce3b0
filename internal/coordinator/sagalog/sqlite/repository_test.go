package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"alu_portal/internal/coordinator/sagalog"
)

func TestRepository_SaveAndRead(t *testing.T) {
	repo, err := Open(filepath.Join(t.TempDir(), "saga.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	for _, st := range []sagalog.Status{sagalog.StatusStarted, sagalog.StatusStepDone, sagalog.StatusCompleted} {
		payload := ""
		if st == sagalog.StatusStarted {
			payload = `{"items":2}`
		}
		if err := repo.Save(ctx, sagalog.NewEntry(ctx, "saga-1", st, "insert_order_header", payload, nil)); err != nil {
			t.Fatalf("save %s: %v", st, err)
		}
	}

	latest, err := repo.GetLatest(ctx, "saga-1")
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if latest.Status != sagalog.StatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", latest.Status)
	}

	history, err := repo.History(ctx, "saga-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 || history[0].Payload != `{"items":2}` || history[1].Payload != "" {
		t.Fatalf("unexpected history: %+v", history)
	}

	if _, err := repo.GetLatest(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
