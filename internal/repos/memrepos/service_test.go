package memrepos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func svc(title string, order int) *types.Service {
	return &types.Service{
		ID:        uuid.New(),
		Title:     title,
		Order:     order,
		CreatedAt: time.Now(),
	}
}

func TestServiceRepoOrdering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewServiceRepo(testLogger())

	a := svc("third", 5)
	b := svc("first", 1)
	c := svc("second", 1)
	if err := repo.Create(ctx, []*types.Service{a, b, c}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 services, got %d", len(got))
	}
	// Equal order values keep insertion order: b before c.
	want := []string{"first", "second", "third"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, got[i].Title)
		}
	}
}

func TestServiceRepoSaveKeepsPosition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewServiceRepo(testLogger())

	a := svc("a", 0)
	b := svc("b", 0)
	if err := repo.Create(ctx, []*types.Service{a, b}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	a.Title = "a updated"
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if got[0].ID != a.ID || got[0].Title != "a updated" {
		t.Errorf("expected updated entry to keep first position, got %q", got[0].Title)
	}
	if count, _ := repo.Count(ctx); count != 2 {
		t.Errorf("expected count 2 after save, got %d", count)
	}
}

func TestServiceRepoGetByIDNotFound(t *testing.T) {
	t.Parallel()
	repo := NewServiceRepo(testLogger())
	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceRepoDeleteMissingIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewServiceRepo(testLogger())

	a := svc("a", 0)
	if err := repo.Create(ctx, []*types.Service{a}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Delete(ctx, uuid.New()); err != nil {
		t.Fatalf("deleting a missing id should succeed, got %v", err)
	}
	if count, _ := repo.Count(ctx); count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if count, _ := repo.Count(ctx); count != 0 {
		t.Errorf("expected count 0 after delete, got %d", count)
	}
}
