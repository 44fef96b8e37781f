package memrepos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/carnage89/AlexeyR/internal/types"
)

func TestContactRepoListsNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewContactRepo(testLogger())

	base := time.Now()
	old := &types.ContactSubmission{ID: uuid.New(), Name: "old", CreatedAt: base.Add(-time.Hour)}
	mid := &types.ContactSubmission{ID: uuid.New(), Name: "mid", CreatedAt: base.Add(-time.Minute)}
	latest := &types.ContactSubmission{ID: uuid.New(), Name: "new", CreatedAt: base}
	for _, s := range []*types.ContactSubmission{mid, latest, old} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	want := []string{"new", "mid", "old"}
	if len(got) != len(want) {
		t.Fatalf("expected %d submissions, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, got[i].Name)
		}
	}
}
