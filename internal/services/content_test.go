package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/datatypes"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
	"github.com/carnage89/AlexeyR/internal/repos/memrepos"
)

func TestContentUpsertCreatesThenReplaces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	log := testLogger()
	content := NewContentService(log, memrepos.NewSiteContentRepo(log))

	created, err := content.Upsert(ctx, "about", datatypes.JSONMap{"title": "v1", "extra": "keep?"})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	replaced, err := content.Upsert(ctx, "about", datatypes.JSONMap{"title": "v2"})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if replaced.ID != created.ID {
		t.Errorf("replacing a section must keep the block id")
	}
	if _, ok := replaced.Content["extra"]; ok {
		t.Error("upsert replaces the whole payload, old keys must not survive")
	}
	if replaced.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("UpdatedAt must be refreshed on replace")
	}

	all, err := content.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one block for the section, got %d", len(all))
	}
}

func TestContentGetBySectionMissing(t *testing.T) {
	t.Parallel()
	log := testLogger()
	content := NewContentService(log, memrepos.NewSiteContentRepo(log))

	_, err := content.GetBySection(context.Background(), "missing")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
