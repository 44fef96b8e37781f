package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/types"
)

// ContactRepo is append-only: submissions are never updated or deleted
// through the API.
type ContactRepo interface {
	Create(ctx context.Context, submission *types.ContactSubmission) error
	GetAll(ctx context.Context) ([]*types.ContactSubmission, error)
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	return &contactRepo{db: db, log: baseLog.With("repo", "ContactRepo")}
}

func (cr *contactRepo) Create(ctx context.Context, submission *types.ContactSubmission) error {
	return cr.db.WithContext(ctx).Create(submission).Error
}

func (cr *contactRepo) GetAll(ctx context.Context) ([]*types.ContactSubmission, error) {
	var results []*types.ContactSubmission
	if err := cr.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
