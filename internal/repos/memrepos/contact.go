package memrepos

import (
	"context"
	"sort"

	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/repos"
	"github.com/carnage89/AlexeyR/internal/types"
)

type contactRepo struct {
	submissions *collection[types.ContactSubmission]
	log         *logger.Logger
}

func NewContactRepo(baseLog *logger.Logger) repos.ContactRepo {
	return &contactRepo{
		submissions: newCollection[types.ContactSubmission](),
		log:         baseLog.With("repo", "ContactRepo"),
	}
}

func (cr *contactRepo) Create(ctx context.Context, submission *types.ContactSubmission) error {
	cr.submissions.put(submission.ID, *submission)
	return nil
}

func (cr *contactRepo) GetAll(ctx context.Context) ([]*types.ContactSubmission, error) {
	submissions := cr.submissions.snapshot()
	// Newest first.
	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].CreatedAt.After(submissions[j].CreatedAt)
	})
	out := make([]*types.ContactSubmission, len(submissions))
	for i := range submissions {
		out[i] = &submissions[i]
	}
	return out, nil
}
