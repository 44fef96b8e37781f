package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/carnage89/AlexeyR/internal/clients/telegram"
	"github.com/carnage89/AlexeyR/internal/platform/logger"
	"github.com/carnage89/AlexeyR/internal/repos"
	"github.com/carnage89/AlexeyR/internal/types"
)

type ContactInput struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required"`
	Message string  `json:"message" binding:"required"`
	Status  *string `json:"status"`
}

// ContactService records contact-form submissions and forwards them to
// the Telegram sink. The submission is stored first; the notification
// runs on a background goroutine with its own deadline and its outcome
// is only logged, so a slow or broken sink never fails the request.
type ContactService interface {
	Create(ctx context.Context, in ContactInput) (*types.ContactSubmission, error)
	List(ctx context.Context) ([]*types.ContactSubmission, error)
}

type contactService struct {
	log         *logger.Logger
	contactRepo repos.ContactRepo
	notifier    telegram.Client
}

func NewContactService(log *logger.Logger, contactRepo repos.ContactRepo, notifier telegram.Client) ContactService {
	return &contactService{
		log:         log.With("service", "ContactService"),
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

func (cs *contactService) Create(ctx context.Context, in ContactInput) (*types.ContactSubmission, error) {
	status := "pending"
	if in.Status != nil && *in.Status != "" {
		status = *in.Status
	}
	submission := &types.ContactSubmission{
		ID:        uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if err := cs.contactRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	if cs.notifier != nil {
		go cs.notify(submission.Name, submission.Email, submission.Message)
	}
	return submission, nil
}

func (cs *contactService) List(ctx context.Context) ([]*types.ContactSubmission, error) {
	return cs.contactRepo.GetAll(ctx)
}

// notify makes the single delivery attempt. It deliberately does not
// use the request context: the HTTP response must not wait on the sink.
func (cs *contactService) notify(name, email, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := cs.notifier.NotifyContactSubmission(ctx, name, email, message); err != nil {
		cs.log.Warn("Telegram notification failed", "error", err)
		return
	}
	cs.log.Info("Telegram notification sent")
}
