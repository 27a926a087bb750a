package contact

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/verandalabs/veranda-stays/backend/internal/cache"
	"github.com/verandalabs/veranda-stays/backend/internal/config"
	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
)

var (
	// ErrMessageNotFound is returned when a contact message does not exist
	ErrMessageNotFound = errors.New("contact message not found")

	// ErrInvalidStatus is returned for an unknown message status
	ErrInvalidStatus = errors.New("invalid message status")
)

// service implements the Service interface
type service struct {
	repo   Repository
	store  cache.Store
	tiers  cache.Tiers
	config *config.ContactConfig
	logger Logger
}

// NewService creates a new contact service
func NewService(repo Repository, store cache.Store, tiers cache.Tiers, config *config.ContactConfig, logger Logger) Service {
	return &service{
		repo:   repo,
		store:  store,
		tiers:  tiers,
		config: config,
		logger: logger,
	}
}

func (s *service) SubmitMessage(ctx context.Context, req SubmitMessageRequest) (*ContactMessage, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name", "Name is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, apperrors.NewValidationError("email", apperrors.ErrMsgInvalidEmail)
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, apperrors.NewValidationError("body", "Message body is required")
	}
	if len(req.Body) > s.config.MaxMessageLength {
		return nil, apperrors.NewValidationError("body", apperrors.ErrMsgMessageLength)
	}

	message := &ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
		Status:  StatusNew,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	s.logger.LogInfo("Contact message received", map[string]interface{}{
		"messageId": message.ID.String(),
		"subject":   message.Subject,
	})
	return message, nil
}

func (s *service) GetMessage(ctx context.Context, id uuid.UUID) (*ContactMessage, error) {
	key := cache.EntityKey(contactResource, id.String())
	if cached, ok := cache.GetTyped[*ContactMessage](ctx, s.store, key); ok {
		return cached, nil
	}

	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, message, s.tiers.Medium)
	return message, nil
}

func (s *service) ListMessages(ctx context.Context, opts FilterOptions) (*PaginatedMessages, error) {
	opts.normalize()
	key := cache.ListKey(contactResource, opts)
	if cached, ok := cache.GetTyped[*PaginatedMessages](ctx, s.store, key); ok {
		return cached, nil
	}

	messages, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &PaginatedMessages{
		Messages: messages,
		Total:    total,
		Page:     opts.Page,
		Limit:    opts.Limit,
	}
	s.store.Set(ctx, key, result, s.tiers.Short)
	return result, nil
}

func (s *service) MarkMessageStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := parseStatus(status)
	if err != nil {
		return err
	}

	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if message.Status == parsed {
		return nil
	}

	message.Status = parsed
	if err := s.repo.Update(ctx, message); err != nil {
		return err
	}

	s.invalidateMessage(ctx, id)
	s.logger.LogInfo("Contact message marked", map[string]interface{}{
		"messageId": id.String(),
		"status":    string(parsed),
	})
	return nil
}

func (s *service) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateMessage(ctx, id)
	s.logger.LogInfo("Contact message deleted", map[string]interface{}{
		"messageId": id.String(),
	})
	return nil
}

func (s *service) invalidateMessage(ctx context.Context, id uuid.UUID) {
	s.store.Delete(ctx, cache.EntityKey(contactResource, id.String()))
	s.invalidateLists(ctx)
}

func (s *service) invalidateLists(ctx context.Context) {
	s.store.DeletePattern(ctx, cache.ListPrefix(contactResource))
}

func parseStatus(raw string) (Status, error) {
	switch status := Status(strings.ToUpper(raw)); status {
	case StatusNew, StatusRead, StatusReplied:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
