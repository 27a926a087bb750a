package review

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/verandalabs/veranda-stays/backend/internal/cache"
	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
)

// ErrReviewNotFound is returned when a review does not exist
var ErrReviewNotFound = errors.New("review not found")

// service implements the Service interface
type service struct {
	repo   Repository
	store  cache.Store
	tiers  cache.Tiers
	stays  StayVerifier
	logger Logger
}

// NewService creates a new review service
func NewService(repo Repository, store cache.Store, tiers cache.Tiers, stays StayVerifier, logger Logger) Service {
	return &service{
		repo:   repo,
		store:  store,
		tiers:  tiers,
		stays:  stays,
		logger: logger,
	}
}

func (s *service) CreateReview(ctx context.Context, propertyID uuid.UUID, req CreateReviewRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.NewValidationError("rating", apperrors.ErrMsgRatingRange)
	}

	stayed, err := s.stays.HasCompletedStay(ctx, req.GuestID, propertyID)
	if err != nil {
		return nil, err
	}
	if !stayed {
		return nil, apperrors.NewConflictError("Reviews require a completed stay at the listing")
	}

	review := &Review{
		PropertyID: propertyID,
		GuestID:    req.GuestID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Status:     StatusPublished,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.invalidateReviews(ctx, propertyID)
	s.logger.LogInfo("Review published", map[string]interface{}{
		"reviewId":   review.ID.String(),
		"propertyId": propertyID.String(),
		"rating":     review.Rating,
	})
	return review, nil
}

func (s *service) ListPropertyReviews(ctx context.Context, propertyID uuid.UUID, opts FilterOptions) (*PaginatedReviews, error) {
	opts.normalize()
	key := cache.ListKey(cache.Key(reviewResource, "property", propertyID.String()), opts)
	if cached, ok := cache.GetTyped[*PaginatedReviews](ctx, s.store, key); ok {
		return cached, nil
	}

	reviews, total, err := s.repo.ListByProperty(ctx, propertyID, opts)
	if err != nil {
		return nil, err
	}

	result := &PaginatedReviews{
		Reviews: reviews,
		Total:   total,
		Page:    opts.Page,
		Limit:   opts.Limit,
	}
	s.store.Set(ctx, key, result, s.tiers.Short)
	return result, nil
}

func (s *service) GetPropertyRating(ctx context.Context, propertyID uuid.UUID) (*PropertyRating, error) {
	key := cache.Key(reviewResource, "rating", propertyID.String())
	if cached, ok := cache.GetTyped[*PropertyRating](ctx, s.store, key); ok {
		return cached, nil
	}

	rating, err := s.repo.Rating(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, rating, s.tiers.Long)
	return rating, nil
}

func (s *service) HideReview(ctx context.Context, id uuid.UUID) error {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review.Status == StatusHidden {
		return nil
	}

	review.Status = StatusHidden
	if err := s.repo.Update(ctx, review); err != nil {
		return err
	}

	s.invalidateReviews(ctx, review.PropertyID)
	s.logger.LogInfo("Review hidden", map[string]interface{}{
		"reviewId":   id.String(),
		"propertyId": review.PropertyID.String(),
	})
	return nil
}

func (s *service) DeleteReview(ctx context.Context, id uuid.UUID) error {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateReviews(ctx, review.PropertyID)
	s.logger.LogInfo("Review deleted", map[string]interface{}{
		"reviewId":   id.String(),
		"propertyId": review.PropertyID.String(),
	})
	return nil
}

// invalidateReviews drops a listing's review pages and its aggregate rating
func (s *service) invalidateReviews(ctx context.Context, propertyID uuid.UUID) {
	s.store.DeletePattern(ctx, cache.Key(reviewResource, "property", propertyID.String()))
	s.store.Delete(ctx, cache.Key(reviewResource, "rating", propertyID.String()))
}
