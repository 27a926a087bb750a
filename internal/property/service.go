package property

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/verandalabs/veranda-stays/backend/internal/account"
	"github.com/verandalabs/veranda-stays/backend/internal/cache"
	"github.com/verandalabs/veranda-stays/backend/internal/config"
	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
)

// Sentinel errors for listing operations
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrImageNotFound    = errors.New("image not found")
	ErrInvalidStatus    = errors.New("invalid listing status")
)

// service implements the Service interface
type service struct {
	repo     Repository
	store    cache.Store
	tiers    cache.Tiers
	images   ImageStorage
	hosts    HostReader
	bookings BookingChecker
	config   *config.PropertyConfig
	logger   Logger
}

// NewService creates a new listing service
func NewService(repo Repository, store cache.Store, tiers cache.Tiers, images ImageStorage, hosts HostReader, bookings BookingChecker, config *config.PropertyConfig, logger Logger) Service {
	return &service{
		repo:     repo,
		store:    store,
		tiers:    tiers,
		images:   images,
		hosts:    hosts,
		bookings: bookings,
		config:   config,
		logger:   logger,
	}
}

func (s *service) CreateProperty(ctx context.Context, req *CreatePropertyRequest) (*Property, error) {
	if err := s.validateListing(req.Title, req.Description, req.PricePerNight, req.MaxGuests); err != nil {
		return nil, err
	}

	host, err := s.hosts.GetHost(ctx, req.HostID)
	if err != nil {
		if errors.Is(err, account.ErrHostNotFound) {
			return nil, apperrors.NewValidationError("hostId", "Host does not exist")
		}
		return nil, err
	}
	if host.Status == account.StatusSuspended {
		return nil, apperrors.NewConflictError("Host account is suspended")
	}

	property := &Property{
		HostID:        req.HostID,
		Title:         req.Title,
		Description:   req.Description,
		City:          req.City,
		Address:       req.Address,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Amenities:     req.Amenities,
	}
	if err := s.repo.Create(ctx, property); err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	s.logger.LogInfo("Listing created", map[string]interface{}{
		"propertyId": property.ID.String(),
		"hostId":     property.HostID.String(),
	})
	return property, nil
}

func (s *service) GetProperty(ctx context.Context, id uuid.UUID) (*Property, error) {
	key := cache.EntityKey(propertyResource, id.String())
	if cached, ok := cache.GetTyped[*Property](ctx, s.store, key); ok {
		return cached, nil
	}

	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, property, s.tiers.Medium)
	return property, nil
}

func (s *service) GetPropertyWithImages(ctx context.Context, id uuid.UUID) (*PropertyWithImages, error) {
	key := cache.Key(propertyResource, id.String(), "images")
	if cached, ok := cache.GetTyped[*PropertyWithImages](ctx, s.store, key); ok {
		return cached, nil
	}

	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	images, err := s.repo.ListImages(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &PropertyWithImages{
		Property: *property,
		Images:   images,
	}
	s.store.Set(ctx, key, result, s.tiers.Medium)
	return result, nil
}

func (s *service) UpdateProperty(ctx context.Context, id uuid.UUID, req *UpdatePropertyRequest) (*Property, error) {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		property.Title = req.Title
	}
	if req.Description != "" {
		property.Description = req.Description
	}
	if req.City != "" {
		property.City = req.City
	}
	if req.Address != "" {
		property.Address = req.Address
	}
	if !req.PricePerNight.IsZero() {
		property.PricePerNight = req.PricePerNight
	}
	if req.MaxGuests > 0 {
		property.MaxGuests = req.MaxGuests
	}
	if req.Bedrooms > 0 {
		property.Bedrooms = req.Bedrooms
	}
	if req.Bathrooms > 0 {
		property.Bathrooms = req.Bathrooms
	}
	if req.Amenities != nil {
		property.Amenities = req.Amenities
	}

	if err := s.validateListing(property.Title, property.Description, property.PricePerNight, property.MaxGuests); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, err
	}

	s.invalidateProperty(ctx, id)
	return property, nil
}

func (s *service) ListProperties(ctx context.Context, opts FilterOptions) (*PaginatedProperties, error) {
	opts.normalize()
	key := cache.ListKey(propertyResource, opts)
	if cached, ok := cache.GetTyped[*PaginatedProperties](ctx, s.store, key); ok {
		return cached, nil
	}

	properties, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &PaginatedProperties{
		Properties: properties,
		TotalCount: total,
		Page:       opts.Page,
		Limit:      opts.Limit,
	}
	s.store.Set(ctx, key, result, s.tiers.Short)
	return result, nil
}

func (s *service) ListByHost(ctx context.Context, hostID uuid.UUID, opts FilterOptions) (*PaginatedProperties, error) {
	opts.normalize()
	key := cache.ListKey(cache.Key(propertyResource, "host", hostID.String()), opts)
	if cached, ok := cache.GetTyped[*PaginatedProperties](ctx, s.store, key); ok {
		return cached, nil
	}

	properties, total, err := s.repo.ListByHost(ctx, hostID, opts)
	if err != nil {
		return nil, err
	}

	result := &PaginatedProperties{
		Properties: properties,
		TotalCount: total,
		Page:       opts.Page,
		Limit:      opts.Limit,
	}
	s.store.Set(ctx, key, result, s.tiers.Short)
	return result, nil
}

func (s *service) FeaturedProperties(ctx context.Context) ([]Property, error) {
	key := cache.Key(propertyResource, "featured")
	if cached, ok := cache.GetTyped[[]Property](ctx, s.store, key); ok {
		return cached, nil
	}

	properties, err := s.repo.Featured(ctx)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, properties, s.tiers.Medium)
	return properties, nil
}

func (s *service) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if status != StatusDraft && status != StatusActive && status != StatusSuspended {
		return ErrInvalidStatus
	}

	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	property.Status = status
	if err := s.repo.Update(ctx, property); err != nil {
		return err
	}

	s.invalidateProperty(ctx, id)
	s.logger.LogInfo("Listing status changed", map[string]interface{}{
		"propertyId": id.String(),
		"status":     string(status),
	})
	return nil
}

func (s *service) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if property.Featured == featured {
		return nil
	}

	property.Featured = featured
	if err := s.repo.Update(ctx, property); err != nil {
		return err
	}

	s.invalidateProperty(ctx, id)
	return nil
}

func (s *service) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	active, err := s.bookings.HasActiveBookings(ctx, id)
	if err != nil {
		return err
	}
	if active {
		return apperrors.NewConflictError("Listing has bookings in flight")
	}

	images, err := s.repo.ListImages(ctx, id)
	if err != nil {
		return err
	}
	for _, image := range images {
		if err := s.images.Delete(ctx, image.StorageKey); err != nil {
			s.logger.LogError(err, "Failed to remove image object during listing deletion")
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateProperty(ctx, id)
	s.logger.LogInfo("Listing deleted", map[string]interface{}{
		"propertyId": id.String(),
	})
	return nil
}

func (s *service) AddImage(ctx context.Context, propertyID uuid.UUID, file multipart.File, header *multipart.FileHeader) (*PropertyImage, error) {
	if _, err := s.repo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}

	count, err := s.repo.CountImages(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if count >= int64(s.config.MaxImages) {
		return nil, apperrors.NewValidationError("image", fmt.Sprintf("Listing already has the maximum of %d images", s.config.MaxImages))
	}
	if header.Size > s.config.MaxImageSize {
		return nil, apperrors.NewValidationError("image", apperrors.ErrMsgImageSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !s.allowedFormat(ext) {
		return nil, apperrors.NewValidationError("image", apperrors.ErrMsgImageType)
	}

	key := fmt.Sprintf("properties/%s/%s%s", propertyID, uuid.New().String(), ext)
	contentType := header.Header.Get("Content-Type")
	url, err := s.images.UploadStream(ctx, key, file, header.Size, contentType)
	if err != nil {
		s.logger.LogError(err, "Image upload to object storage failed")
		return nil, apperrors.NewStorageError("Failed to store image", err)
	}

	image := &PropertyImage{
		PropertyID: propertyID,
		StorageKey: key,
		URL:        url,
		Position:   int(count),
	}
	if err := s.repo.AddImage(ctx, image); err != nil {
		if cleanupErr := s.images.Delete(ctx, key); cleanupErr != nil {
			s.logger.LogError(cleanupErr, "Failed to remove orphaned image object")
		}
		return nil, err
	}

	s.invalidateProperty(ctx, propertyID)
	s.logger.LogInfo("Image added to listing", map[string]interface{}{
		"propertyId": propertyID.String(),
		"imageId":    image.ID.String(),
		"size":       header.Size,
	})
	return image, nil
}

func (s *service) RemoveImage(ctx context.Context, propertyID, imageID uuid.UUID) error {
	image, err := s.repo.GetImage(ctx, imageID)
	if err != nil {
		return err
	}
	if image.PropertyID != propertyID {
		return ErrImageNotFound
	}

	if err := s.images.Delete(ctx, image.StorageKey); err != nil {
		s.logger.LogError(err, "Failed to remove image object")
	}

	if err := s.repo.RemoveImage(ctx, imageID); err != nil {
		return err
	}

	s.invalidateProperty(ctx, propertyID)
	return nil
}

func (s *service) GetStats(ctx context.Context) (*PropertyStats, error) {
	key := cache.StatsKey(propertyResource)
	if cached, ok := cache.GetTyped[*PropertyStats](ctx, s.store, key); ok {
		return cached, nil
	}

	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, stats, s.tiers.Long)
	return stats, nil
}

// validateListing enforces the configured listing limits
func (s *service) validateListing(title, description string, price decimal.Decimal, maxGuests int) error {
	if len(title) < s.config.MinTitleLength || len(title) > s.config.MaxTitleLength {
		return apperrors.NewValidationError("title", apperrors.ErrMsgTitleLength)
	}
	if len(description) > s.config.MaxDescLength {
		return apperrors.NewValidationError("description", apperrors.ErrMsgDescLength)
	}
	if !price.IsPositive() {
		return apperrors.NewValidationError("pricePerNight", "Price per night must be positive")
	}
	if maxGuests < 1 {
		return apperrors.NewValidationError("maxGuests", "Listing must accommodate at least one guest")
	}
	return nil
}

func (s *service) allowedFormat(ext string) bool {
	for _, allowed := range s.config.AllowedFormats {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (s *service) invalidateProperty(ctx context.Context, id uuid.UUID) {
	s.store.DeletePattern(ctx, cache.EntityKey(propertyResource, id.String()))
	s.invalidateLists(ctx)
}

func (s *service) invalidateLists(ctx context.Context) {
	s.store.DeletePattern(ctx, cache.ListPrefix(propertyResource))
	s.store.DeletePattern(ctx, cache.Key(propertyResource, "host")+cache.Separator)
	s.store.Delete(ctx, cache.Key(propertyResource, "featured"))
	s.store.Delete(ctx, cache.StatsKey(propertyResource))
}
