package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"conferencehub/internal/domain"
)

const (
	catalogCacheKey = "conferences:list"
	catalogCacheTTL = 30 * time.Second
)

type catalogService struct {
	conferenceRepo domain.ConferenceRepository
	speakerRepo    domain.SpeakerRepository
	cache          *gocache.Cache
	contextTimeout time.Duration
}

// NewCatalogService creates a CatalogService backed by the given repositories.
// List results are served from a short-lived in-memory cache that every
// mutation invalidates, so admin edits are visible on the next read.
func NewCatalogService(
	conferenceRepo domain.ConferenceRepository,
	speakerRepo domain.SpeakerRepository,
	timeout time.Duration,
) domain.CatalogService {
	return &catalogService{
		conferenceRepo: conferenceRepo,
		speakerRepo:    speakerRepo,
		cache:          gocache.New(catalogCacheTTL, 2*catalogCacheTTL),
		contextTimeout: timeout,
	}
}

func (s *catalogService) ListConferences(ctx context.Context, spec domain.FilterSpec) ([]*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	return domain.FilterConferences(catalog, spec), nil
}

func (s *catalogService) loadCatalog(ctx context.Context) ([]*domain.Conference, error) {
	if cached, ok := s.cache.Get(catalogCacheKey); ok {
		return cached.([]*domain.Conference), nil
	}
	catalog, err := s.conferenceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(catalogCacheKey, catalog)
	return catalog, nil
}

func (s *catalogService) GetConference(ctx context.Context, id string) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conf, err := s.conferenceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}

	speakers, err := s.speakerRepo.ListByConferenceID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	conf.Speakers = speakers
	return conf, nil
}

func (s *catalogService) CreateConference(ctx context.Context, conf *domain.Conference) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if conf.Name == "" {
		return fmt.Errorf("conference name is required: %w", domain.ErrInvalidInput)
	}

	// Server-side defaults for fields the admin form may omit.
	if conf.ID == "" {
		conf.ID = uuid.NewString()
	}
	if len(conf.Category) == 0 {
		conf.Category = domain.CategoryList{"General"}
	}
	conf.Category = conf.Category.Normalized()
	if conf.Status == "" {
		conf.Status = domain.StatusOpen
	}
	if !conf.Status.IsValid() {
		return fmt.Errorf("unknown status %q: %w", conf.Status, domain.ErrInvalidInput)
	}
	if conf.Price < 0 {
		return fmt.Errorf("price must be non-negative: %w", domain.ErrInvalidInput)
	}
	if conf.MaxAttendees == 0 {
		conf.MaxAttendees = 100
	}
	conf.CreatedAt = time.Now()
	conf.UpdatedAt = time.Now()

	if err := s.conferenceRepo.Create(ctx, conf); err != nil {
		return fmt.Errorf("create conference: %w", err)
	}
	s.cache.Delete(catalogCacheKey)
	return nil
}

func (s *catalogService) UpdateConference(ctx context.Context, id string, upd domain.ConferenceUpdate) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if upd.Status != "" && !upd.Status.IsValid() {
		return nil, fmt.Errorf("unknown status %q: %w", upd.Status, domain.ErrInvalidInput)
	}
	if upd.Status == "" {
		upd.Status = domain.StatusOpen
	}
	if upd.Price < 0 {
		return nil, fmt.Errorf("price must be non-negative: %w", domain.ErrInvalidInput)
	}
	upd.Category = upd.Category.Normalized()

	// Full overwrite of the editable fields. Concurrent edits are not
	// detected; the last write observed by the store wins.
	updated, err := s.conferenceRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update conference: %w", err)
	}
	s.cache.Delete(catalogCacheKey)
	return updated, nil
}

func (s *catalogService) DeleteConference(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.conferenceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete conference: %w", err)
	}
	s.cache.Delete(catalogCacheKey)
	return nil
}
