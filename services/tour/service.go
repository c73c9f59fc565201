// Package tour serves the tour catalog and keeps tour statuses current.
package tour

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tourRepo "motorover/database/repository/tour"
	"motorover/models"
	"motorover/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// TourService exposes catalog reads and the status refresh.
type TourService interface {
	ListTours(ctx context.Context, filter models.TourFilter) ([]models.Tour, error)
	GetTour(ctx context.Context, id string) (*models.Tour, error)
	RefreshStatuses(ctx context.Context) error
}

// DefaultTourService implements TourService with a Redis read-through cache
// on catalog listings. Cache is optional; a nil client disables it.
type DefaultTourService struct {
	Repo   tourRepo.TourRepository
	Cache  *redis.Client
	Logger *zap.Logger
	Now    func() time.Time
}

func (s *DefaultTourService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ListTours returns tours matching the filter, served from cache when fresh.
func (s *DefaultTourService) ListTours(ctx context.Context, filter models.TourFilter) ([]models.Tour, error) {
	cacheKey := fmt.Sprintf("%slist:%s:%s", utils.TourCachePrefix, filter.Region, filter.Status)

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var tours []models.Tour
			if err := json.Unmarshal([]byte(data), &tours); err == nil {
				return tours, nil
			}
			// Corrupt cache entry; fall through to the repository.
			s.Cache.Del(ctx, cacheKey)
		}
	}

	tours, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(tours); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, utils.TourCacheTTL).Err(); err != nil {
				s.Logger.Debug("tour: failed to cache listing", zap.Error(err))
			}
		}
	}
	return tours, nil
}

// GetTour returns one tour by ID. Propagates tourRepo.ErrTourNotFound.
func (s *DefaultTourService) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	return s.Repo.GetByID(ctx, id)
}
