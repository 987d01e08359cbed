package holiday

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/taskcal/backend/domain"
	"github.com/taskcal/backend/repository"
)

// Client is the subset of the public-holiday API the service consumes.
type Client interface {
	// AvailableCountries returns the country codes the service supports.
	AvailableCountries(ctx context.Context) ([]string, error)
	// PublicHolidays returns the holidays of one country for one year.
	PublicHolidays(ctx context.Context, year int, countryCode string) ([]domain.Holiday, error)
}

// Service merges worldwide public holidays per year and caches the result.
// Holiday annotation is a non-critical enhancement: every failure path
// degrades to an empty list, never an error.
type Service struct {
	client Client
	cache  repository.HolidayCache
	logger *zap.Logger
}

func New(client Client, cache repository.HolidayCache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// FetchYear returns the deduplicated worldwide holiday list for a year.
// A cached year is returned verbatim. Otherwise every country is fetched
// concurrently; one country failing contributes nothing without aborting
// the rest. The merged result lands in the per-year cache entry, so a
// superseded in-flight fetch can only ever populate its own year's key.
func (s *Service) FetchYear(ctx context.Context, year int) []domain.Holiday {
	if cached, ok, err := s.cache.Get(ctx, year); err == nil && ok {
		return cached
	} else if err != nil {
		s.logger.Warn("holiday cache read failed", zap.Int("year", year), zap.Error(err))
	}

	codes, err := s.client.AvailableCountries(ctx)
	if err != nil {
		s.logger.Warn("holiday country list unavailable", zap.Error(err))
		return []domain.Holiday{}
	}

	perCountry := make([][]domain.Holiday, len(codes))
	var wg sync.WaitGroup
	for i, code := range codes {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			holidays, err := s.client.PublicHolidays(ctx, year, code)
			if err != nil {
				s.logger.Debug("holiday fetch failed for country",
					zap.String("country", code), zap.Int("year", year), zap.Error(err))
				return
			}
			perCountry[i] = holidays
		}(i, code)
	}
	wg.Wait()

	merged := dedupe(perCountry)

	if err := s.cache.Put(ctx, year, merged); err != nil {
		s.logger.Warn("holiday cache write failed", zap.Int("year", year), zap.Error(err))
	}
	return merged
}

// dedupe flattens the per-country results and keeps exactly one record per
// (date, name) key, first seen wins. Duplicate records for the same key are
// assumed field-identical.
func dedupe(perCountry [][]domain.Holiday) []domain.Holiday {
	seen := make(map[string]struct{})
	merged := make([]domain.Holiday, 0)
	for _, holidays := range perCountry {
		for _, h := range holidays {
			key := h.DedupeKey()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, h)
		}
	}
	return merged
}
