package bolt

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/taskcal/backend/domain"
	"github.com/taskcal/backend/internal/infrastructure/storage"
)

// HolidayCache stores one merged holiday list per calendar year, keyed
// "worldwideHolidays_{year}". Entries never expire.
type HolidayCache struct {
	store  *storage.Store
	logger *zap.Logger
}

func NewHolidayCache(store *storage.Store, logger *zap.Logger) *HolidayCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HolidayCache{store: store, logger: logger}
}

func holidayKey(year int) string {
	return fmt.Sprintf("worldwideHolidays_%d", year)
}

// Get returns the cached holiday list for a year. A corrupt entry is
// treated as a miss so the service refetches it.
func (c *HolidayCache) Get(_ context.Context, year int) ([]domain.Holiday, bool, error) {
	var holidays []domain.Holiday
	ok, err := c.store.LoadJSON(holidayKey(year), &holidays)
	if err != nil {
		c.logger.Warn("discarding unreadable holiday cache entry",
			zap.Int("year", year), zap.Error(err))
		return nil, false, nil
	}
	if !ok {
		return nil, false, nil
	}
	return holidays, true, nil
}

// Put overwrites the cache entry for a year. Stale in-flight fetches only
// ever write their own year's key, so entries never cross-contaminate.
func (c *HolidayCache) Put(_ context.Context, year int, holidays []domain.Holiday) error {
	return c.store.SaveJSON(holidayKey(year), holidays)
}
