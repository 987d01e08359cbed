package repository

import (
	"context"

	"github.com/taskcal/backend/domain"
)

// HolidayCache stores one merged holiday list per calendar year. Entries
// never expire; a cached year is returned verbatim until manually cleared.
type HolidayCache interface {
	Get(ctx context.Context, year int) ([]domain.Holiday, bool, error)
	Put(ctx context.Context, year int, holidays []domain.Holiday) error
}
