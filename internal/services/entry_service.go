package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Thecodingpm/calories-counterr/internal/apperrors"
	"github.com/Thecodingpm/calories-counterr/internal/domain"
	"github.com/Thecodingpm/calories-counterr/internal/storage"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date. Bare date
// strings are timezone-sensitive in some runtimes; pinning comparisons to
// UTC avoids off-by-one-day bugs at range edges.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// EntryService handles the food log. FoodID references are not validated at
// write time; aggregation skips entries that no longer resolve.
type EntryService struct {
	store storage.Store
}

func NewEntryService(store storage.Store) *EntryService {
	return &EntryService{store: store}
}

func (s *EntryService) AddEntry(ctx context.Context, entry domain.FoodEntry) (*domain.FoodEntry, error) {
	entries, err := storage.LoadList[domain.FoodEntry](ctx, s.store, storage.CollectionFoodEntries)
	if err != nil {
		return nil, err
	}

	entry.ID = uuid.NewString()
	entries = append(entries, entry)
	if err := storage.SaveList(ctx, s.store, storage.CollectionFoodEntries, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveEntry deletes the entry with the given ID if present. Removal is
// idempotent: a missing ID still reports success.
func (s *EntryService) RemoveEntry(ctx context.Context, entryID string) (bool, error) {
	entries, err := storage.LoadList[domain.FoodEntry](ctx, s.store, storage.CollectionFoodEntries)
	if err != nil {
		return false, err
	}

	kept := make([]domain.FoodEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}

	if err := storage.SaveList(ctx, s.store, storage.CollectionFoodEntries, kept); err != nil {
		return false, err
	}
	return true, nil
}

// EntriesForDate filters by exact date string equality.
func (s *EntryService) EntriesForDate(ctx context.Context, date string) ([]domain.FoodEntry, error) {
	entries, err := storage.LoadList[domain.FoodEntry](ctx, s.store, storage.CollectionFoodEntries)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.FoodEntry, 0)
	for _, e := range entries {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// EntriesForRange returns entries with startDate <= date <= endDate under
// calendar-date ordering. Entries whose date does not parse are excluded.
func (s *EntryService) EntriesForRange(ctx context.Context, startDate, endDate string) ([]domain.FoodEntry, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrorTypeValidation, "BAD_DATE", "invalid start date").WithContext("date", startDate)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrorTypeValidation, "BAD_DATE", "invalid end date").WithContext("date", endDate)
	}

	entries, err := storage.LoadList[domain.FoodEntry](ctx, s.store, storage.CollectionFoodEntries)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.FoodEntry, 0)
	for _, e := range entries {
		d, err := ParseDate(e.Date)
		if err != nil {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}
