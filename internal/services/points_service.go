package services

import (
	"socialnino/internal/providers"
	"socialnino/internal/storage"
)

// Point deltas per event kind. The catalog is fixed; unknown kinds score 0.
var pointsCatalog = map[string]int{
	"LIKE":      1,
	"COMMENT":   2,
	"POST":      5,
	"FOLLOW":    3,
	"CHALLENGE": 10,
	"QUIZ":      8,
}

type PointsServiceInterface interface {
	Add(kind string) int
	Total() int
	Reset()
}

type PointsService struct {
	total  *storage.Value[int]
	logger providers.Logger
}

func NewPointsService(store *storage.Store, reg *storage.Registry, logger providers.Logger) PointsServiceInterface {
	return &PointsService{
		total:  storage.NewValue(store, storage.KeyPoints, "points", 0, reg),
		logger: logger,
	}
}

// Add applies the catalog delta for kind and returns the new total. The
// total is clamped at zero should a negative delta ever enter the catalog.
func (ps *PointsService) Add(kind string) int {
	delta, ok := pointsCatalog[kind]
	if !ok {
		ps.logger.Warnf(providers.TypeApp, "Unknown points event kind %q ignored", kind)
		return ps.total.Get()
	}
	return ps.total.Mutate(func(total int) int {
		total += delta
		if total < 0 {
			total = 0
		}
		return total
	})
}

func (ps *PointsService) Total() int {
	return ps.total.Get()
}

func (ps *PointsService) Reset() {
	ps.total.Set(0)
}
