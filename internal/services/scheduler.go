package services

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"socialnino/internal/providers"
	"socialnino/internal/storage"
	"socialnino/internal/structures"
)

const defaultPurgeInterval = time.Hour

type SchedulerInterface interface {
	Init()
	Stop()
	Persist() error
}

// Scheduler drives the two background jobs: retry-flush of dirty
// collections and expiry purge of stories.
type Scheduler struct {
	config   *structures.Config
	logger   providers.Logger
	registry *storage.Registry
	stories  StoryServiceInterface
	metrics  providers.MetricsProviderInterface
	cron     *gron.Cron
	opsMu    sync.Mutex
}

func NewScheduler(config *structures.Config, logger providers.Logger, registry *storage.Registry, stories StoryServiceInterface, metrics providers.MetricsProviderInterface) SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		registry: registry,
		stories:  stories,
		metrics:  metrics,
	}
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()
		s.flush()
	})

	purgeInterval := s.config.Stories.PurgeInterval
	if purgeInterval <= 0 {
		purgeInterval = defaultPurgeInterval
	}
	s.cron.AddFunc(gron.Every(purgeInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		if removed := s.stories.PurgeExpired(); removed > 0 {
			s.logger.Infof(providers.TypeApp, "Purged %d expired stories", removed)
		}
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting collections...")
	return s.flush()
}

// flush must be called with s.opsMu held.
func (s *Scheduler) flush() error {
	start := time.Now()
	err := s.registry.FlushAll()
	s.metrics.ObservePersistenceDuration(time.Since(start))

	for collection, count := range s.registry.Sizes() {
		s.metrics.SetRecordsTotal(collection, count)
	}

	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}
