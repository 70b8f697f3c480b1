package services

import (
	"time"

	"github.com/google/uuid"

	"socialnino/internal/models"
	"socialnino/internal/storage"
	"socialnino/internal/structures"
)

const defaultStoryTTL = 24 * time.Hour

type StoryServiceInterface interface {
	Stories() []models.Story
	Create(author, avatar string, media models.Media) models.Story
	PurgeExpired() int
}

type StoryService struct {
	stories *storage.Collection[models.Story]
	ttl     time.Duration
	now     func() time.Time
}

func NewStoryService(conf *structures.Config, stories *storage.Collection[models.Story]) StoryServiceInterface {
	ttl := conf.Stories.TTL
	if ttl <= 0 {
		ttl = defaultStoryTTL
	}
	return &StoryService{
		stories: stories,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Stories returns the live stories. Expired ones are filtered here as well
// as purged periodically, so a read between purge ticks never shows them.
func (ss *StoryService) Stories() []models.Story {
	cutoff := ss.now().Add(-ss.ttl)
	live := make([]models.Story, 0)
	for _, s := range ss.stories.All() {
		if !models.ParseTimestamp(s.CreatedAt).Before(cutoff) {
			live = append(live, s)
		}
	}
	return live
}

func (ss *StoryService) Create(author, avatar string, media models.Media) models.Story {
	story := models.Story{
		ID:        uuid.NewString(),
		Author:    author,
		Avatar:    avatar,
		Media:     media,
		CreatedAt: models.NewTimestamp(),
	}
	ss.stories.Append(story)
	return story
}

// PurgeExpired drops stories older than the TTL from the collection and
// reports how many were removed. Run by the scheduler.
func (ss *StoryService) PurgeExpired() int {
	cutoff := ss.now().Add(-ss.ttl)
	removed := 0
	ss.stories.Update(func(items []models.Story) []models.Story {
		kept := items[:0]
		for _, s := range items {
			if models.ParseTimestamp(s.CreatedAt).Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, s)
		}
		return kept
	})
	return removed
}
