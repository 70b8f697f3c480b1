package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"socialnino/internal/models"
	"socialnino/internal/storage"
	"socialnino/internal/structures"
)

type RankingServiceInterface interface {
	CurrentBucket() string
	Load(bucket string) []models.RankingEntry
	Submit(bucket, username string, score int) []models.RankingEntry
}

type RankingService struct {
	// mu guards the get-modify-set sequence in Submit; buckets are keyed
	// by week so they cannot go through a single Collection.
	mu    sync.Mutex
	store *storage.Store
	delay time.Duration
	now   func() time.Time
}

func NewRankingService(conf *structures.Config, store *storage.Store) RankingServiceInterface {
	return &RankingService{
		store: store,
		delay: conf.Ranking.SubmitDelay,
		now:   time.Now,
	}
}

// BucketKey derives the weekly bucket for a point in time. The week number
// is ceil(dayOfYear/7) counted from Jan 1, not the ISO-8601 week, to stay
// compatible with the buckets already on disk.
func BucketKey(t time.Time) string {
	week := (t.YearDay() + 6) / 7
	return fmt.Sprintf("ranking-%d-W%d", t.Year(), week)
}

func (rs *RankingService) CurrentBucket() string {
	return BucketKey(rs.now())
}

// Load returns the bucket's entries, empty when the bucket is absent.
func (rs *RankingService) Load(bucket string) []models.RankingEntry {
	rs.sleep()
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return storage.Get(rs.store, bucket, []models.RankingEntry{})
}

// Submit records a score: an existing entry is raised only when the new
// score is strictly greater, otherwise a new entry is appended. The list is
// re-sorted descending by score; ties keep their original relative order.
func (rs *RankingService) Submit(bucket, username string, score int) []models.RankingEntry {
	rs.sleep()

	rs.mu.Lock()
	defer rs.mu.Unlock()

	entries := storage.Get(rs.store, bucket, []models.RankingEntry{})

	found := false
	for i := range entries {
		if entries[i].Username == username {
			found = true
			if score > entries[i].Score {
				entries[i].Score = score
			}
			break
		}
	}
	if !found {
		entries = append(entries, models.RankingEntry{Username: username, Score: score})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	storage.Set(rs.store, bucket, entries)
	return entries
}

// sleep emulates the network round-trip of the original client so the UI
// can show its loading state. Zero disables it.
func (rs *RankingService) sleep() {
	if rs.delay > 0 {
		time.Sleep(rs.delay)
	}
}
