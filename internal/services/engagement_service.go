package services

import (
	"github.com/spf13/cast"

	"socialnino/internal/models"
	"socialnino/internal/storage"
)

type EngagementServiceInterface interface {
	ToggleFollow(personID int) (started bool, ok bool)
	ToggleLike(postID string) (post models.Post, ok bool)
	ToggleBookmark(postID string) (post models.Post, ok bool)
}

// EngagementService applies the follow/like/bookmark toggles while keeping
// the denormalized counters consistent with the boolean flags.
type EngagementService struct {
	people *storage.Collection[models.Person]
	posts  *storage.Collection[models.Post]
}

func NewEngagementService(people *storage.Collection[models.Person], posts *storage.Collection[models.Post]) EngagementServiceInterface {
	return &EngagementService{
		people: people,
		posts:  posts,
	}
}

// ToggleFollow flips the follow flag on the person and moves the follower
// counter by exactly one in the same direction, never below zero. The
// denormalized Author.IsFollowing copy on every post by that author is
// updated in the same call; this is the single synchronization point for
// the two locations. The two collections persist under separate keys, so a
// crash between the writes can leave them briefly inconsistent; that window
// is accepted, not patched over with a transaction.
//
// Returns started=true only on the false→true transition so the caller can
// award points for new follows and never for unfollows.
func (es *EngagementService) ToggleFollow(personID int) (bool, bool) {
	var started, found bool

	es.people.Update(func(items []models.Person) []models.Person {
		for i := range items {
			if items[i].ID != personID {
				continue
			}
			found = true
			items[i].IsFollowing = !items[i].IsFollowing
			if items[i].IsFollowing {
				started = true
				items[i].Followers++
			} else if items[i].Followers > 0 {
				items[i].Followers--
			}
			break
		}
		return items
	})
	if !found {
		return false, false
	}

	authorID := cast.ToString(personID)
	nowFollowing := started
	es.posts.Update(func(items []models.Post) []models.Post {
		for i := range items {
			if items[i].Author.ID == authorID {
				items[i].Author.IsFollowing = nowFollowing
			}
		}
		return items
	})

	return started, true
}

// ToggleLike flips the liked flag and moves the like counter by the same
// signed unit, floored at zero.
func (es *EngagementService) ToggleLike(postID string) (models.Post, bool) {
	var post models.Post
	var found bool

	es.posts.Update(func(items []models.Post) []models.Post {
		for i := range items {
			if items[i].ID != postID {
				continue
			}
			found = true
			items[i].IsLiked = !items[i].IsLiked
			if items[i].IsLiked {
				items[i].Likes++
			} else if items[i].Likes > 0 {
				items[i].Likes--
			}
			post = items[i]
			break
		}
		return items
	})
	return post, found
}

// ToggleBookmark flips the bookmark flag only; no counter side effects.
func (es *EngagementService) ToggleBookmark(postID string) (models.Post, bool) {
	var post models.Post
	var found bool

	es.posts.Update(func(items []models.Post) []models.Post {
		for i := range items {
			if items[i].ID != postID {
				continue
			}
			found = true
			items[i].IsBookmarked = !items[i].IsBookmarked
			post = items[i]
			break
		}
		return items
	})
	return post, found
}
