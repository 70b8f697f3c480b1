package services

import (
	"fmt"

	"github.com/spf13/cast"

	"socialnino/internal/models"
	"socialnino/internal/storage"
)

const (
	FeedModeAll       = "all"
	FeedModeFollowing = "following"
)

// FilterFeed narrows posts to the requested view. Mode "all" returns the
// posts as stored, newest-prepended at write time and never re-sorted on read.
// Mode "following" keeps a post iff its author id is in followingIDs or the
// author is currentUser (own posts always show; a user does not follow
// themselves in this model).
func FilterFeed(posts []models.Post, mode string, followingIDs map[string]struct{}, currentUser string) []models.Post {
	if mode != FeedModeFollowing {
		return posts
	}
	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if _, ok := followingIDs[p.Author.ID]; ok || p.Author.Username == currentUser {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// BuildTimeline derives the profile history view. Construction order is
// fixed: account creation, follower milestone, earliest post, most-liked
// post (first-encountered max wins). Always 2 to 4 events, never an error.
func BuildTimeline(profile models.UserProfile, posts []models.Post) []models.TimelineEvent {
	events := make([]models.TimelineEvent, 0, 4)

	// The stored profiles carry no signup date; the creation event stays an
	// explicit placeholder rather than a fabricated value. Profiles that do
	// have CreatedAt get the real month.
	created := "Account created"
	if t := models.ParseTimestamp(profile.CreatedAt); !t.IsZero() {
		created = fmt.Sprintf("Account created in %s %d", t.Month(), t.Year())
	}
	events = append(events, models.TimelineEvent{Icon: "🎉", Text: created})

	events = append(events, models.TimelineEvent{
		Icon: "👥",
		Text: fmt.Sprintf("Reached %d followers", profile.Stats.Followers),
	})

	if len(posts) == 0 {
		return events
	}

	first := posts[0]
	for _, p := range posts[1:] {
		if models.ParseTimestamp(p.Timestamp).Before(models.ParseTimestamp(first.Timestamp)) {
			first = p
		}
	}
	events = append(events, models.TimelineEvent{
		Icon: "📸",
		Text: fmt.Sprintf("First post: %s", first.Caption),
	})

	top := posts[0]
	for _, p := range posts[1:] {
		if p.Likes > top.Likes {
			top = p
		}
	}
	events = append(events, models.TimelineEvent{
		Icon: "❤️",
		Text: fmt.Sprintf("Most liked post with %d likes: %s", top.Likes, top.Caption),
	})

	return events
}

// FollowingIDs projects the people collection into the set of followed
// author ids, keyed by the string form used on Post.Author.ID.
func FollowingIDs(people []models.Person) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, p := range people {
		if p.IsFollowing {
			ids[cast.ToString(p.ID)] = struct{}{}
		}
	}
	return ids
}

type FeedServiceInterface interface {
	Feed(mode, currentUser string) []models.Post
	Timeline() []models.TimelineEvent
}

type FeedService struct {
	posts   *storage.Collection[models.Post]
	people  *storage.Collection[models.Person]
	profile ProfileServiceInterface
}

func NewFeedService(posts *storage.Collection[models.Post], people *storage.Collection[models.Person], profile ProfileServiceInterface) FeedServiceInterface {
	return &FeedService{
		posts:   posts,
		people:  people,
		profile: profile,
	}
}

func (fs *FeedService) Feed(mode, currentUser string) []models.Post {
	return FilterFeed(fs.posts.All(), mode, FollowingIDs(fs.people.All()), currentUser)
}

func (fs *FeedService) Timeline() []models.TimelineEvent {
	return BuildTimeline(fs.profile.Get(), fs.posts.All())
}
