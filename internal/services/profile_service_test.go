package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"socialnino/internal/models"
	"socialnino/internal/storage"
)

func newProfileFixture(t *testing.T) (ProfileServiceInterface, *storage.Collection[models.Post], *storage.Collection[models.Person]) {
	t.Helper()
	store, reg := newTestStore(t)
	posts := NewPostCollection(store, reg)
	people := NewPersonCollection(store, reg)
	return NewProfileService(store, reg, posts, people), posts, people
}

func TestProfile_StatsRecomputed(t *testing.T) {
	ps, posts, people := newProfileFixture(t)

	posts.Append(models.Post{ID: "p1"})
	posts.Append(models.Post{ID: "p2"})
	people.Append(models.Person{ID: 1, Username: "ana", IsFollowing: true})
	people.Append(models.Person{ID: 2, Username: "bob"})

	profile := ps.Get()
	assert.Equal(t, 2, profile.Stats.Posts)
	assert.Equal(t, 1, profile.Stats.Following)
}

func TestProfile_FollowersStayStored(t *testing.T) {
	ps, _, _ := newProfileFixture(t)

	updated := ps.Update(models.UserProfile{
		Name:  "nino",
		Stats: models.ProfileStats{Followers: 120},
	})
	assert.Equal(t, "nino", updated.Name)
	assert.Equal(t, 120, updated.Stats.Followers)
	assert.Equal(t, 0, updated.Stats.Posts)
}
