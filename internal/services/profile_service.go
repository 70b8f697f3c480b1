package services

import (
	"socialnino/internal/models"
	"socialnino/internal/storage"
)

type ProfileServiceInterface interface {
	Get() models.UserProfile
	Update(profile models.UserProfile) models.UserProfile
}

type ProfileService struct {
	profile *storage.Value[models.UserProfile]
	posts   *storage.Collection[models.Post]
	people  *storage.Collection[models.Person]
}

func NewProfileService(store *storage.Store, reg *storage.Registry, posts *storage.Collection[models.Post], people *storage.Collection[models.Person]) ProfileServiceInterface {
	return &ProfileService{
		profile: storage.NewValue(store, storage.KeyProfile, "profile", models.UserProfile{}, reg),
		posts:   posts,
		people:  people,
	}
}

// Get returns the profile with post and following counts recomputed from
// the live collections. The follower count has no backing collection and
// stays as stored.
func (ps *ProfileService) Get() models.UserProfile {
	profile := ps.profile.Get()
	profile.Stats.Posts = ps.posts.Len()

	following := 0
	for _, p := range ps.people.All() {
		if p.IsFollowing {
			following++
		}
	}
	profile.Stats.Following = following
	return profile
}

// Update replaces the profile wholesale, as the edit flow does.
func (ps *ProfileService) Update(profile models.UserProfile) models.UserProfile {
	ps.profile.Set(profile)
	return ps.Get()
}
