package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnino/internal/models"
)

func TestCollection_LoadsExistingBlob(t *testing.T) {
	store := newTestStore(t)
	Set(store, KeyPeople, []models.Person{{ID: 1, Username: "ana"}})

	reg := NewRegistry()
	people := NewCollection[models.Person](store, KeyPeople, "people", reg)

	require.Equal(t, 1, people.Len())
	assert.Equal(t, "ana", people.All()[0].Username)
}

func TestCollection_MutationsWriteThrough(t *testing.T) {
	store := newTestStore(t)
	reg := NewRegistry()
	people := NewCollection[models.Person](store, KeyPeople, "people", reg)

	people.Append(models.Person{ID: 1, Username: "ana"})
	people.Prepend(models.Person{ID: 2, Username: "bob"})

	// A fresh collection re-reads from disk.
	reloaded := NewCollection[models.Person](store, KeyPeople, "people", NewRegistry())
	all := reloaded.All()
	require.Len(t, all, 2)
	assert.Equal(t, "bob", all[0].Username)
	assert.Equal(t, "ana", all[1].Username)
}

func TestCollection_UpdateMutatesInPlace(t *testing.T) {
	store := newTestStore(t)
	people := NewCollection[models.Person](store, KeyPeople, "people", NewRegistry())
	people.Append(models.Person{ID: 1, Followers: 10})

	people.Update(func(items []models.Person) []models.Person {
		items[0].Followers++
		return items
	})

	assert.Equal(t, 11, people.All()[0].Followers)
}

func TestCollection_AllReturnsCopy(t *testing.T) {
	store := newTestStore(t)
	people := NewCollection[models.Person](store, KeyPeople, "people", NewRegistry())
	people.Append(models.Person{ID: 1, Username: "ana"})

	snapshot := people.All()
	snapshot[0].Username = "mutated"

	assert.Equal(t, "ana", people.All()[0].Username)
}

func TestCollection_FlushCleanIsNoop(t *testing.T) {
	store := newTestStore(t)
	reg := NewRegistry()
	people := NewCollection[models.Person](store, KeyPeople, "people", reg)
	people.Append(models.Person{ID: 1})

	require.NoError(t, reg.FlushAll())
}

func TestValue_DefaultAndMutate(t *testing.T) {
	store := newTestStore(t)
	total := NewValue(store, KeyPoints, "points", 0, NewRegistry())

	assert.Equal(t, 0, total.Get())

	got := total.Mutate(func(v int) int { return v + 5 })
	assert.Equal(t, 5, got)

	reloaded := NewValue(store, KeyPoints, "points", 0, NewRegistry())
	assert.Equal(t, 5, reloaded.Get())
}

func TestRegistry_Sizes(t *testing.T) {
	store := newTestStore(t)
	reg := NewRegistry()
	people := NewCollection[models.Person](store, KeyPeople, "people", reg)
	NewValue(store, KeyPoints, "points", 0, reg)

	people.Append(models.Person{ID: 1})
	people.Append(models.Person{ID: 2})

	sizes := reg.Sizes()
	assert.Equal(t, 2, sizes["people"])
	assert.Equal(t, 1, sizes["points"])
}
