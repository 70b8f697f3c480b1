package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnino/internal/models"
)

func newPostFixture(t *testing.T) PostServiceInterface {
	t.Helper()
	store, reg := newTestStore(t)
	return NewPostService(NewPostCollection(store, reg))
}

func TestCreatePost_PrependsNewestFirst(t *testing.T) {
	ps := newPostFixture(t)
	author := models.Author{ID: "1", Username: "ana"}

	first := ps.Create(author, "first", models.Media{Kind: "image", Source: "a.jpg"})
	second := ps.Create(author, "second", models.Media{Kind: "video", Source: "b.mp4"})

	posts := ps.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
	assert.NotEmpty(t, posts[0].ID)
	assert.NotEmpty(t, posts[0].Timestamp)
}

func TestAddComment_TopLevel(t *testing.T) {
	ps := newPostFixture(t)
	post := ps.Create(models.Author{Username: "ana"}, "hello", models.Media{})

	comment, err := ps.AddComment(post.ID, "", "bob", "nice shot")
	require.NoError(t, err)
	assert.Equal(t, "bob", comment.Author)

	stored := ps.Posts()[0]
	require.Len(t, stored.Comments, 1)
	assert.Equal(t, comment.ID, stored.Comments[0].ID)
}

func TestAddComment_ReplyOneLevelDeep(t *testing.T) {
	ps := newPostFixture(t)
	post := ps.Create(models.Author{Username: "ana"}, "hello", models.Media{})
	parent, err := ps.AddComment(post.ID, "", "bob", "nice")
	require.NoError(t, err)

	reply, err := ps.AddComment(post.ID, parent.ID, "ana", "thanks")
	require.NoError(t, err)

	stored := ps.Posts()[0]
	require.Len(t, stored.Comments[0].Replies, 1)
	assert.Equal(t, reply.ID, stored.Comments[0].Replies[0].ID)
}

func TestAddComment_ReplyToReplyRejected(t *testing.T) {
	ps := newPostFixture(t)
	post := ps.Create(models.Author{Username: "ana"}, "hello", models.Media{})
	parent, _ := ps.AddComment(post.ID, "", "bob", "nice")
	reply, _ := ps.AddComment(post.ID, parent.ID, "ana", "thanks")

	_, err := ps.AddComment(post.ID, reply.ID, "bob", "welcome")
	assert.ErrorIs(t, err, ErrReplyDepth)

	// Nothing was committed.
	assert.Len(t, ps.Posts()[0].Comments[0].Replies, 1)
}

func TestAddComment_UnknownPost(t *testing.T) {
	ps := newPostFixture(t)
	_, err := ps.AddComment("missing", "", "bob", "hi")
	assert.Error(t, err)
}
