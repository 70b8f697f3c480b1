package services

import (
	"errors"

	"github.com/google/uuid"

	"socialnino/internal/models"
	"socialnino/internal/storage"
)

var ErrReplyDepth = errors.New("replies cannot be nested")

type PostServiceInterface interface {
	Posts() []models.Post
	Create(author models.Author, caption string, media models.Media) models.Post
	AddComment(postID, parentCommentID, author, text string) (models.Comment, error)
}

type PostService struct {
	posts *storage.Collection[models.Post]
}

func NewPostService(posts *storage.Collection[models.Post]) PostServiceInterface {
	return &PostService{posts: posts}
}

func (ps *PostService) Posts() []models.Post {
	return ps.posts.All()
}

// Create prepends a new post; the stored order is newest-first and the feed
// never re-sorts on read.
func (ps *PostService) Create(author models.Author, caption string, media models.Media) models.Post {
	post := models.Post{
		ID:        uuid.NewString(),
		Author:    author,
		Timestamp: models.NewTimestamp(),
		Caption:   caption,
		Media:     media,
		Comments:  []models.Comment{},
	}
	ps.posts.Prepend(post)
	return post
}

// AddComment appends a comment to the post, or a reply to a top-level
// comment when parentCommentID is given. Replies to replies are rejected:
// comment nesting is at most one level deep.
func (ps *PostService) AddComment(postID, parentCommentID, author, text string) (models.Comment, error) {
	comment := models.Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      text,
		Timestamp: models.NewTimestamp(),
	}

	var err error
	found := false
	ps.posts.Update(func(items []models.Post) []models.Post {
		for i := range items {
			if items[i].ID != postID {
				continue
			}
			if parentCommentID == "" {
				items[i].Comments = append(items[i].Comments, comment)
				found = true
				break
			}
			for j := range items[i].Comments {
				if items[i].Comments[j].ID == parentCommentID {
					items[i].Comments[j].Replies = append(items[i].Comments[j].Replies, comment)
					found = true
					break
				}
				for _, reply := range items[i].Comments[j].Replies {
					if reply.ID == parentCommentID {
						err = ErrReplyDepth
						return items
					}
				}
			}
			break
		}
		return items
	})

	if err != nil {
		return models.Comment{}, err
	}
	if !found {
		return models.Comment{}, errors.New("post or parent comment not found")
	}
	return comment, nil
}
