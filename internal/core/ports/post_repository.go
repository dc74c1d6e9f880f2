package ports

import (
	"context"
	"time"

	"github.com/fivam/blog-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
//
// List and Search return posts ordered by creation time descending with
// the owning author embedded. Search matches q as a case-insensitive
// substring of title or content; an empty q matches everything.
type PostRepository interface {
	List(ctx context.Context) ([]*domain.Post, error)
	Search(ctx context.Context, q string) ([]*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// Update changes title and content only and returns the updated post.
	Update(ctx context.Context, id, title, content string, updatedAt time.Time) (*domain.Post, error)
	// Delete removes the post if present. Deleting a missing id is not an
	// error; the store call is unconditional.
	Delete(ctx context.Context, id string) error
}
