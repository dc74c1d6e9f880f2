package ports

import (
	"context"

	"github.com/fivam/blog-api/internal/core/domain"
)

// CreatePostInput carries the fields accepted when creating a post.
type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID string
}

// UpdatePostInput carries the only two fields an update may change.
type UpdatePostInput struct {
	Title   string
	Content string
}

type PostService interface {
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Search(ctx context.Context, q string) ([]*domain.Post, error)
	Create(ctx context.Context, in CreatePostInput) (*domain.Post, error)
	Update(ctx context.Context, id string, in UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
