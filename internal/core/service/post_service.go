package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/fivam/blog-api/internal/api/metrics"
	"github.com/fivam/blog-api/internal/core/domain"
	"github.com/fivam/blog-api/internal/core/ports"
)

// PostCache abstracts the read cache for the full post listing (Redis).
// Implementations are fail-open: callers treat any error as a miss and
// continue against the repository.
type PostCache interface {
	// Get returns the cached listing, or (nil, nil) on a miss.
	Get(ctx context.Context) ([]*domain.Post, error)
	Set(ctx context.Context, posts []*domain.Post) error
	Invalidate(ctx context.Context) error
}

// PostService implements post CRUD and search on top of the repository,
// with an optional listing cache in front of List.
type PostService struct {
	repo   ports.PostRepository
	users  ports.UserRepository
	cache  PostCache
	logger zerolog.Logger
}

// NewPostService returns a PostService. cache may be nil to disable
// listing caching (used by tests).
func NewPostService(repo ports.PostRepository, users ports.UserRepository, cache PostCache, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, users: users, cache: cache, logger: logger}
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("post list cache read failed, falling back to store")
		} else if cached != nil {
			metrics.ListCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.ListCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, posts); err != nil {
			s.logger.Warn().Err(err).Msg("post list cache write failed")
		}
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) Search(ctx context.Context, q string) ([]*domain.Post, error) {
	metrics.PostSearchesTotal.Inc()
	return s.repo.Search(ctx, q)
}

func (s *PostService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	if in.Title == "" || in.Content == "" || in.AuthorID == "" {
		return nil, domain.ErrInvalidInput
	}

	// The store does not enforce the post-to-author reference, so verify
	// the author exists before writing.
	if _, err := s.users.FindByID(ctx, in.AuthorID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:     in.Title,
		Content:   in.Content,
		AuthorID:  in.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.logger.Info().Str("post_id", created.ID).Str("author_id", created.AuthorID).Msg("post created")
	s.invalidateListing(ctx)

	return created, nil
}

func (s *PostService) Update(ctx context.Context, id string, in ports.UpdatePostInput) (*domain.Post, error) {
	if in.Title == "" || in.Content == "" {
		return nil, domain.ErrInvalidInput
	}

	updated, err := s.repo.Update(ctx, id, in.Title, in.Content, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", updated.ID).Msg("post updated")
	s.invalidateListing(ctx)

	return updated, nil
}

// Delete removes the post unconditionally. A missing id is not an error:
// the store delete is issued either way and the caller responds 204.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.PostsDeletedTotal.Inc()
	s.logger.Info().Str("post_id", id).Msg("post deleted")
	s.invalidateListing(ctx)

	return nil
}

func (s *PostService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("post list cache invalidation failed")
	}
}
