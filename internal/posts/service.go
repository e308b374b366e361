package posts

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound        = errors.New("posts: not found")
	ErrInvalidArgument = errors.New("posts: invalid argument")
)

// Repository abstracts post storage.
//
// FindPostsByHashtag returns ErrNotFound when the hashtag itself does not
// exist; an existing hashtag with no posts yields an empty slice.
type Repository interface {
	FindPostsByUserID(ctx context.Context, userID int64) ([]Post, error)
	FindPostsByHashtag(ctx context.Context, title string) ([]Post, error)
}

// Service is the read side used by protected handlers.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// MyPosts returns the posts owned by userID, which must come from verified claims.
func (s *Service) MyPosts(ctx context.Context, userID int64) ([]Post, error) {
	if userID <= 0 {
		return nil, ErrInvalidArgument
	}
	if s.repo == nil {
		return nil, errors.New("posts: repository not configured")
	}
	out, err := s.repo.FindPostsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Post{}
	}
	return out, nil
}

// ByHashtag returns the posts tagged with title. The title is matched
// exactly; a blank one is rejected without reaching the repository.
func (s *Service) ByHashtag(ctx context.Context, title string) ([]Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidArgument
	}
	if s.repo == nil {
		return nil, errors.New("posts: repository not configured")
	}
	out, err := s.repo.FindPostsByHashtag(ctx, title)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Post{}
	}
	return out, nil
}
