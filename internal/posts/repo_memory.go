package posts

import (
	"context"
	"sync"
)

// MemoryRepo is a simple in-memory post repository for tests and local runs.
type MemoryRepo struct {
	mu sync.Mutex

	Posts []Post
	// Tags maps a hashtag title to the ids of the posts carrying it.
	Tags map[string][]int64
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{Tags: map[string][]int64{}} }

func (r *MemoryRepo) FindPostsByUserID(ctx context.Context, userID int64) ([]Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Post, 0)
	for _, p := range r.Posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryRepo) FindPostsByHashtag(ctx context.Context, title string) ([]Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids, ok := r.Tags[title]
	if !ok {
		return nil, ErrNotFound
	}
	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]Post, 0, len(ids))
	for _, p := range r.Posts {
		if _, ok := want[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
