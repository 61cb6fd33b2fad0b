package ports

import (
	"context"

	"github.com/randomtoy/ideawheel/internal/domain"
)

// IdeaStore persists the idea board. List returns ideas in position order.
type IdeaStore interface {
	List(ctx context.Context) ([]domain.Idea, error)
	Get(ctx context.Context, id string) (domain.Idea, error)
	Add(ctx context.Context, title, note string) (domain.Idea, error)
	Update(ctx context.Context, id, title, note string) (domain.Idea, error)
	Delete(ctx context.Context, id string) error
	SetArchived(ctx context.Context, id string, archived bool) (domain.Idea, error)
	SetFavorite(ctx context.Context, id string, favorite bool) (domain.Idea, error)
	// Reorder assigns positions in the order of ids, which must name every
	// stored idea exactly once.
	Reorder(ctx context.Context, ids []string) error
}
