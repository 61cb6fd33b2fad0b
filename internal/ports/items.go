package ports

import (
	"context"

	"github.com/randomtoy/ideawheel/internal/domain"
)

// ItemSource supplies the ordered list of items the wheel partitions.
type ItemSource interface {
	Items(ctx context.Context) ([]domain.Item, error)
}
