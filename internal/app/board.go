package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/randomtoy/ideawheel/internal/domain"
	"github.com/randomtoy/ideawheel/internal/ports"
)

const historySize = 20

// IdeaFilter selects which ideas ListIdeas returns.
type IdeaFilter int

const (
	FilterAll IdeaFilter = iota
	FilterActive
	FilterArchived
)

// ActiveIdeas feeds the wheel with non-archived ideas in board order.
type ActiveIdeas struct {
	store ports.IdeaStore
}

func NewActiveIdeas(store ports.IdeaStore) ActiveIdeas {
	return ActiveIdeas{store: store}
}

func (a ActiveIdeas) Items(ctx context.Context) ([]domain.Item, error) {
	ideas, err := a.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	items := make([]domain.Item, 0, len(ideas))
	for _, idea := range ideas {
		if !idea.Archived {
			items = append(items, idea.Item())
		}
	}
	return items, nil
}

// Board orchestrates idea mutations and keeps the wheel partition in sync
// with them.
type Board struct {
	store          ports.IdeaStore
	wheel          *Wheel
	clock          ports.Clock
	favoriteOnPick bool
	logger         *slog.Logger

	mu      sync.Mutex
	history []domain.Pick
}

func NewBoard(store ports.IdeaStore, wheel *Wheel, clock ports.Clock, favoriteOnPick bool, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	return &Board{
		store:          store,
		wheel:          wheel,
		clock:          clock,
		favoriteOnPick: favoriteOnPick,
		logger:         logger,
	}
}

// Wheel exposes the engine for state polling.
func (b *Board) Wheel() *Wheel {
	return b.wheel
}

func (b *Board) ListIdeas(ctx context.Context, filter IdeaFilter) ([]domain.Idea, error) {
	ideas, err := b.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	if filter == FilterAll {
		return ideas, nil
	}
	out := make([]domain.Idea, 0, len(ideas))
	for _, idea := range ideas {
		if idea.Archived == (filter == FilterArchived) {
			out = append(out, idea)
		}
	}
	return out, nil
}

func (b *Board) GetIdea(ctx context.Context, id string) (domain.Idea, error) {
	return b.store.Get(ctx, id)
}

func (b *Board) AddIdea(ctx context.Context, title, note string) (domain.Idea, error) {
	title, note, err := cleanIdea(title, note)
	if err != nil {
		return domain.Idea{}, err
	}
	idea, err := b.store.Add(ctx, title, note)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("add idea: %w", err)
	}
	return idea, b.refresh(ctx)
}

func (b *Board) UpdateIdea(ctx context.Context, id, title, note string) (domain.Idea, error) {
	title, note, err := cleanIdea(title, note)
	if err != nil {
		return domain.Idea{}, err
	}
	idea, err := b.store.Update(ctx, id, title, note)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("update idea: %w", err)
	}
	return idea, b.refresh(ctx)
}

func (b *Board) DeleteIdea(ctx context.Context, id string) error {
	if err := b.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}
	return b.refresh(ctx)
}

func (b *Board) ArchiveIdea(ctx context.Context, id string) (domain.Idea, error) {
	return b.setArchived(ctx, id, true)
}

func (b *Board) RestoreIdea(ctx context.Context, id string) (domain.Idea, error) {
	return b.setArchived(ctx, id, false)
}

func (b *Board) setArchived(ctx context.Context, id string, archived bool) (domain.Idea, error) {
	idea, err := b.store.SetArchived(ctx, id, archived)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("set archived: %w", err)
	}
	return idea, b.refresh(ctx)
}

func (b *Board) ReorderIdeas(ctx context.Context, ids []string) error {
	if err := b.store.Reorder(ctx, ids); err != nil {
		return fmt.Errorf("reorder ideas: %w", err)
	}
	return b.refresh(ctx)
}

// Spin starts a wheel spin over the active ideas. The pick is recorded in
// the history when the spin resolves.
func (b *Board) Spin(ctx context.Context) error {
	pickCtx := context.WithoutCancel(ctx)
	return b.wheel.Spin(ctx, func(item domain.Item) {
		b.recordPick(pickCtx, item)
	})
}

// History returns resolved picks, newest first.
func (b *Board) History() []domain.Pick {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Pick, len(b.history))
	copy(out, b.history)
	return out
}

func (b *Board) recordPick(ctx context.Context, item domain.Item) {
	pick := domain.Pick{
		Item:     item,
		Rotation: b.wheel.State().RotationAngle,
		PickedAt: b.clock.Now(),
	}

	b.mu.Lock()
	b.history = append([]domain.Pick{pick}, b.history...)
	if len(b.history) > historySize {
		b.history = b.history[:historySize]
	}
	b.mu.Unlock()

	if !b.favoriteOnPick {
		return
	}
	if _, err := b.store.SetFavorite(ctx, item.ID, true); err != nil {
		b.logger.WarnContext(ctx, "mark picked idea favorite", "idea_id", item.ID, "error", err)
	}
}

func (b *Board) refresh(ctx context.Context) error {
	if err := b.wheel.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh wheel: %w", err)
	}
	return nil
}

func cleanIdea(title, note string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", domain.ErrInvalidIdea
	}
	return title, strings.TrimSpace(note), nil
}
