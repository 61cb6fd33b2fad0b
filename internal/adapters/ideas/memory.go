package ideas

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/randomtoy/ideawheel/internal/domain"
)

//go:embed data/*.json
var seedFS embed.FS

const seedFile = "data/seed_ideas.json"

type seedIdea struct {
	Title string `json:"title"`
	Note  string `json:"note"`
}

// MemoryStore keeps ideas in process memory, in position order.
type MemoryStore struct {
	once sync.Once
	seed bool
	err  error

	mu    sync.RWMutex
	ideas []domain.Idea
	now   func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// NewSeededStore returns a store that loads the embedded sample ideas on
// first use.
func NewSeededStore() *MemoryStore {
	return &MemoryStore{seed: true, now: time.Now}
}

func (s *MemoryStore) init() {
	if !s.seed {
		return
	}
	raw, err := seedFS.ReadFile(seedFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded ideas: %w", err)
		return
	}
	var seeds []seedIdea
	if err := json.Unmarshal(raw, &seeds); err != nil {
		s.err = fmt.Errorf("parse embedded ideas: %w", err)
		return
	}
	for _, sd := range seeds {
		s.ideas = append(s.ideas, s.newIdea(sd.Title, sd.Note, len(s.ideas)))
	}
}

func (s *MemoryStore) ready() error {
	s.once.Do(s.init)
	return s.err
}

func (s *MemoryStore) newIdea(title, note string, pos int) domain.Idea {
	return domain.Idea{
		ID:        uuid.NewString(),
		Title:     title,
		Note:      note,
		Position:  pos,
		CreatedAt: s.now().UTC(),
	}
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Idea, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ideas), nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (domain.Idea, error) {
	if err := s.ready(); err != nil {
		return domain.Idea{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Idea{}, domain.ErrIdeaNotFound
	}
	return s.ideas[i], nil
}

func (s *MemoryStore) Add(_ context.Context, title, note string) (domain.Idea, error) {
	if err := s.ready(); err != nil {
		return domain.Idea{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idea := s.newIdea(title, note, len(s.ideas))
	s.ideas = append(s.ideas, idea)
	return idea, nil
}

func (s *MemoryStore) Update(_ context.Context, id, title, note string) (domain.Idea, error) {
	return s.mutate(id, func(idea *domain.Idea) {
		idea.Title = title
		idea.Note = note
	})
}

func (s *MemoryStore) SetArchived(_ context.Context, id string, archived bool) (domain.Idea, error) {
	return s.mutate(id, func(idea *domain.Idea) { idea.Archived = archived })
}

func (s *MemoryStore) SetFavorite(_ context.Context, id string, favorite bool) (domain.Idea, error) {
	return s.mutate(id, func(idea *domain.Idea) { idea.Favorite = favorite })
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrIdeaNotFound
	}
	s.ideas = slices.Delete(s.ideas, i, i+1)
	s.renumber()
	return nil
}

func (s *MemoryStore) Reorder(_ context.Context, ids []string) error {
	if err := s.ready(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current := make([]string, len(s.ideas))
	byID := make(map[string]domain.Idea, len(s.ideas))
	for i, idea := range s.ideas {
		current[i] = idea.ID
		byID[idea.ID] = idea
	}
	if err := checkOrder(current, ids); err != nil {
		return err
	}

	reordered := make([]domain.Idea, len(ids))
	for i, id := range ids {
		reordered[i] = byID[id]
	}
	s.ideas = reordered
	s.renumber()
	return nil
}

func (s *MemoryStore) mutate(id string, f func(*domain.Idea)) (domain.Idea, error) {
	if err := s.ready(); err != nil {
		return domain.Idea{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Idea{}, domain.ErrIdeaNotFound
	}
	f(&s.ideas[i])
	return s.ideas[i], nil
}

func (s *MemoryStore) indexOf(id string) int {
	return slices.IndexFunc(s.ideas, func(idea domain.Idea) bool { return idea.ID == id })
}

func (s *MemoryStore) renumber() {
	for i := range s.ideas {
		s.ideas[i].Position = i
	}
}
