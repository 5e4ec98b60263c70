package session

import (
	"sync"
	"time"

	"studystack/internal/model"

	"github.com/google/uuid"
)

type Kind string

const (
	KindStudy Kind = "study"
	KindQuiz  Kind = "quiz"
)

// Entry is one running session. The machine inside is only touched through
// WithStudy / WithQuiz, which serialize callers on the entry's own lock.
type Entry struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	DeckID    uuid.UUID
	DeckTitle string
	Color     string
	Kind      Kind

	cardCount int

	mu    sync.Mutex
	study *Study
	quiz  *Quiz

	lastSeen time.Time // guarded by Registry.mu
}

func NewStudyEntry(ownerID uuid.UUID, deck *model.Deck) *Entry {
	e := newEntry(ownerID, deck, KindStudy)
	e.study = NewStudy(deck.CardList())
	return e
}

func NewQuizEntry(ownerID uuid.UUID, deck *model.Deck, shuffle Shuffler) *Entry {
	e := newEntry(ownerID, deck, KindQuiz)
	e.quiz = NewQuiz(deck.CardList(), shuffle)
	return e
}

func newEntry(ownerID uuid.UUID, deck *model.Deck, kind Kind) *Entry {
	return &Entry{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		DeckID:    deck.DeckID,
		DeckTitle: deck.Title,
		Color:     deck.Color,
		Kind:      kind,
		cardCount: len(deck.Cards),
	}
}

// CardCount is the size of the deck snapshot the session was started with.
func (e *Entry) CardCount() int {
	return e.cardCount
}

func (e *Entry) WithStudy(fn func(*Study) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.study == nil {
		return model.ErrNotFound
	}
	return fn(e.study)
}

func (e *Entry) WithQuiz(fn func(*Quiz) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.quiz == nil {
		return model.ErrNotFound
	}
	return fn(e.quiz)
}

// Registry holds the running sessions of all owners. Lookups are scoped by
// owner and kind, so a session id leaked to another owner resolves to
// ErrNotFound.
type Registry struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*Entry
	now     func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[uuid.UUID]*Entry),
		now:     time.Now,
	}
}

func (r *Registry) Add(e *Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.lastSeen = r.now()
	r.entries[e.ID] = e
}

// Get returns the entry and marks it as recently used.
func (r *Registry) Get(ownerID, id uuid.UUID, kind Kind) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.OwnerID != ownerID || e.Kind != kind {
		return nil, model.ErrNotFound
	}
	e.lastSeen = r.now()
	return e, nil
}

func (r *Registry) Remove(ownerID, id uuid.UUID, kind Kind) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.OwnerID != ownerID || e.Kind != kind {
		return nil, model.ErrNotFound
	}
	delete(r.entries, id)
	return e, nil
}

// SweepIdle drops sessions not used for longer than idle and returns how
// many were dropped.
func (r *Registry) SweepIdle(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-idle)
	removed := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
