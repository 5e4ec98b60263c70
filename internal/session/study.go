package session

import "studystack/internal/model"

// Face is the side of a study card currently shown.
type Face int

const (
	Front Face = iota
	Back
)

func (f Face) String() string {
	if f == Back {
		return "back"
	}
	return "front"
}

// Study is a self-paced walk over a deck in its stored order.
// Navigation is clamped at both ends and always turns the card face down.
type Study struct {
	cards []model.Flashcard
	index int
	face  Face
}

// NewStudy copies cards; later changes to the caller's slice are not seen.
// An empty slice gives a session that rejects every operation with ErrNoCards.
func NewStudy(cards []model.Flashcard) *Study {
	snapshot := make([]model.Flashcard, len(cards))
	copy(snapshot, cards)
	return &Study{cards: snapshot}
}

func (s *Study) Empty() bool { return len(s.cards) == 0 }
func (s *Study) Len() int { return len(s.cards) }
func (s *Study) Index() int { return s.index }
func (s *Study) Face() Face { return s.face }

// Current returns the card under the cursor; ok is false for an empty deck.
func (s *Study) Current() (card model.Flashcard, ok bool) {
	if s.Empty() {
		return model.Flashcard{}, false
	}
	return s.cards[s.index], true
}

func (s *Study) Flip() error {
	if s.Empty() {
		return ErrNoCards
	}
	if s.face == Front {
		s.face = Back
	} else {
		s.face = Front
	}
	return nil
}

// Next is a no-op on the last card.
func (s *Study) Next() error {
	if s.Empty() {
		return ErrNoCards
	}
	if s.index < len(s.cards)-1 {
		s.index++
		s.face = Front
	}
	return nil
}

// Previous is a no-op on the first card.
func (s *Study) Previous() error {
	if s.Empty() {
		return ErrNoCards
	}
	if s.index > 0 {
		s.index--
		s.face = Front
	}
	return nil
}
