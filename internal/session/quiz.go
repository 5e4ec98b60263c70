package session

import (
	"math/rand/v2"

	"studystack/internal/model"
)

// Shuffler permutes n elements through swap. rand.Shuffle satisfies it.
type Shuffler func(n int, swap func(i, j int))

// maxReshuffles bounds how often Restart draws again when a shuffle lands on
// the order of the previous run.
const maxReshuffles = 16

// Quiz is a scored run over a shuffled copy of a deck.
//
//	Asking(i) --Reveal--> Revealed(i) --Answer--> Asking(i+1) | Finished
//
// Finished is terminal until Restart.
type Quiz struct {
	original []model.Flashcard
	cards    []model.Flashcard
	shuffle  Shuffler

	index    int
	revealed bool
	correct  int
	finished bool
}

// NewQuiz builds a quiz over a uniformly shuffled copy of cards. A nil
// shuffler uses math/rand/v2.
func NewQuiz(cards []model.Flashcard, shuffle Shuffler) *Quiz {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	original := make([]model.Flashcard, len(cards))
	copy(original, cards)
	q := &Quiz{original: original, shuffle: shuffle}
	q.cards = q.permute()
	return q
}

func (q *Quiz) permute() []model.Flashcard {
	out := make([]model.Flashcard, len(q.original))
	copy(out, q.original)
	q.shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func (q *Quiz) Empty() bool { return len(q.cards) == 0 }
func (q *Quiz) Len() int { return len(q.cards) }
func (q *Quiz) Index() int { return q.index }
func (q *Quiz) Revealed() bool { return q.revealed }
func (q *Quiz) Finished() bool { return q.finished }

// Result is the score so far and the number of cards in the run.
func (q *Quiz) Result() (correct, total int) {
	return q.correct, len(q.cards)
}

// Order returns the ids of the current run in quiz order.
func (q *Quiz) Order() []string {
	ids := make([]string, len(q.cards))
	for i, c := range q.cards {
		ids[i] = c.ID
	}
	return ids
}

// Current returns the card being asked. ok is false for an empty deck and
// once the quiz has finished.
func (q *Quiz) Current() (card model.Flashcard, ok bool) {
	if q.Empty() || q.finished {
		return model.Flashcard{}, false
	}
	return q.cards[q.index], true
}

func (q *Quiz) Reveal() error {
	switch {
	case q.Empty():
		return ErrNoCards
	case q.finished:
		return ErrFinished
	case q.revealed:
		return ErrAlreadyRevealed
	}
	q.revealed = true
	return nil
}

// Answer records the user's verdict on the revealed card and moves on.
// Answering the last card finishes the quiz.
func (q *Quiz) Answer(isCorrect bool) error {
	switch {
	case q.Empty():
		return ErrNoCards
	case q.finished:
		return ErrFinished
	case !q.revealed:
		return ErrNotRevealed
	}
	if isCorrect {
		q.correct++
	}
	if q.index == len(q.cards)-1 {
		q.finished = true
		return nil
	}
	q.index++
	q.revealed = false
	return nil
}

// Restart reshuffles the original cards and clears the score. It may be
// called at any point. When more than one order is possible the new order
// differs from the one just played.
func (q *Quiz) Restart() error {
	if len(q.original) == 0 {
		return ErrNoCards
	}
	prev := q.cards
	next := q.permute()
	for attempt := 1; attempt < maxReshuffles && sameOrder(prev, next); attempt++ {
		next = q.permute()
	}
	q.cards = next
	q.index = 0
	q.revealed = false
	q.correct = 0
	q.finished = false
	return nil
}

func sameOrder(a, b []model.Flashcard) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
