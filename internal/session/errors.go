// Package session holds the in-memory state machines for study and quiz
// runs over a deck's cards. Nothing here touches storage; a machine is built
// from a card snapshot and is discarded when the run ends.
package session

import (
	"fmt"

	"studystack/internal/model"
)

// Precondition violations. All of them wrap model.ErrInvalidState.
var (
	ErrNoCards         = fmt.Errorf("%w: deck has no cards", model.ErrInvalidState)
	ErrAlreadyRevealed = fmt.Errorf("%w: answer already revealed", model.ErrInvalidState)
	ErrNotRevealed     = fmt.Errorf("%w: answer not revealed yet", model.ErrInvalidState)
	ErrFinished        = fmt.Errorf("%w: quiz already finished", model.ErrInvalidState)
)
