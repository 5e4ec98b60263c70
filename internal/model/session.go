// internal/model/session.go
package model

import "github.com/google/uuid"

// CardFace is the card as the client may currently see it. Answer is empty
// until the card is flipped or revealed.
type CardFace struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

// StudyView は学習セッションのレスポンスDTO
type StudyView struct {
	SessionID uuid.UUID `json:"session_id"`
	DeckID    uuid.UUID `json:"deck_id"`
	DeckTitle string    `json:"deck_title"`
	Color     string    `json:"color"`
	Empty     bool      `json:"empty"`
	Index     int       `json:"index"`
	Total     int       `json:"total"`
	Face      string    `json:"face"`
	Card      *CardFace `json:"card,omitempty"`
}

// QuizView はクイズセッションのレスポンスDTO
type QuizView struct {
	SessionID    uuid.UUID `json:"session_id"`
	DeckID       uuid.UUID `json:"deck_id"`
	DeckTitle    string    `json:"deck_title"`
	Color        string    `json:"color"`
	Empty        bool      `json:"empty"`
	Index        int       `json:"index"`
	Total        int       `json:"total"`
	Revealed     bool      `json:"revealed"`
	CorrectCount int       `json:"correct_count"`
	Finished     bool      `json:"finished"`
	Card         *CardFace `json:"card,omitempty"`
}

// SubmitAnswerRequest はクイズ回答送信リクエストのDTO
type SubmitAnswerRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
}
