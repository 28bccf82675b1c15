package models

import "time"

// QuestionResult is the graded outcome of a single question.
type QuestionResult struct {
	CardID    int64
	Prompt    string
	Given     string
	Correct   string
	IsCorrect bool
}

// QuizResult summarizes a scored session.
type QuizResult struct {
	SessionID string
	Deck      string
	Total     int
	Right     int
	Questions []QuestionResult
}

// Percent is the score as a rounded percentage, 0 for an empty quiz.
func (r QuizResult) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return (r.Right*100 + r.Total/2) / r.Total
}

// ResultRecord is one persisted per-question outcome.
type ResultRecord struct {
	Deck       string    `db:"deck"`
	CardID     int64     `db:"card_id"`
	SessionID  string    `db:"session_id"`
	IsCorrect  bool      `db:"is_correct"`
	AnsweredAt time.Time `db:"answered_at"`
}

// QuizStats aggregates persisted outcomes for a deck.
type QuizStats struct {
	TotalCount int `db:"total_count"`
	RightCount int `db:"right_count"`
	WrongCount int `db:"wrong_count"`
}
