package repository

import (
	"context"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/models"
)

type ResultsR struct {
	db QueryI
}

func NewResultsRepository(db QueryI) *ResultsR {
	return &ResultsR{
		db: db,
	}
}

func (r *ResultsR) AddQuizResult(ctx context.Context, record models.ResultRecord) error {
	query := `
        INSERT INTO quiz_results (deck, card_id, session_id, is_correct, answered_at)
        VALUES (?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query, record.Deck, record.CardID, record.SessionID, record.IsCorrect, record.AnsweredAt)
	if err != nil {
		return err
	}

	return nil
}

func (r *ResultsR) QuizStats(ctx context.Context, deck string) (models.QuizStats, error) {
	query := `SELECT
		COUNT(*) AS total_count,
		COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) AS right_count
	FROM quiz_results
	WHERE deck = ?`

	var stats models.QuizStats
	err := r.db.GetContext(ctx, &stats, query, deck)
	if err != nil {
		return models.QuizStats{}, err
	}

	stats.WrongCount = stats.TotalCount - stats.RightCount

	return stats, nil
}
