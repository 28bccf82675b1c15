package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/models"
	"go.uber.org/zap"
)

// Grade scores a session against the submitted answers, keyed by question
// index with the chosen choice index as value. Unanswered questions count
// as wrong. Outcomes are persisted per question; a storage failure there is
// logged and skipped so the result itself is never discarded.
func (q *QuizS) Grade(ctx context.Context, session models.QuizSession, answers map[int]int) models.QuizResult {
	result := models.QuizResult{
		SessionID: session.ID,
		Deck:      session.Deck,
		Total:     len(session.Questions),
	}

	now := time.Now()
	for i, question := range session.Questions {
		given := ""
		chosen, answered := answers[i]
		if answered && chosen >= 0 && chosen < len(question.Choices) {
			given = question.Choices[chosen]
		}

		right := answered && chosen == question.CorrectIndex
		if right {
			result.Right++
		}

		result.Questions = append(result.Questions, models.QuestionResult{
			CardID:    question.CardID,
			Prompt:    question.Prompt,
			Given:     given,
			Correct:   question.Correct(),
			IsCorrect: right,
		})

		err := q.results.AddQuizResult(ctx, models.ResultRecord{
			Deck:       session.Deck,
			CardID:     question.CardID,
			SessionID:  session.ID,
			IsCorrect:  right,
			AnsweredAt: now,
		})
		if err != nil {
			q.log.Warn("failed to save question result",
				zap.String("deck", session.Deck),
				zap.Int64("card_id", question.CardID),
				zap.Error(err))
		}
	}

	return result
}

// Stats formats the deck's persisted quiz outcomes.
func (q *QuizS) Stats(ctx context.Context, deck string) (string, error) {
	stats, err := q.results.QuizStats(ctx, deck)
	if err != nil {
		q.log.Warn("failed to get quiz stats", zap.String("deck", deck), zap.Error(err))
		return "", err
	}

	return quizStatsFormat(stats), nil
}

func quizStatsFormat(stats models.QuizStats) string {
	var sb strings.Builder

	sb.WriteString("Questions answered: ")
	sb.WriteString(strconv.Itoa(stats.TotalCount))
	sb.WriteString("\nRight: ")
	sb.WriteString(strconv.Itoa(stats.RightCount))
	sb.WriteString("\nWrong: ")
	sb.WriteString(strconv.Itoa(stats.WrongCount))

	return sb.String()
}
