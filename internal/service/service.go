package service

import (
	"context"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/models"
	"go.uber.org/zap"
)

type DeckLoaderI interface {
	LoadDeck(ctx context.Context, name string, excludeTags []string) ([]models.Card, error)
}

type HistoryRI interface {
	WasAsked(ctx context.Context, deck string, cardID int64) (bool, error)
	AskedCards(ctx context.Context, deck string) ([]int64, error)
	RecordAsked(ctx context.Context, deck string, cardIDs []int64) error
	ClearHistory(ctx context.Context, deck string) error
}

type ResultsRI interface {
	AddQuizResult(ctx context.Context, record models.ResultRecord) error
	QuizStats(ctx context.Context, deck string) (models.QuizStats, error)
}

type RepositoryI interface {
	HistoryRI
	ResultsRI
}

type Service struct {
	*HistoryS
	*QuizS
}

func InitServices(loader DeckLoaderI, repo RepositoryI, log *zap.Logger) *Service {
	history := NewHistoryService(repo, log)
	return &Service{
		HistoryS: history,
		QuizS:    NewQuizService(loader, history, repo, nil, log),
	}
}
