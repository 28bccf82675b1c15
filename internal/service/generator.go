package service

import (
	"context"
	crypto "crypto/rand"
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HistorySI interface {
	AskedSet(ctx context.Context, deck string) map[int64]struct{}
	Record(ctx context.Context, deck string, cardIDs []int64) error
	Clear(ctx context.Context, deck string) error
}

// QuizS turns a deck of cards into a randomized multiple-choice session.
type QuizS struct {
	loader  DeckLoaderI
	history HistorySI
	results ResultsRI
	rng     *rand.Rand
	log     *zap.Logger
}

// NewQuizService builds the generator. rng may be nil, in which case a
// freshly seeded source is used; tests pass a fixed seed for determinism.
func NewQuizService(loader DeckLoaderI, history HistorySI, results ResultsRI, rng *rand.Rand, log *zap.Logger) *QuizS {
	if rng == nil {
		rng = rand.New(rand.NewSource(randomSeed(log)))
	}
	return &QuizS{
		loader:  loader,
		history: history,
		results: results,
		rng:     rng,
		log:     log,
	}
}

// Generate builds a quiz session for the deck under cfg. It has no side
// effects: history is only written when the caller commits the session.
func (q *QuizS) Generate(ctx context.Context, deckName string, cfg models.QuizConfig) (models.QuizSession, error) {
	if err := validateConfig(cfg); err != nil {
		return models.QuizSession{}, err
	}

	cards, err := q.loader.LoadDeck(ctx, deckName, cfg.ExcludedTags)
	if err != nil {
		return models.QuizSession{}, fmt.Errorf("failed to load deck %q: %w", deckName, err)
	}

	eligible := cards
	if cfg.SaveHistory {
		asked := q.history.AskedSet(ctx, deckName)
		eligible = make([]models.Card, 0, len(cards))
		for _, card := range cards {
			if _, ok := asked[card.ID]; !ok {
				eligible = append(eligible, card)
			}
		}
	}

	if len(eligible) < cfg.QuestionCount {
		q.log.Warn("not enough eligible cards",
			zap.String("deck", deckName),
			zap.Int("eligible", len(eligible)),
			zap.Int("requested", cfg.QuestionCount))
		return models.QuizSession{}, &InsufficientCardsError{
			Requested: cfg.QuestionCount,
			Eligible:  len(eligible),
			Excluded:  len(cards) - len(eligible),
		}
	}

	// Distractors come from the whole loaded deck, not just the selected
	// cards, so small question counts still get a plausible answer pool.
	answerPool := make([]string, 0, len(cards))
	for _, card := range cards {
		answerPool = append(answerPool, card.Back)
	}

	questions := make([]models.Question, 0, cfg.QuestionCount)
	for _, i := range q.rng.Perm(len(eligible))[:cfg.QuestionCount] {
		card := eligible[i]

		distractors, err := sampleDistractors(q.rng, card.Back, answerPool, cfg.ChoiceCount-1, cfg.AllowAnswerReuse)
		if err != nil {
			return models.QuizSession{}, err
		}

		questions = append(questions, buildQuestion(q.rng, card, distractors))
	}

	return models.QuizSession{
		ID:        uuid.NewString(),
		Deck:      deckName,
		Config:    cfg,
		Questions: questions,
		Pages:     paginate(questions, cfg.QuestionsPerPage),
		CreatedAt: time.Now(),
	}, nil
}

// Commit records the session's cards in history. Called after scoring so an
// abandoned session never pollutes history. The returned error is a warning:
// the session result stands even when history could not be written.
func (q *QuizS) Commit(ctx context.Context, session models.QuizSession) error {
	if !session.Config.SaveHistory {
		return nil
	}
	return q.history.Record(ctx, session.Deck, session.CardIDs())
}

// ResetHistory drops every recorded question for the deck.
func (q *QuizS) ResetHistory(ctx context.Context, deck string) error {
	return q.history.Clear(ctx, deck)
}

func validateConfig(cfg models.QuizConfig) error {
	switch {
	case cfg.QuestionCount <= 0:
		return &InvalidConfigError{Field: "questionCount", Reason: "must be greater than 0"}
	case cfg.ChoiceCount < 2:
		return &InvalidConfigError{Field: "choiceCount", Reason: "must be at least 2"}
	case cfg.QuestionsPerPage <= 0:
		return &InvalidConfigError{Field: "questionsPerPage", Reason: "must be greater than 0"}
	}
	return nil
}

func paginate(questions []models.Question, perPage int) [][]models.Question {
	pages := make([][]models.Question, 0, (len(questions)+perPage-1)/perPage)
	for start := 0; start < len(questions); start += perPage {
		end := start + perPage
		if end > len(questions) {
			end = len(questions)
		}
		pages = append(pages, questions[start:end])
	}
	return pages
}

func randomSeed(log *zap.Logger) int64 {
	n, err := crypto.Int(crypto.Reader, big.NewInt(1<<62))
	if err != nil {
		log.Warn("crypto/rand failed, seeding from clock", zap.Error(err))
		return time.Now().UnixNano()
	}
	return n.Int64()
}
