package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/models"
	"go.uber.org/zap"
)

// FileLoader reads a deck snapshot from a JSON file. It stands in for the
// host application's card store: the core only ever sees the filtered cards.
type FileLoader struct {
	path string
	log  *zap.Logger
}

func NewFileLoader(path string, log *zap.Logger) *FileLoader {
	return &FileLoader{
		path: path,
		log:  log,
	}
}

// LoadDeck returns the deck's cards with excluded tags filtered out. Cards
// with an empty front or back are dropped. An empty name accepts whatever
// deck the file holds.
func (l *FileLoader) LoadDeck(ctx context.Context, name string, excludeTags []string) ([]models.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	var deck models.Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("failed to parse deck file %q: %w", l.path, err)
	}

	if name != "" && deck.Name != "" && deck.Name != name {
		return nil, fmt.Errorf("deck %q not found in %q (file holds %q)", name, l.path, deck.Name)
	}

	cards := make([]models.Card, 0, len(deck.Cards))
	dropped := 0
	for _, card := range deck.Cards {
		if strings.TrimSpace(card.Front) == "" || strings.TrimSpace(card.Back) == "" {
			dropped++
			continue
		}
		if hasExcludedTag(card, excludeTags) {
			continue
		}
		cards = append(cards, card)
	}

	if dropped > 0 {
		l.log.Warn("dropped cards with empty fields", zap.String("deck", deck.Name), zap.Int("dropped", dropped))
	}

	return cards, nil
}

func hasExcludedTag(card models.Card, excludeTags []string) bool {
	for _, tag := range excludeTags {
		if tag != "" && card.HasTag(tag) {
			return true
		}
	}
	return false
}
