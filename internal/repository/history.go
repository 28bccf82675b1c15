package repository

import (
	"context"
	"fmt"
)

type HistoryR struct {
	db QueryI
}

func NewHistoryRepository(db QueryI) *HistoryR {
	return &HistoryR{
		db: db,
	}
}

func (h *HistoryR) WasAsked(ctx context.Context, deck string, cardID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM quiz_history WHERE deck = ? AND card_id = ?)`

	var exists bool
	if err := h.db.GetContext(ctx, &exists, query, deck, cardID); err != nil {
		return false, fmt.Errorf("failed to check history for deck %q: %w", deck, err)
	}

	return exists, nil
}

func (h *HistoryR) AskedCards(ctx context.Context, deck string) ([]int64, error) {
	query := `SELECT card_id FROM quiz_history WHERE deck = ? ORDER BY card_id`

	ids := make([]int64, 0)
	if err := h.db.SelectContext(ctx, &ids, query, deck); err != nil {
		return nil, fmt.Errorf("failed to load history for deck %q: %w", deck, err)
	}

	return ids, nil
}

// RecordAsked appends card ids to the deck's history. Re-adding an already
// recorded id is a no-op.
func (h *HistoryR) RecordAsked(ctx context.Context, deck string, cardIDs []int64) error {
	query := `INSERT OR IGNORE INTO quiz_history (deck, card_id) VALUES (?, ?)`

	for _, id := range cardIDs {
		if _, err := h.db.ExecContext(ctx, query, deck, id); err != nil {
			return fmt.Errorf("failed to record card %d for deck %q: %w", id, deck, err)
		}
	}

	return nil
}

func (h *HistoryR) ClearHistory(ctx context.Context, deck string) error {
	query := `DELETE FROM quiz_history WHERE deck = ?`

	if _, err := h.db.ExecContext(ctx, query, deck); err != nil {
		return fmt.Errorf("failed to clear history for deck %q: %w", deck, err)
	}

	return nil
}
