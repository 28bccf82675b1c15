package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// HistoryS is the history store: the set of card ids already asked per deck.
// Updates are applied under a lock so concurrent commits for the same deck
// cannot lose each other's writes.
type HistoryS struct {
	repo HistoryRI
	mu   sync.Mutex
	log  *zap.Logger
}

func NewHistoryService(repo HistoryRI, log *zap.Logger) *HistoryS {
	return &HistoryS{
		repo: repo,
		log:  log,
	}
}

// AskedSet returns the deck's history as a set. An unreadable history is
// treated as empty so a storage fault never blocks quiz generation.
func (h *HistoryS) AskedSet(ctx context.Context, deck string) map[int64]struct{} {
	ids, err := h.repo.AskedCards(ctx, deck)
	if err != nil {
		h.log.Warn("history unreadable, treating as empty", zap.String("deck", deck), zap.Error(err))
		return map[int64]struct{}{}
	}

	asked := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		asked[id] = struct{}{}
	}
	return asked
}

func (h *HistoryS) HasBeenAsked(ctx context.Context, deck string, cardID int64) (bool, error) {
	return h.repo.WasAsked(ctx, deck, cardID)
}

// Record appends card ids to the deck's history. A write failure is returned
// as a warning for the caller to surface; the scored session stays valid.
func (h *HistoryS) Record(ctx context.Context, deck string, cardIDs []int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.repo.RecordAsked(ctx, deck, cardIDs); err != nil {
		h.log.Warn("failed to persist quiz history", zap.String("deck", deck), zap.Error(err))
		return fmt.Errorf("quiz history not saved: %w", err)
	}
	return nil
}

func (h *HistoryS) Clear(ctx context.Context, deck string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.repo.ClearHistory(ctx, deck); err != nil {
		return fmt.Errorf("failed to clear quiz history: %w", err)
	}
	return nil
}
