package models

// Card is a single front/back flashcard loaded from a deck.
type Card struct {
	ID    int64    `json:"id"`
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Tags  []string `json:"tags,omitempty"`
}

func (c Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Deck is a named collection of cards as read from the card store.
type Deck struct {
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}
