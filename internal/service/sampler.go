package service

import (
	"math/rand"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/models"
)

// sampleDistractors picks k wrong answers for correct out of pool. The pool
// may contain duplicates and the correct answer itself; candidates are
// deduplicated by normalized text and never normalized-equal to correct.
// With allowReuse set, a pool shorter than k is topped up by sampling with
// replacement, so duplicates may appear among the distractors.
func sampleDistractors(rng *rand.Rand, correct string, pool []string, k int, allowReuse bool) ([]string, error) {
	correctNorm := normalizeAnswer(correct)

	seen := make(map[string]bool)
	candidates := make([]string, 0, len(pool))
	for _, answer := range pool {
		norm := normalizeAnswer(answer)
		if norm == "" || norm == correctNorm || seen[norm] {
			continue
		}
		seen[norm] = true
		candidates = append(candidates, answer)
	}

	if len(candidates) >= k {
		distractors := make([]string, 0, k)
		for _, i := range rng.Perm(len(candidates))[:k] {
			distractors = append(distractors, candidates[i])
		}
		return distractors, nil
	}

	if !allowReuse || len(candidates) == 0 {
		return nil, &InsufficientPoolError{Needed: k, Available: len(candidates)}
	}

	distractors := make([]string, 0, k)
	distractors = append(distractors, candidates...)
	for len(distractors) < k {
		distractors = append(distractors, candidates[rng.Intn(len(candidates))])
	}

	return distractors, nil
}

// buildQuestion assembles the card's question: correct answer plus
// distractors in randomized order, with the correct index marked.
func buildQuestion(rng *rand.Rand, card models.Card, distractors []string) models.Question {
	choices := make([]string, 0, len(distractors)+1)
	choices = append(choices, card.Back)
	choices = append(choices, distractors...)

	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	correctIndex := 0
	for i, choice := range choices {
		if choice == card.Back {
			correctIndex = i
			break
		}
	}

	return models.Question{
		CardID:       card.ID,
		Prompt:       card.Front,
		Choices:      choices,
		CorrectIndex: correctIndex,
	}
}
