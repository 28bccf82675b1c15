package models

import "time"

// QuizConfig holds the options a quiz is generated under.
type QuizConfig struct {
	QuestionCount    int      `mapstructure:"question_count" validate:"min=1"`
	ChoiceCount      int      `mapstructure:"choice_count" validate:"min=2"`
	QuestionsPerPage int      `mapstructure:"questions_per_page" validate:"min=1"`
	AllowAnswerReuse bool     `mapstructure:"allow_answer_reuse"`
	SaveHistory      bool     `mapstructure:"save_history"`
	ExcludedTags     []string `mapstructure:"excluded_tags"`
}

// Question is a card promoted to quiz form. Choices holds the correct back
// text and the sampled distractors in randomized order.
type Question struct {
	CardID       int64    `json:"card_id"`
	Prompt       string   `json:"prompt"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correct_index"`
}

// Correct returns the choice text the CorrectIndex marks.
func (q Question) Correct() string {
	return q.Choices[q.CorrectIndex]
}

// QuizSession is one generated quiz: questions in order, partitioned into
// pages, with the config snapshot it was built under. Never persisted.
type QuizSession struct {
	ID        string
	Deck      string
	Config    QuizConfig
	Questions []Question
	Pages     [][]Question
	CreatedAt time.Time
}

// CardIDs lists the identifiers of the cards asked in this session.
func (s QuizSession) CardIDs() []int64 {
	ids := make([]int64, 0, len(s.Questions))
	for _, q := range s.Questions {
		ids = append(ids, q.CardID)
	}
	return ids
}
