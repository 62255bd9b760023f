package quiz

import (
	"errors"
	"fmt"
	"strings"
)

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	TypeFillInBlank    QuestionType = "FILL_IN_BLANK"
)

// Question is a single generated quiz question. Questions are immutable once
// a session owns them; the id is unique within its QuizData.
type Question struct {
	ID            int          `json:"id"`
	Type          QuestionType `json:"type"`
	QuestionText  string       `json:"questionText"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
}

// QuizData is the generated quiz content. It is owned exclusively by the
// session that holds it and never shared or mutated after creation.
type QuizData struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Validate checks the structural rules for generated content: at least one
// question, unique question ids, and options only on multiple-choice questions.
func (d *QuizData) Validate() error {
	if len(d.Questions) == 0 {
		return errors.New("quiz has no questions")
	}
	seen := make(map[int]bool, len(d.Questions))
	for _, q := range d.Questions {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true

		if q.Type != TypeMultipleChoice && q.Type != TypeFillInBlank {
			return fmt.Errorf("question %d: invalid type %q", q.ID, q.Type)
		}
		if q.QuestionText == "" {
			return fmt.Errorf("question %d: empty question text", q.ID)
		}
		if q.Type == TypeMultipleChoice && len(q.Options) == 0 {
			return fmt.Errorf("question %d: multiple choice without options", q.ID)
		}
	}
	return nil
}

// HasQuestion reports whether the quiz contains a question with the given id.
func (d *QuizData) HasQuestion(questionID int) bool {
	for _, q := range d.Questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}

// AnswerMatches compares a submitted answer against the correct one using
// trimmed, case-insensitive equality. An unanswered question is the empty
// string and matches only an empty correct answer.
func AnswerMatches(answer, correctAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(correctAnswer))
}
