// Package review derives the cross-session "mistake book": every question
// that was answered incorrectly or flagged unsure.
package review

import (
	"github.com/quizmaster/backend/internal/domain/quiz"
	"github.com/quizmaster/backend/internal/domain/session"
)

// Item is one reviewable question drawn from a session.
type Item struct {
	SessionID     string            `json:"sessionId"`
	QuizTitle     string            `json:"quizTitle"`
	QuestionID    int               `json:"questionId"`
	QuestionText  string            `json:"questionText"`
	UserAnswer    string            `json:"userAnswer"`
	CorrectAnswer string            `json:"correctAnswer"`
	Explanation   string            `json:"explanation"`
	IsCorrect     bool              `json:"isCorrect"`
	IsUnsure      bool              `json:"isUnsure"`
	Timestamp     int64             `json:"timestamp"`
	Type          quiz.QuestionType `json:"type"`
	Options       []string          `json:"options,omitempty"`
}

// Mistakes recomputes the review list from the live session set. It is a pure
// function and is never cached: answer edits and deletions elsewhere must show
// up on the next call. A question is included when it is incorrect or flagged
// unsure; the flag alone is enough, even for a correctly answered question.
// Output is ordered newest session first; inside a session the original
// question order is preserved.
func Mistakes(sessions []*session.QuizSession) []Item {
	ordered := make([]*session.QuizSession, len(sessions))
	copy(ordered, sessions)
	session.SortByNewest(ordered)

	items := []Item{}
	for _, sess := range ordered {
		for _, q := range sess.QuizData.Questions {
			userAnswer := sess.AnswerFor(q.ID)
			isCorrect := quiz.AnswerMatches(userAnswer, q.CorrectAnswer)
			isUnsure := sess.IsUnsure(q.ID)

			if isCorrect && !isUnsure {
				continue
			}

			items = append(items, Item{
				SessionID:     sess.ID,
				QuizTitle:     sess.QuizData.Title,
				QuestionID:    q.ID,
				QuestionText:  q.QuestionText,
				UserAnswer:    userAnswer,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
				IsCorrect:     isCorrect,
				IsUnsure:      isUnsure,
				Timestamp:     sess.Timestamp,
				Type:          q.Type,
				Options:       q.Options,
			})
		}
	}
	return items
}
