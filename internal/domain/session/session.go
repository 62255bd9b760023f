package session

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/quizmaster/backend/internal/domain/quiz"
	"github.com/quizmaster/backend/internal/id"
)

// ErrQuestionNotFound is returned when an answer or unsure flag references a
// question id that is not part of the session's quiz data.
var ErrQuestionNotFound = errors.New("question not in session")

// QuizSession is the unit of persistence and identity: one user attempt at a
// generated quiz, including answers, unsure flags, and completion state.
// The JSON tags are the persisted document format and the backup wire format.
type QuizSession struct {
	ID                string         `json:"id"`
	Timestamp         int64          `json:"timestamp"` // creation time, Unix milliseconds
	QuizData          quiz.QuizData  `json:"quizData"`
	UserAnswers       map[int]string `json:"userAnswers"`
	UnsureQuestionIDs []int          `json:"unsureQuestionIds"`
	IsCompleted       bool           `json:"isCompleted"`
	Score             int            `json:"score"`
}

// New creates a session for freshly generated quiz data: new id, creation
// timestamp, no answers, no unsure flags, not completed.
func New(data quiz.QuizData) *QuizSession {
	return &QuizSession{
		ID:                id.GenerateID(),
		Timestamp:         time.Now().UnixMilli(),
		QuizData:          data,
		UserAnswers:       map[int]string{},
		UnsureQuestionIDs: []int{},
		IsCompleted:       false,
		Score:             0,
	}
}

// SetAnswer records or overwrites the answer for a question. The question id
// must reference a question in this session's quiz data.
func (s *QuizSession) SetAnswer(questionID int, answer string) error {
	if !s.QuizData.HasQuestion(questionID) {
		return fmt.Errorf("%w: question %d, session %s", ErrQuestionNotFound, questionID, s.ID)
	}
	if s.UserAnswers == nil {
		s.UserAnswers = map[int]string{}
	}
	s.UserAnswers[questionID] = answer
	return nil
}

// ToggleUnsure flips the unsure flag for a question.
func (s *QuizSession) ToggleUnsure(questionID int) error {
	if !s.QuizData.HasQuestion(questionID) {
		return fmt.Errorf("%w: question %d, session %s", ErrQuestionNotFound, questionID, s.ID)
	}
	for i, qid := range s.UnsureQuestionIDs {
		if qid == questionID {
			s.UnsureQuestionIDs = append(s.UnsureQuestionIDs[:i], s.UnsureQuestionIDs[i+1:]...)
			return nil
		}
	}
	s.UnsureQuestionIDs = append(s.UnsureQuestionIDs, questionID)
	return nil
}

// IsUnsure reports whether the question is flagged unsure.
func (s *QuizSession) IsUnsure(questionID int) bool {
	for _, qid := range s.UnsureQuestionIDs {
		if qid == questionID {
			return true
		}
	}
	return false
}

// AnswerFor returns the recorded answer, or "" when unanswered.
func (s *QuizSession) AnswerFor(questionID int) string {
	return s.UserAnswers[questionID]
}

// Complete replaces the answers and unsure flags with the final submitted
// values, computes the score, and marks the session completed. IsCompleted is
// monotonic: calling Complete on an already-completed session recomputes the
// score from the supplied answers but never reverts completion.
func (s *QuizSession) Complete(finalAnswers map[int]string, finalUnsureIDs []int) error {
	for qid := range finalAnswers {
		if !s.QuizData.HasQuestion(qid) {
			return fmt.Errorf("%w: answer for question %d, session %s", ErrQuestionNotFound, qid, s.ID)
		}
	}
	for _, qid := range finalUnsureIDs {
		if !s.QuizData.HasQuestion(qid) {
			return fmt.Errorf("%w: unsure flag for question %d, session %s", ErrQuestionNotFound, qid, s.ID)
		}
	}

	answers := make(map[int]string, len(finalAnswers))
	for qid, a := range finalAnswers {
		answers[qid] = a
	}
	unsure := make([]int, len(finalUnsureIDs))
	copy(unsure, finalUnsureIDs)

	s.UserAnswers = answers
	s.UnsureQuestionIDs = unsure
	s.Score = computeScore(s.QuizData, answers)
	s.IsCompleted = true
	return nil
}

// Clone returns a deep copy so callers can hand sessions out without aliasing
// the mutable answer map and unsure slice.
func (s *QuizSession) Clone() *QuizSession {
	clone := *s
	clone.UserAnswers = make(map[int]string, len(s.UserAnswers))
	for qid, a := range s.UserAnswers {
		clone.UserAnswers[qid] = a
	}
	clone.UnsureQuestionIDs = make([]int, len(s.UnsureQuestionIDs))
	copy(clone.UnsureQuestionIDs, s.UnsureQuestionIDs)
	return &clone
}

// SortByNewest orders sessions most recent first, the display order for
// history lists. Ties keep their relative order.
func SortByNewest(sessions []*QuizSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Timestamp > sessions[j].Timestamp
	})
}

// computeScore is the single scoring rule: round(100 * correct / total),
// where an absent answer counts as the empty string.
func computeScore(data quiz.QuizData, answers map[int]string) int {
	total := len(data.Questions)
	if total == 0 {
		return 0
	}
	correct := 0
	for _, q := range data.Questions {
		if quiz.AnswerMatches(answers[q.ID], q.CorrectAnswer) {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
