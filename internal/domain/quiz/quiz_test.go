package quiz_test

import (
	"testing"

	"github.com/quizmaster/backend/internal/domain/quiz"
)

func TestAnswerMatches_TrimsAndIgnoresCase(t *testing.T) {
	if !quiz.AnswerMatches("  paris ", "Paris") {
		t.Error("expected 'paris' to match 'Paris' after trimming and case folding")
	}
	if quiz.AnswerMatches("london", "Paris") {
		t.Error("expected 'london' not to match 'Paris'")
	}
}

func TestAnswerMatches_EmptyAnswers(t *testing.T) {
	if !quiz.AnswerMatches("", "") {
		t.Error("expected empty answer to match empty correct answer")
	}
	if quiz.AnswerMatches("", "Paris") {
		t.Error("expected unanswered question not to match a non-empty correct answer")
	}
}

func TestValidate_AcceptsWellFormedQuiz(t *testing.T) {
	data := quiz.QuizData{
		Title: "Capitals",
		Questions: []quiz.Question{
			{ID: 0, Type: quiz.TypeMultipleChoice, QuestionText: "Capital of France?", Options: []string{"Paris", "London", "Rome", "Berlin"}, CorrectAnswer: "Paris"},
			{ID: 1, Type: quiz.TypeFillInBlank, QuestionText: "Capital of Italy?", CorrectAnswer: "Rome"},
		},
	}
	if err := data.Validate(); err != nil {
		t.Errorf("expected valid quiz, got %v", err)
	}
}

func TestValidate_RejectsEmptyQuiz(t *testing.T) {
	data := quiz.QuizData{Title: "Empty"}
	if err := data.Validate(); err == nil {
		t.Error("expected error for quiz without questions")
	}
}

func TestValidate_RejectsDuplicateIDs(t *testing.T) {
	data := quiz.QuizData{
		Questions: []quiz.Question{
			{ID: 1, Type: quiz.TypeFillInBlank, QuestionText: "a", CorrectAnswer: "x"},
			{ID: 1, Type: quiz.TypeFillInBlank, QuestionText: "b", CorrectAnswer: "y"},
		},
	}
	if err := data.Validate(); err == nil {
		t.Error("expected error for duplicate question ids")
	}
}

func TestValidate_RejectsMultipleChoiceWithoutOptions(t *testing.T) {
	data := quiz.QuizData{
		Questions: []quiz.Question{
			{ID: 0, Type: quiz.TypeMultipleChoice, QuestionText: "pick one", CorrectAnswer: "x"},
		},
	}
	if err := data.Validate(); err == nil {
		t.Error("expected error for multiple choice question without options")
	}
}
