package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"opening_quiz/config"
	"opening_quiz/internal/model"
	"opening_quiz/internal/service/quizService"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type stubQuizService struct {
	pairs []model.QuizPair
	err   error
}

func (s *stubQuizService) SamplePairsStrict(_ context.Context, _ int, _ *int64) ([]model.QuizPair, error) {
	return s.pairs, s.err
}

type consoleSuite struct {
	suite.Suite

	cfg *config.Config
}

func TestConsoleSuite(t *testing.T) {
	suite.Run(t, new(consoleSuite))
}

func (s *consoleSuite) SetupSuite() {
	s.cfg = &config.Config{}
}

func pairFixture(bookID int, correctLabel string) model.QuizPair {
	first := model.QuizOption{Slot: model.SlotA, Label: model.LabelOriginal, Text: "human text"}
	second := model.QuizOption{Slot: model.SlotB, Label: model.LabelGpt, Text: "machine text"}
	if correctLabel == model.SlotB {
		first.Label, second.Label = second.Label, first.Label
		first.Text, second.Text = second.Text, first.Text
	}

	return model.QuizPair{
		BookID:       bookID,
		Title:        "Some Novel",
		Author:       "Some Author",
		Options:      []model.QuizOption{first, second},
		CorrectLabel: correctLabel,
	}
}

func (s *consoleSuite) Test_Run_ScoresAnswers() {
	service := &stubQuizService{pairs: []model.QuizPair{
		pairFixture(1, model.SlotA),
		pairFixture(2, model.SlotB),
	}}

	in := strings.NewReader("a\na\n")
	out := &bytes.Buffer{}
	ctrl := NewController(s.cfg, service, in, out)

	err := ctrl.Run(context.Background(), 2, nil)

	assert.Nil(s.T(), err)
	assert.Contains(s.T(), out.String(), "You answered 1 of 2 correctly (50.0%).")
	assert.Contains(s.T(), out.String(), "Your pick: A | Correct answer: A | Correct")
	assert.Contains(s.T(), out.String(), "Your pick: A | Correct answer: B | Incorrect")
}

func (s *consoleSuite) Test_Run_RevealShowsLabels() {
	service := &stubQuizService{pairs: []model.QuizPair{pairFixture(1, model.SlotA)}}

	out := &bytes.Buffer{}
	ctrl := NewController(s.cfg, service, strings.NewReader("b\n"), out)

	err := ctrl.Run(context.Background(), 1, nil)

	assert.Nil(s.T(), err)
	assert.Contains(s.T(), out.String(), "--- A [Original] ---")
	assert.Contains(s.T(), out.String(), "--- B [GPT] ---")
}

func (s *consoleSuite) Test_Run_RepromptsOnInvalidInput() {
	service := &stubQuizService{pairs: []model.QuizPair{pairFixture(1, model.SlotA)}}

	out := &bytes.Buffer{}
	ctrl := NewController(s.cfg, service, strings.NewReader("x\n\nA\n"), out)

	err := ctrl.Run(context.Background(), 1, nil)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 3, strings.Count(out.String(), "Pick A or B: "))
	assert.Contains(s.T(), out.String(), "You answered 1 of 1 correctly (100.0%).")
}

func (s *consoleSuite) Test_Run_ServiceErrPropagates() {
	service := &stubQuizService{err: quizService.ErrInsufficientPairs}

	ctrl := NewController(s.cfg, service, strings.NewReader(""), &bytes.Buffer{})

	err := ctrl.Run(context.Background(), 10, nil)

	assert.ErrorIs(s.T(), err, quizService.ErrInsufficientPairs)
}

func (s *consoleSuite) Test_Run_InputClosedErr() {
	service := &stubQuizService{pairs: []model.QuizPair{pairFixture(1, model.SlotA)}}

	ctrl := NewController(s.cfg, service, strings.NewReader(""), &bytes.Buffer{})

	err := ctrl.Run(context.Background(), 1, nil)

	assert.NotNil(s.T(), err)
	assert.False(s.T(), errors.Is(err, quizService.ErrInsufficientPairs))
}
