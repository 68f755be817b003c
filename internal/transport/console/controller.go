package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"opening_quiz/config"
	"opening_quiz/internal/model"
)

type QuizService interface {
	SamplePairsStrict(ctx context.Context, count int, seed *int64) ([]model.QuizPair, error)
}

// Controller гоняет интерактивную викторину в терминале: показывает пары,
// читает ответы A/B и в конце печатает точность с полным раскрытием ответов.
type Controller struct {
	cfg         *config.Config
	quizService QuizService
	in          *bufio.Scanner
	out         io.Writer
}

func NewController(cfg *config.Config, quizService QuizService, in io.Reader, out io.Writer) *Controller {
	return &Controller{
		cfg:         cfg,
		quizService: quizService,
		in:          bufio.NewScanner(in),
		out:         out,
	}
}

type answer struct {
	pairNum   int
	pair      model.QuizPair
	picked    string
	isCorrect bool
}

func (ctrl *Controller) Run(ctx context.Context, count int, seed *int64) error {
	pairs, err := ctrl.quizService.SamplePairsStrict(ctx, count, seed)
	if err != nil {
		return err
	}

	answers, err := ctrl.askUser(pairs)
	if err != nil {
		return err
	}

	ctrl.showResults(answers)

	return nil
}

func (ctrl *Controller) askUser(pairs []model.QuizPair) ([]answer, error) {
	answers := make([]answer, 0, len(pairs))
	for idx, pair := range pairs {
		fmt.Fprintf(ctrl.out, "\nPair %d: %s by %s\n", idx+1, pair.Title, pair.Author)
		for _, opt := range pair.Options {
			fmt.Fprintf(ctrl.out, "\n--- %s ---\n%s\n", opt.Slot, opt.Text)
		}

		picked, err := ctrl.readChoice()
		if err != nil {
			return nil, err
		}

		answers = append(answers, answer{
			pairNum:   idx + 1,
			pair:      pair,
			picked:    picked,
			isCorrect: picked == pair.CorrectLabel,
		})
	}

	return answers, nil
}

// readChoice перечитывает ввод, пока не получит A либо B.
func (ctrl *Controller) readChoice() (string, error) {
	for {
		fmt.Fprint(ctrl.out, "Pick A or B: ")

		if !ctrl.in.Scan() {
			if err := ctrl.in.Err(); err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			return "", fmt.Errorf("input closed: %w", io.EOF)
		}

		choice := strings.ToUpper(strings.TrimSpace(ctrl.in.Text()))
		if choice == model.SlotA || choice == model.SlotB {
			return choice, nil
		}
	}
}

func (ctrl *Controller) showResults(answers []answer) {
	correct := 0
	for _, a := range answers {
		if a.isCorrect {
			correct++
		}
	}

	accuracy := 0.0
	if len(answers) > 0 {
		accuracy = float64(correct) / float64(len(answers)) * 100
	}

	fmt.Fprintf(ctrl.out, "\nYou answered %d of %d correctly (%.1f%%).\n", correct, len(answers), accuracy)
	fmt.Fprint(ctrl.out, "\nReview the pairs with labels:\n\n")

	for _, a := range answers {
		fmt.Fprintf(ctrl.out, "Pair %d: %s by %s\n", a.pairNum, a.pair.Title, a.pair.Author)
		for _, opt := range a.pair.Options {
			fmt.Fprintf(ctrl.out, "\n--- %s [%s] ---\n%s\n", opt.Slot, opt.Label, opt.Text)
		}

		verdict := "Incorrect"
		if a.isCorrect {
			verdict = "Correct"
		}
		fmt.Fprintf(ctrl.out, "\nYour pick: %s | Correct answer: %s | %s\n\n", a.picked, a.pair.CorrectLabel, verdict)
	}
}
