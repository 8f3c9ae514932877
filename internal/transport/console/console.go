package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const clearScreen = "\033[H\033[2J"

// Console talks to the person at the terminal. Every prompt repeats until the answer is valid.
type Console struct {
	logger    *slog.Logger
	in        *bufio.Scanner
	out       io.Writer
	formatter *Formatter
}

func NewConsole(logger *slog.Logger, in io.Reader, out io.Writer, formatter *Formatter) *Console {
	return &Console{
		logger:    logger.With("component", "console"),
		in:        bufio.NewScanner(in),
		out:       out,
		formatter: formatter,
	}
}

func (that *Console) AskName(ctx context.Context) (string, error) {
	for {
		that.println("What is your first name?")

		line, err := that.readLine(ctx)
		if err != nil {
			return "", err
		}

		if name := capitalize(line); name != "" {
			return name, nil
		}

		that.println("Sorry, must enter a value.")
	}
}

func (that *Console) ChooseMark(ctx context.Context, valid []entity.Mark) (entity.Mark, error) {
	log := that.logger.With("method", "ChooseMark")

	that.println("Choose your marker: " + that.formatter.Marks(valid))

	for {
		line, err := that.readLine(ctx)
		if err != nil {
			return entity.EmptyMark, err
		}

		mark, err := entity.ParseMark(line)
		if err == nil && slices.Contains(valid, mark) {
			return mark, nil
		}

		log.Debug("invalid marker", "input", line)
		that.println("Please enter a valid marker.")
	}
}

func (that *Console) RequestMove(ctx context.Context, valid []int) (int, error) {
	log := that.logger.With("method", "RequestMove")

	that.println(fmt.Sprintf("Choose a square (%s): ", that.formatter.Positions(valid)))

	for {
		line, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		position, err := strconv.Atoi(line)
		if err == nil && slices.Contains(valid, position) {
			return position, nil
		}

		log.Debug("invalid square", "input", line)
		that.println("Sorry, that's not a valid choice.")
	}
}

func (that *Console) ChooseFirstPlayer(ctx context.Context, human, computer string) (entity.FirstPlayer, error) {
	for {
		that.println("Please select who goes first:")
		that.println("(1) " + human)
		that.println("(2) " + computer)
		that.println("(3) I'm Feeling Lucky")

		line, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		switch choice, _ := strconv.Atoi(line); entity.FirstPlayer(choice) {
		case entity.FirstHuman:
			that.println("You are going first!")
			return entity.FirstHuman, nil
		case entity.FirstComputer:
			that.println("The computer is first!")
			return entity.FirstComputer, nil
		case entity.FirstRandom:
			that.println("Leaving it to luck!")
			return entity.FirstRandom, nil
		}

		that.println("Please enter a valid choice.")
	}
}

// Confirm asks a yes/no question and accepts only y or n.
func (that *Console) Confirm(ctx context.Context, prompt string) (bool, error) {
	for {
		that.println(prompt + " (y/n)")

		line, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y":
			that.println("Let's play again!")
			that.println("")
			return true, nil
		case "n":
			return false, nil
		}

		that.println("Sorry, must be y or n")
	}
}

// readLine returns the next trimmed line, or ErrInputClosed once input is exhausted.
func (that *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", apperror.ErrInputClosed
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *Console) println(text string) {
	if _, err := fmt.Fprintln(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func capitalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
