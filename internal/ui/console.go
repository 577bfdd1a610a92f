package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
)

// Console is the line-oriented terminal shared by the menu and every game UI.
// Malformed input never leaves it: readers re-prompt until the line parses.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (that *Console) Printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func (that *Console) Println(args ...any) {
	fmt.Fprintln(that.out, args...)
}

// ReadLine prints the prompt and returns the next line without surrounding blanks.
// It returns apperror.ErrInputClosed once the input is exhausted.
func (that *Console) ReadLine(prompt string) (string, error) {
	that.Printf("%s", prompt)

	line, err := that.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			return "", apperror.ErrInputClosed
		}
	}

	return strings.TrimSpace(line), nil
}

// ReadInts reads a line of exactly count whitespace separated integers.
func (that *Console) ReadInts(prompt string, count int) ([]int, error) {
	for {
		line, err := that.ReadLine(prompt)
		if err != nil {
			return nil, err
		}

		fields := strings.Fields(line)
		if len(fields) != count {
			that.Printf("Please enter %d number(s).\n", count)
			continue
		}

		values, ok := parseInts(fields)
		if !ok {
			that.Println("Numbers only, please try again.")
			continue
		}

		return values, nil
	}
}

// ReadCoordsAndToken reads "row col token" where token is a single character.
func (that *Console) ReadCoordsAndToken(prompt string) (int, int, rune, error) {
	for {
		line, err := that.ReadLine(prompt)
		if err != nil {
			return 0, 0, 0, err
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			that.Println("Please enter a row, a column and one character.")
			continue
		}

		values, ok := parseInts(fields[:2])
		token := []rune(fields[2])
		if !ok || len(token) != 1 {
			that.Println("Please enter a row, a column and one character.")
			continue
		}

		return values[0], values[1], token[0], nil
	}
}

// Confirm asks a yes/no question.
func (that *Console) Confirm(prompt string) (bool, error) {
	for {
		line, err := that.ReadLine(prompt)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			that.Println("Please answer y or n.")
		}
	}
}

// DrawGrid prints a grid with row and column numbers.
func (that *Console) DrawGrid(rows, cols int, cellText func(row, col int) string) {
	var sb strings.Builder

	sb.WriteString("  ")
	for c := range cols {
		fmt.Fprintf(&sb, " %d", c)
	}
	sb.WriteByte('\n')

	for r := range rows {
		fmt.Fprintf(&sb, "%d ", r)
		for c := range cols {
			fmt.Fprintf(&sb, " %s", cellText(r, c))
		}
		sb.WriteByte('\n')
	}

	that.Printf("%s", sb.String())
}

func parseInts(fields []string) ([]int, bool) {
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, false
		}
		values = append(values, value)
	}

	return values, true
}
