package commands

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"todo/internal/todo"
)

// TaskRef represents a parsed task reference: either a literal title or a
// 1-based position in list order.
type TaskRef struct {
	Title    string // joined title, empty when Num is used
	Num      int    // 1-based position in list order
	IsNumber bool   // true for "#n" references
}

var (
	// ErrInvalidTaskRef indicates a malformed "#n" reference.
	ErrInvalidTaskRef = errors.New("invalid task reference")

	// ErrTaskRefOutOfRange indicates a "#n" reference past the end of the list.
	ErrTaskRefOutOfRange = errors.New("task number out of range")
)

// ParseTaskRef parses a task reference from args.
//
// Parsing rules:
// 1. No args, or only whitespace → todo.ErrTitleRequired
// 2. A single arg of the form #<digits> → numeric reference
// 3. A single arg starting with # followed by anything else → invalid reference
// 4. Otherwise the args are joined with spaces and trimmed to form the title
func ParseTaskRef(args []string) (TaskRef, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return TaskRef{}, todo.ErrTitleRequired
	}

	if len(args) == 1 && strings.HasPrefix(title, "#") {
		digits := title[1:]
		if !isAllDigits(digits) {
			return TaskRef{}, fmt.Errorf("%w: %s", ErrInvalidTaskRef, title)
		}
		num, err := strconv.Atoi(digits)
		if err != nil || num < 1 {
			return TaskRef{}, fmt.Errorf("%w: %s", ErrInvalidTaskRef, title)
		}
		return TaskRef{Num: num, IsNumber: true}, nil
	}

	return TaskRef{Title: title}, nil
}

// ResolveTaskRef returns the title a reference points at on board.
func ResolveTaskRef(board *todo.Board, ref TaskRef) (string, error) {
	if !ref.IsNumber {
		return ref.Title, nil
	}
	records, err := listing(board)
	if err != nil {
		return "", err
	}
	if ref.Num > len(records) {
		return "", fmt.Errorf("%w: %d", ErrTaskRefOutOfRange, ref.Num)
	}
	return records[ref.Num-1].Title, nil
}

// listing returns the board's tasks in list order: pending tasks first, then
// done tasks, each group ordered by title.
func listing(board *todo.Board) ([]todo.Record, error) {
	records, err := board.Records()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Status == todo.Pending && records[j].Status == todo.Done
	})
	return records, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
