package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"daytask/internal/tasks"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num int    // 1-based display number, 0 if ID is set
	ID  string // task ID, empty if Num is set
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a single task reference.
//
// An all-digit token is a display number as printed by list.
// Any other non-blank token is a task ID.
func ParseTaskRef(arg string) (TaskRef, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return TaskRef{}, ErrTaskRefRequired
	}
	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Num: num}, nil
	}
	if strings.HasPrefix(arg, "-") {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
	}
	return TaskRef{ID: arg}, nil
}

// ParseTaskRefs parses one or more task references.
func ParseTaskRefs(args []string) ([]TaskRef, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}
	refs := make([]TaskRef, 0, len(args))
	for _, arg := range args {
		ref, err := ParseTaskRef(arg)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// ResolveTaskRefs maps refs to task IDs against one display-order snapshot,
// so numbering does not shift while a batch is applied.
// ID references are passed through even if no task has that ID.
// Duplicate IDs are returned once.
func ResolveTaskRefs(ordered []tasks.Task, refs []TaskRef) ([]string, error) {
	seen := make(map[string]bool, len(refs))
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id := ref.ID
		if id == "" {
			if ref.Num < 1 || ref.Num > len(ordered) {
				return nil, fmt.Errorf("task number out of range: %d", ref.Num)
			}
			id = ordered[ref.Num-1].ID
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
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
