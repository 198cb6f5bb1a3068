// Package tasks implements the to-do list: pure list transforms and a Store
// that mirrors the list to a key-value slot after every mutation.
package tasks

import (
	"encoding/json"
	"fmt"
)

// Task represents a single to-do item.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Append returns a new list with t at the end.
func Append(list []Task, t Task) []Task {
	out := make([]Task, 0, len(list)+1)
	out = append(out, list...)
	return append(out, t)
}

// Toggle returns a new list with the completed flag of the task matching id flipped.
// changed is false if no task matches.
func Toggle(list []Task, id string) (out []Task, changed bool) {
	out = make([]Task, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
			changed = true
		}
	}
	return out, changed
}

// Remove returns a new list without the task matching id.
// changed is false if no task matches.
func Remove(list []Task, id string) (out []Task, changed bool) {
	out = make([]Task, 0, len(list))
	for _, t := range list {
		if t.ID == id {
			changed = true
			continue
		}
		out = append(out, t)
	}
	return out, changed
}

// Ordered returns the display order: open tasks first, then completed ones,
// each group keeping its list order.
func Ordered(list []Task) []Task {
	out := make([]Task, 0, len(list))
	for _, t := range list {
		if !t.Completed {
			out = append(out, t)
		}
	}
	for _, t := range list {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the task matching id.
func Find(list []Task, id string) (Task, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Encode serializes list as a JSON array. A nil list encodes as [].
func Encode(list []Task) ([]byte, error) {
	if list == nil {
		list = []Task{}
	}
	return json.Marshal(list)
}

// Decode parses a JSON array of tasks. JSON null decodes to an empty list.
// Later tasks repeating an earlier ID are dropped; dropped reports how many.
func Decode(data []byte) (list []Task, dropped int, err error) {
	var raw []Task
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("malformed task snapshot: %w", err)
	}

	seen := make(map[string]bool, len(raw))
	list = make([]Task, 0, len(raw))
	for _, t := range raw {
		if seen[t.ID] {
			dropped++
			continue
		}
		seen[t.ID] = true
		list = append(list, t)
	}
	return list, dropped, nil
}
