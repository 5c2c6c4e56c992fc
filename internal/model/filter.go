package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Filter selects which items a view shows. The zero value is All.
type Filter int

const (
	All Filter = iota
	Completed
	Uncompleted
)

// Filters lists every selection in display order.
var Filters = []Filter{All, Completed, Uncompleted}

func (f Filter) String() string {
	switch f {
	case Completed:
		return "completed"
	case Uncompleted:
		return "uncompleted"
	default:
		return "all"
	}
}

// Label is the title-cased name used in headers and tab bars.
func (f Filter) Label() string {
	switch f {
	case Completed:
		return "Completed"
	case Uncompleted:
		return "Uncompleted"
	default:
		return "All"
	}
}

// Next cycles All -> Completed -> Uncompleted -> All.
func (f Filter) Next() Filter {
	switch f {
	case All:
		return Completed
	case Completed:
		return Uncompleted
	default:
		return All
	}
}

// ParseFilter accepts the String form (case-insensitive) and a few aliases.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return All, nil
	case "completed", "complete", "done":
		return Completed, nil
	case "uncompleted", "incomplete", "pending", "todo", "active":
		return Uncompleted, nil
	}
	return All, fmt.Errorf("unknown filter %q (want all, completed or uncompleted)", s)
}

func (f Filter) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}
