// Package derive computes the views shown to the user from store state.
// Every function here is pure: same input, same output, input never modified.
package derive

import "github.com/idilsaglam/todolist/internal/model"

// Reader is the read side of the item store.
type Reader interface {
	Items() []model.Item
	Filter() model.Filter
}

// View is what a renderer needs for one pass.
type View struct {
	Filter model.Filter `json:"filter"`
	Items  []model.Item `json:"items"`
	Stats  model.Stats  `json:"stats"`
}

// FilteredList returns the items matching f, in their original order.
// For All the input slice is returned as is.
func FilteredList(items []model.Item, f model.Filter) []model.Item {
	switch f {
	case model.Completed:
		return keep(items, true)
	case model.Uncompleted:
		return keep(items, false)
	default:
		return items
	}
}

func keep(items []model.Item, complete bool) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if it.Complete == complete {
			out = append(out, it)
		}
	}
	return out
}

// ComputeStats counts items by state. An empty list reports 0 percent.
func ComputeStats(items []model.Item) model.Stats {
	st := model.Stats{TotalNum: len(items)}
	for _, it := range items {
		if it.Complete {
			st.TotalCompletedNum++
		}
	}
	st.TotalUncompletedNum = st.TotalNum - st.TotalCompletedNum
	if st.TotalNum > 0 {
		st.PercentCompleted = float64(st.TotalCompletedNum) / float64(st.TotalNum)
	}
	return st
}

// Compute derives a View from a full item list and a filter.
// Stats always cover the full list, not just the filtered part.
func Compute(items []model.Item, f model.Filter) View {
	return View{
		Filter: f,
		Items:  FilteredList(items, f),
		Stats:  ComputeStats(items),
	}
}

// Snapshot reads r once and derives its current View.
func Snapshot(r Reader) View {
	return Compute(r.Items(), r.Filter())
}
