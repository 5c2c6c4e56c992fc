package derive

import (
	"math"
	"reflect"
	"testing"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
)

func sample() []model.Item {
	return []model.Item{
		{ID: 1, Text: "a", Complete: false},
		{ID: 2, Text: "b", Complete: true},
		{ID: 3, Text: "c", Complete: true},
	}
}

func TestFilteredList_Completed(t *testing.T) {
	got := FilteredList(sample(), model.Completed)
	want := []model.Item{{ID: 2, Text: "b", Complete: true}, {ID: 3, Text: "c", Complete: true}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFilteredList_Uncompleted(t *testing.T) {
	got := FilteredList(sample(), model.Uncompleted)
	want := []model.Item{{ID: 1, Text: "a", Complete: false}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFilteredList_AllIsIdentity(t *testing.T) {
	lists := [][]model.Item{nil, {}, sample()}
	for _, l := range lists {
		if got := FilteredList(l, model.All); !reflect.DeepEqual(got, l) {
			t.Fatalf("All changed list: got %+v, want %+v", got, l)
		}
	}
}

func TestFilteredList_IsOrderedSubsequence(t *testing.T) {
	items := []model.Item{
		{ID: 5, Complete: true}, {ID: 1}, {ID: 9, Complete: true},
		{ID: 2}, {ID: 7}, {ID: 3, Complete: true},
	}
	for _, f := range model.Filters {
		got := FilteredList(items, f)
		j := 0
		for _, it := range got {
			for j < len(items) && items[j] != it {
				j++
			}
			if j == len(items) {
				t.Fatalf("filter %v: %+v is not an ordered subsequence of %+v", f, got, items)
			}
			j++
			switch f {
			case model.Completed:
				if !it.Complete {
					t.Fatalf("filter completed returned %+v", it)
				}
			case model.Uncompleted:
				if it.Complete {
					t.Fatalf("filter uncompleted returned %+v", it)
				}
			}
		}
	}
}

func TestFilteredList_DoesNotMutateInput(t *testing.T) {
	in := sample()
	orig := sample()
	_ = FilteredList(in, model.Completed)
	_ = FilteredList(in, model.Uncompleted)
	if !reflect.DeepEqual(in, orig) {
		t.Fatalf("input mutated: %+v", in)
	}
}

func TestComputeStats_Scenario(t *testing.T) {
	st := ComputeStats(sample())
	if st.TotalNum != 3 || st.TotalCompletedNum != 2 || st.TotalUncompletedNum != 1 {
		t.Fatalf("unexpected counts: %+v", st)
	}
	if math.Abs(st.PercentCompleted-2.0/3.0) > 1e-9 {
		t.Fatalf("percent = %v, want 0.666...", st.PercentCompleted)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	for _, l := range [][]model.Item{nil, {}} {
		st := ComputeStats(l)
		if st != (model.Stats{}) {
			t.Fatalf("expected zero stats, got %+v", st)
		}
	}
}

func TestComputeStats_CountsAreConsistent(t *testing.T) {
	var items []model.Item
	for i := 0; i < 20; i++ {
		items = append(items, model.Item{ID: i, Complete: i%3 == 0})
		st := ComputeStats(items)
		if st.TotalCompletedNum+st.TotalUncompletedNum != st.TotalNum || st.TotalNum != len(items) {
			t.Fatalf("inconsistent stats for %d items: %+v", len(items), st)
		}
		if st.PercentCompleted < 0 || st.PercentCompleted > 1 {
			t.Fatalf("percent out of range: %v", st.PercentCompleted)
		}
	}
}

func TestPureFunctionsAreIdempotent(t *testing.T) {
	items := sample()
	for _, f := range model.Filters {
		a, b := FilteredList(items, f), FilteredList(items, f)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("filter %v not idempotent: %+v vs %+v", f, a, b)
		}
	}
	if ComputeStats(items) != ComputeStats(items) {
		t.Fatalf("stats not idempotent")
	}
}

func TestSnapshot_FollowsStore(t *testing.T) {
	s := store.New()
	a := s.Add("a")
	s.Add("b")
	s.Toggle(a.ID)
	s.SetFilter(model.Completed)

	v := Snapshot(s)
	if v.Filter != model.Completed {
		t.Fatalf("filter = %v", v.Filter)
	}
	if len(v.Items) != 1 || v.Items[0].ID != a.ID {
		t.Fatalf("items = %+v", v.Items)
	}
	if v.Stats.TotalNum != 2 || v.Stats.TotalCompletedNum != 1 {
		t.Fatalf("stats should cover the whole list: %+v", v.Stats)
	}

	// Toggling again must not leave a stale entry in the next snapshot.
	s.Toggle(a.ID)
	if v := Snapshot(s); len(v.Items) != 0 {
		t.Fatalf("stale entries after toggle: %+v", v.Items)
	}
}
