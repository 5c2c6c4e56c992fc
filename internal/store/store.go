package store

import "github.com/idilsaglam/todolist/internal/model"

// Store holds the item list and the current filter for one session.
// Nothing is persisted; a new Store is empty with filter All.
// Not safe for concurrent use.
type Store struct {
	items  []model.Item
	filter model.Filter
	nextID int
}

func New() *Store {
	return &Store{items: []model.Item{}, nextID: 1}
}

// Add appends a new, uncompleted item and returns it.
// Text is stored as given; callers decide what counts as valid input.
func (s *Store) Add(text string) model.Item {
	it := model.Item{ID: s.nextID, Text: text}
	s.nextID++
	s.items = append(s.items, it)
	return it
}

// Toggle flips the completion state of the item with the given id.
// Unknown ids are ignored; the result reports whether one matched.
func (s *Store) Toggle(id int) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Complete = !s.items[i].Complete
			return true
		}
	}
	return false
}

func (s *Store) SetFilter(f model.Filter) { s.filter = f }

func (s *Store) Filter() model.Filter { return s.filter }

// Items returns a copy of the list in insertion order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Get(id int) (model.Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

func (s *Store) Len() int { return len(s.items) }
