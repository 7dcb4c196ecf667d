package store

import (
	"sync"

	"github.com/ella-quan/meowhome/internal/model"
)

// Store is a mutex-guarded snapshot of the family's collections.
// All accessors copy on the way in and out, so callers can hold and
// mutate returned slices freely.
type Store struct {
	mu      sync.RWMutex
	members []model.FamilyMember
	todos   []model.TodoItem
	events  []model.CalendarEvent
	photos  []model.Photo
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Snapshot returns a deep copy of all collections at a single point in
// time.
func (s *Store) Snapshot() model.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.AppData{
		Members: cloneSlice(s.members),
		Todos:   cloneSlice(s.todos),
		Events:  cloneSlice(s.events),
		Photos:  cloneSlice(s.photos),
	}
}

// Members returns a copy of the member roster.
func (s *Store) Members() []model.FamilyMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.members)
}

// Todos returns a copy of the todo list.
func (s *Store) Todos() []model.TodoItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.todos)
}

// Events returns a copy of the event list.
func (s *Store) Events() []model.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.events)
}

// Photos returns a copy of the photo list.
func (s *Store) Photos() []model.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.photos)
}

// ReplaceMembers swaps the entire member roster. An empty snapshot is
// applied as-is; the syncer owns the decision of when a replacement is
// trustworthy.
func (s *Store) ReplaceMembers(members []model.FamilyMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = cloneSlice(members)
}

// ReplaceTodos swaps the entire todo collection.
func (s *Store) ReplaceTodos(todos []model.TodoItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = cloneSlice(todos)
}

// ReplaceEvents swaps the entire event collection.
func (s *Store) ReplaceEvents(events []model.CalendarEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = cloneSlice(events)
}

// ReplacePhotos swaps the entire photo collection.
func (s *Store) ReplacePhotos(photos []model.Photo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photos = cloneSlice(photos)
}

// PutEvent inserts the event, or replaces the one with the same ID.
func (s *Store) PutEvent(ev model.CalendarEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == ev.ID {
			s.events[i] = ev
			return
		}
	}
	s.events = append(s.events, ev)
}

// PutTodo inserts the todo, or replaces the one with the same ID.
func (s *Store) PutTodo(td model.TodoItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == td.ID {
			s.todos[i] = td
			return
		}
	}
	s.todos = append(s.todos, td)
}

// PutMember inserts the member, or replaces the one with the same ID.
func (s *Store) PutMember(m model.FamilyMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == m.ID {
			s.members[i] = m
			return
		}
	}
	s.members = append(s.members, m)
}

// PutPhoto inserts the photo, or replaces the one with the same ID.
// New photos go to the front so recency ordering matches the database
// view between sync cycles.
func (s *Store) PutPhoto(p model.Photo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.photos {
		if s.photos[i].ID == p.ID {
			s.photos[i] = p
			return
		}
	}
	s.photos = append([]model.Photo{p}, s.photos...)
}

// DeleteEvent removes the event with the given ID. Absent IDs are a
// no-op.
func (s *Store) DeleteEvent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return
		}
	}
}

// DeleteTodo removes the todo with the given ID. Absent IDs are a no-op.
func (s *Store) DeleteTodo(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return
		}
	}
}

// DeletePhoto removes the photo with the given ID. Absent IDs are a
// no-op.
func (s *Store) DeletePhoto(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.photos {
		if s.photos[i].ID == id {
			s.photos = append(s.photos[:i], s.photos[i+1:]...)
			return
		}
	}
}

// Event looks up an event by ID.
func (s *Store) Event(id string) (model.CalendarEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.CalendarEvent{}, false
}

// Todo looks up a todo by ID.
func (s *Store) Todo(id string) (model.TodoItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, td := range s.todos {
		if td.ID == id {
			return td, true
		}
	}
	return model.TodoItem{}, false
}

// Photo looks up a photo by ID.
func (s *Store) Photo(id string) (model.Photo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.photos {
		if p.ID == id {
			return p, true
		}
	}
	return model.Photo{}, false
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
