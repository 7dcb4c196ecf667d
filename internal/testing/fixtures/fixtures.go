package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"testing"
	"time"

	"github.com/ella-quan/meowhome/internal/database"
	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	repo *repository.FamilyRepository
}

// New creates a new fixture factory scoped to the given family.
func New(db database.Database, family string) *Factory {
	return &Factory{repo: repository.NewFamilyRepository(db, family)}
}

// Repo exposes the underlying repository for direct assertions.
func (f *Factory) Repo() *repository.FamilyRepository {
	return f.repo
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return c
}

// CreateMember inserts a family member with a generated id.
func (f *Factory) CreateMember(t *testing.T, name string) model.FamilyMember {
	t.Helper()

	m := model.FamilyMember{
		ID:     "mem_" + randomID(),
		Name:   name,
		Avatar: "#8b5cf6",
	}
	if err := f.repo.SetMember(ctx(), m); err != nil {
		t.Fatalf("fixtures: create member: %v", err)
	}
	return m
}

// CreateTodo inserts an incomplete medium-priority todo.
func (f *Factory) CreateTodo(t *testing.T, title string) model.TodoItem {
	t.Helper()

	td := model.TodoItem{
		ID:        "todo_" + randomID(),
		Title:     title,
		Priority:  model.PriorityMedium,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := f.repo.SetTodo(ctx(), td); err != nil {
		t.Fatalf("fixtures: create todo: %v", err)
	}
	return td
}

// CreateEvent inserts a one-hour general event starting at start.
func (f *Factory) CreateEvent(t *testing.T, title string, start time.Time) model.CalendarEvent {
	t.Helper()

	ev := model.CalendarEvent{
		ID:        "event_" + randomID(),
		Title:     title,
		StartTime: start.UTC().Truncate(time.Millisecond),
		EndTime:   start.Add(time.Hour).UTC().Truncate(time.Millisecond),
		Category:  model.CategoryGeneral,
	}
	if err := f.repo.SetEvent(ctx(), ev); err != nil {
		t.Fatalf("fixtures: create event: %v", err)
	}
	return ev
}

// CreatePhoto inserts a photo stamped now.
func (f *Factory) CreatePhoto(t *testing.T, url string) model.Photo {
	t.Helper()

	p := model.Photo{
		ID:        "photo_" + randomID(),
		URL:       url,
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := f.repo.SetPhoto(ctx(), p); err != nil {
		t.Fatalf("fixtures: create photo: %v", err)
	}
	return p
}
