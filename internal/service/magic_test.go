package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/store"
)

// fakeParser returns a canned parse result.
type fakeParser struct {
	result *model.ParsedInput
	err    error
}

func (f *fakeParser) Parse(ctx context.Context, input string, members []model.FamilyMember) (*model.ParsedInput, error) {
	return f.result, f.err
}

func newMagicFixture(p InputParser) (*MagicService, *store.Store) {
	st := store.New()
	todos := NewTodoService(st, &mockTodoWriter{}, nil, nil)
	events := NewEventService(st, &mockEventWriter{}, nil, nil)
	return NewMagicService(st, p, todos, events, nil), st
}

func TestProcessCreatesTodo(t *testing.T) {
	st := store.New()
	st.PutMember(model.FamilyMember{ID: "m1", Name: "Mika"})
	todos := NewTodoService(st, &mockTodoWriter{}, nil, nil)
	events := NewEventService(st, &mockEventWriter{}, nil, nil)
	svc := NewMagicService(st, &fakeParser{
		result: &model.ParsedInput{
			Type: model.ParsedTypeTodo,
			Data: model.ParsedData{
				Title:      "Buy cat food",
				Priority:   "high",
				AssignedTo: "mika",
			},
		},
	}, todos, events, nil)

	res, err := svc.Process(context.Background(), "mika needs to buy cat food asap")
	require.NoError(t, err)

	require.Equal(t, model.ParsedTypeTodo, res.Type)
	require.NotNil(t, res.Todo)
	assert.Equal(t, "Buy cat food", res.Todo.Title)
	assert.Equal(t, model.PriorityHigh, res.Todo.Priority)
	require.NotNil(t, res.Todo.AssignedTo, "assignee resolves by case-insensitive name")
	assert.Equal(t, "m1", *res.Todo.AssignedTo)

	assert.Len(t, st.Todos(), 1)
}

func TestProcessCreatesEvent(t *testing.T) {
	svc, st := newMagicFixture(&fakeParser{
		result: &model.ParsedInput{
			Type: model.ParsedTypeEvent,
			Data: model.ParsedData{
				Title:     "Vet visit",
				StartTime: "2024-03-10T09:00:00Z",
				EndTime:   "2024-03-10T09:30:00Z",
				EventType: "appointment",
				Location:  "Clinic",
			},
		},
	})

	res, err := svc.Process(context.Background(), "vet on sunday at 9")
	require.NoError(t, err)

	require.Equal(t, model.ParsedTypeEvent, res.Type)
	require.NotNil(t, res.Event)
	assert.Equal(t, "Vet visit", res.Event.Title)
	assert.Equal(t, model.CategoryAppointment, res.Event.Category)
	assert.Equal(t, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), res.Event.StartTime)
	assert.Equal(t, 30*time.Minute, res.Event.EndTime.Sub(res.Event.StartTime))
	require.NotNil(t, res.Event.Location)
	assert.Equal(t, "Clinic", *res.Event.Location)

	assert.Len(t, st.Events(), 1)
}

func TestProcessDefaultsGarbledFields(t *testing.T) {
	svc, _ := newMagicFixture(&fakeParser{
		result: &model.ParsedInput{
			Type: model.ParsedTypeEvent,
			Data: model.ParsedData{
				StartTime:  "next tuesday-ish",
				EndTime:    "whenever",
				EventType:  "shindig",
				AssignedTo: "nobody we know",
			},
		},
	})

	res, err := svc.Process(context.Background(), "something fun next week")
	require.NoError(t, err)

	require.NotNil(t, res.Event)
	assert.Equal(t, "something fun next week", res.Event.Title, "missing title falls back to raw input")
	assert.Equal(t, model.CategoryGeneral, res.Event.Category, "unknown category falls back to general")
	assert.Nil(t, res.Event.AssignedTo, "unresolvable assignee becomes unassigned")
	assert.Equal(t, model.DefaultEventDuration, res.Event.EndTime.Sub(res.Event.StartTime))
}

func TestProcessFailures(t *testing.T) {
	ctx := context.Background()

	svc, _ := newMagicFixture(&fakeParser{err: assert.AnError})
	_, err := svc.Process(ctx, "do stuff")
	assert.ErrorIs(t, err, ErrParseFailed)

	svc, _ = newMagicFixture(&fakeParser{result: nil})
	_, err = svc.Process(ctx, "do stuff")
	assert.ErrorIs(t, err, ErrParseFailed)

	svc, _ = newMagicFixture(&fakeParser{
		result: &model.ParsedInput{Type: "grocery"},
	})
	_, err = svc.Process(ctx, "do stuff")
	assert.ErrorIs(t, err, ErrParseFailed)

	svc, _ = newMagicFixture(&fakeParser{})
	_, err = svc.Process(ctx, "   ")
	assert.ErrorIs(t, err, ErrInputRequired)
}
