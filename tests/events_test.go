package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/repository"
	"github.com/ella-quan/meowhome/internal/service"
	"github.com/ella-quan/meowhome/internal/store"
	"github.com/ella-quan/meowhome/internal/testing/fixtures"
	"github.com/ella-quan/meowhome/internal/testing/testdb"
)

/*
FEATURE: Calendar Events
DOMAIN: Family calendar

ACCEPTANCE CRITERIA:
===================

AC-EVENT-001: Create Event With Defaults
  GIVEN a running family instance
  WHEN an event is created with only a title and start time
  THEN the persisted event ends one hour after it starts
  AND its category is general

AC-EVENT-002: Update Event
  GIVEN a persisted event
  WHEN the event is updated
  THEN the database carries the full replacement

AC-EVENT-003: Delete Event
  GIVEN a persisted event
  WHEN the event is deleted
  THEN it is gone from the database
  AND deleting it again is a no-op

AC-EVENT-004: List Order
  GIVEN several persisted events
  WHEN the collection is listed
  THEN events come back ordered by start time ascending
*/

func TestEventLifecycle(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewFamilyRepository(tdb.DB, "fam-test")
	st := store.New()
	svc := service.NewEventService(st, repo, nil, nil)
	ctx := context.Background()

	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	// AC-EVENT-001
	created, err := svc.CreateEvent(ctx, model.CreateEventRequest{
		Title:     "Picnic",
		StartTime: start,
	})
	require.NoError(t, err)
	assert.Equal(t, start.Add(time.Hour), created.EndTime)
	assert.Equal(t, model.CategoryGeneral, created.Category)

	listed, err := repo.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.True(t, created.StartTime.Equal(listed[0].StartTime))

	// AC-EVENT-002
	loc := "park"
	updated, err := svc.UpdateEvent(ctx, created.ID, model.CreateEventRequest{
		Title:     "Picnic at the park",
		Location:  &loc,
		StartTime: start,
		Category:  model.CategoryActivity,
	})
	require.NoError(t, err)

	listed, err = repo.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, updated.Title, listed[0].Title)
	require.NotNil(t, listed[0].Location)
	assert.Equal(t, "park", *listed[0].Location)
	assert.Equal(t, model.CategoryActivity, listed[0].Category)

	// AC-EVENT-003
	svc.DeleteEvent(ctx, created.ID)
	listed, err = repo.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	svc.DeleteEvent(ctx, created.ID) // no-op
}

func TestEventListOrder(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB, "fam-test")
	ctx := context.Background()

	later := f.CreateEvent(t, "later", time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC))
	earlier := f.CreateEvent(t, "earlier", time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))

	// AC-EVENT-004
	listed, err := f.Repo().ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, earlier.ID, listed[0].ID)
	assert.Equal(t, later.ID, listed[1].ID)
}
