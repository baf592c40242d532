package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/yatri/internal/domain"
	"github.com/alexanderramin/yatri/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepo_SeedAndListUpcoming(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	now := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)
	past := testutil.NewTestEvent("Monsoon Festival", domain.CategoryEntertainment,
		now.AddDate(0, -2, 0))
	upcoming := testutil.NewTestEvent("Saturday Night Market", domain.CategoryMarket,
		now.AddDate(0, 0, 2), testutil.WithEventPrice(200), testutil.WithEventDescription("stalls and live music"))

	require.NoError(t, repo.Seed(ctx, "Goa", []domain.Event{past, upcoming}))

	got, err := repo.ListUpcoming(ctx, "Goa", now)
	require.NoError(t, err)
	require.Len(t, got, 1, "past events are filtered at the store")

	e := got[0]
	assert.Equal(t, "Saturday Night Market", e.Title)
	assert.Equal(t, "stalls and live music", e.Description)
	assert.Equal(t, domain.Money(200), e.Price)
	assert.Equal(t, upcoming.StartTime.UTC(), e.StartTime)
	assert.Equal(t, upcoming.EndTime.UTC(), e.EndTime)
}

func TestEventRepo_ListExcludesEventStartingAtCutoff(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	now := time.Date(2026, 11, 1, 18, 0, 0, 0, time.UTC)
	atCutoff := testutil.NewTestEvent("Sunset Cruise", domain.CategoryEntertainment, now)
	after := testutil.NewTestEvent("Night Bazaar", domain.CategoryMarket, now.Add(time.Minute))

	require.NoError(t, repo.Seed(ctx, "Goa", []domain.Event{atCutoff, after}))

	got, err := repo.ListUpcoming(ctx, "Goa", now)
	require.NoError(t, err)
	require.Len(t, got, 1, "an event starting exactly at the cutoff is not upcoming")
	assert.Equal(t, "Night Bazaar", got[0].Title)
}

func TestEventRepo_ListOrdersByStartTime(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	now := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	later := testutil.NewTestEvent("Flea Market", domain.CategoryMarket, now.AddDate(0, 0, 5))
	sooner := testutil.NewTestEvent("Feast Procession", domain.CategoryReligious, now.AddDate(0, 0, 1))

	require.NoError(t, repo.Seed(ctx, "Goa", []domain.Event{later, sooner}))

	got, err := repo.ListUpcoming(ctx, "Goa", now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Feast Procession", got[0].Title)
	assert.Equal(t, "Flea Market", got[1].Title)
}

func TestEventRepo_ListFiltersByDestination(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	now := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Seed(ctx, "Goa",
		[]domain.Event{testutil.NewTestEvent("Night Market", domain.CategoryMarket, now.AddDate(0, 0, 1))}))
	require.NoError(t, repo.Seed(ctx, "Kochi",
		[]domain.Event{testutil.NewTestEvent("Boat Race", domain.CategoryEntertainment, now.AddDate(0, 0, 1))}))

	got, err := repo.ListUpcoming(ctx, "Kochi", now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Boat Race", got[0].Title)
}
