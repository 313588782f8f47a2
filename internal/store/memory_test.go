package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoshare/ecoshare-backend/internal/model"
)

func seededMemory(t *testing.T) *Memory {
	t.Helper()
	m := NewMemory()
	require.NoError(t, Seed(context.Background(), m))
	return m
}

func TestMemoryAppend(t *testing.T) {
	ctx := context.Background()
	m := seededMemory(t)

	price := uint(25)
	stored, err := m.Append(ctx, model.Listing{
		Title:       "Desk Lamp",
		Description: "Works great.",
		Category:    "Furniture",
		Price:       &price,
		PostedBy:    "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())

	all, err := m.List(ctx, FilterAll, "")
	require.NoError(t, err)
	require.Len(t, all, 5)
	// Most-recent-first: the new listing sits at the head.
	assert.Equal(t, "Desk Lamp", all[0].Title)
}

func TestMemoryAppendAnonymousFallback(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	stored, err := m.Append(ctx, model.Listing{Title: "No Owner", Description: "x", Category: "Misc", IsDonation: true})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", stored.PostedBy)
}

func TestMemoryListFilters(t *testing.T) {
	ctx := context.Background()
	m := seededMemory(t)

	sale, err := m.List(ctx, FilterSale, "")
	require.NoError(t, err)
	require.Len(t, sale, 2)
	for _, l := range sale {
		assert.False(t, l.IsDonation)
		require.NotNil(t, l.Price)
	}

	donations, err := m.List(ctx, FilterDonation, "")
	require.NoError(t, err)
	require.Len(t, donations, 2)
	for _, l := range donations {
		assert.True(t, l.IsDonation)
		assert.Nil(t, l.Price)
	}
}

func TestMemoryListMine(t *testing.T) {
	ctx := context.Background()
	m := seededMemory(t)

	// No viewer means no results, even though Alice has a listing.
	none, err := m.List(ctx, FilterMine, "")
	require.NoError(t, err)
	assert.Empty(t, none)

	mine, err := m.List(ctx, FilterMine, "Alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Gently Used Wooden Chair", mine[0].Title)
}

func TestMemorySetStatus(t *testing.T) {
	ctx := context.Background()
	m := seededMemory(t)

	updated, err := m.SetStatus(ctx, 3, model.StatusPurchased)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPurchased, updated.Status)

	// The transition is terminal: a second attempt fails either way.
	_, err = m.SetStatus(ctx, 3, model.StatusRequested)
	assert.ErrorIs(t, err, ErrListingClosed)
	_, err = m.SetStatus(ctx, 3, model.StatusPurchased)
	assert.ErrorIs(t, err, ErrListingClosed)

	// Other listings are untouched.
	other, err := m.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.StatusUnset, other.Status)
}

func TestMemorySetStatusErrors(t *testing.T) {
	ctx := context.Background()
	m := seededMemory(t)

	_, err := m.SetStatus(ctx, 99, model.StatusPurchased)
	assert.ErrorIs(t, err, ErrListingNotFound)

	_, err = m.SetStatus(ctx, 1, model.StatusUnset)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestMemoryFindByID(t *testing.T) {
	ctx := context.Background()
	m := seededMemory(t)

	l, err := m.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Gently Used Wooden Chair", l.Title)

	_, err = m.FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrListingNotFound)
}
