package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoshare/ecoshare-backend/internal/model"
	"github.com/ecoshare/ecoshare-backend/internal/store"
)

func openSeeded(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, store.Seed(context.Background(), s))
	return s
}

func TestSQLiteImplementsContract(t *testing.T) {
	var _ store.ListingStore = (*Store)(nil)
}

func TestSQLiteListOrderAndFilters(t *testing.T) {
	ctx := context.Background()
	s := openSeeded(t)

	all, err := s.List(ctx, store.FilterAll, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	// ORDER BY id DESC mirrors the memory store's head insertion.
	assert.Equal(t, uint64(4), all[0].ID)
	assert.Equal(t, uint64(1), all[3].ID)

	donations, err := s.List(ctx, store.FilterDonation, "")
	require.NoError(t, err)
	require.Len(t, donations, 2)
	for _, l := range donations {
		assert.True(t, l.IsDonation)
		assert.Nil(t, l.Price)
	}

	none, err := s.List(ctx, store.FilterMine, "")
	require.NoError(t, err)
	assert.Empty(t, none)

	mine, err := s.List(ctx, store.FilterMine, "Ben")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Children's Storybooks Collection", mine[0].Title)
}

func TestSQLiteAppend(t *testing.T) {
	ctx := context.Background()
	s := openSeeded(t)

	stored, err := s.Append(ctx, model.Listing{
		Title:       "Ceramic Pot",
		Description: "Hand made.",
		Category:    "Garden",
		IsDonation:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), stored.ID)
	assert.Equal(t, "Anonymous", stored.PostedBy)

	found, err := s.FindByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ceramic Pot", found.Title)
	assert.Nil(t, found.Price)
	assert.Equal(t, model.StatusUnset, found.Status)
}

func TestSQLiteSetStatus(t *testing.T) {
	ctx := context.Background()
	s := openSeeded(t)

	updated, err := s.SetStatus(ctx, 2, model.StatusRequested)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRequested, updated.Status)

	_, err = s.SetStatus(ctx, 2, model.StatusPurchased)
	assert.ErrorIs(t, err, store.ErrListingClosed)

	_, err = s.SetStatus(ctx, 77, model.StatusPurchased)
	assert.ErrorIs(t, err, store.ErrListingNotFound)

	_, err = s.SetStatus(ctx, 1, model.StatusUnset)
	assert.ErrorIs(t, err, store.ErrInvalidStatus)
}
