package record

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_CounterStartsAboveSeed(t *testing.T) {
	store := NewStore(Seed())

	assert.Equal(t, 20, store.Len())
	assert.Equal(t, "21", store.NextID())
}

func TestNextID_StrictlyIncreasing(t *testing.T) {
	store := NewStore(Seed())

	prev := 0
	for i := 0; i < 50; i++ {
		n, err := strconv.Atoi(store.NextID())
		require.NoError(t, err)
		assert.Greater(t, n, prev)
		prev = n
	}
}

func TestNextID_NotReusedAfterDelete(t *testing.T) {
	store := NewStore(Seed())

	first := store.NextID()
	store.Insert(Record{ID: first, Name: "Temp", Disease: DiseaseGlaucoma, DateAdded: DefaultDate()})
	_, ok := store.RemoveByID(first)
	require.True(t, ok)

	assert.NotEqual(t, first, store.NextID())
}

func TestList_ReturnsCopyInInsertionOrder(t *testing.T) {
	store := NewStore(Seed())

	recs := store.List()
	require.Len(t, recs, 20)
	assert.Equal(t, "1", recs[0].ID)
	assert.Equal(t, "20", recs[19].ID)

	// Mutating the returned slice must not touch the store
	recs[0].Name = "Clobbered"
	fresh, ok := store.FindByID("1")
	require.True(t, ok)
	assert.NotEqual(t, "Clobbered", fresh.Name)
}

func TestFindByID(t *testing.T) {
	store := NewStore(Seed())

	rec, ok := store.FindByID("5")
	require.True(t, ok)
	assert.Equal(t, "5", rec.ID)

	_, ok = store.FindByID("999")
	assert.False(t, ok)
}

func TestRemoveByID_SplicesOut(t *testing.T) {
	store := NewStore(Seed())

	removed, ok := store.RemoveByID("10")
	require.True(t, ok)
	assert.Equal(t, "10", removed.ID)
	assert.Equal(t, 19, store.Len())

	_, ok = store.FindByID("10")
	assert.False(t, ok)

	// Order of the remaining records is preserved
	recs := store.List()
	assert.Equal(t, "9", recs[8].ID)
	assert.Equal(t, "11", recs[9].ID)
}

func TestRemoveByID_NotFoundLeavesStoreUntouched(t *testing.T) {
	store := NewStore(Seed())

	_, ok := store.RemoveByID("999")
	assert.False(t, ok)
	assert.Equal(t, 20, store.Len())
}

func TestUpdateByID_PartialChangeSet(t *testing.T) {
	store := NewStore(Seed())
	before, ok := store.FindByID("5")
	require.True(t, ok)

	name := "Renamed Patient"
	updated, ok := store.UpdateByID("5", Update{Name: &name})
	require.True(t, ok)

	assert.Equal(t, "Renamed Patient", updated.Name)
	assert.Equal(t, before.Disease, updated.Disease)
	assert.Equal(t, before.DateAdded, updated.DateAdded)
}

func TestUpdateByID_EmptyChangeSetIsNoop(t *testing.T) {
	store := NewStore(Seed())
	before, ok := store.FindByID("7")
	require.True(t, ok)

	after, ok := store.UpdateByID("7", Update{})
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestUpdateByID_NotFound(t *testing.T) {
	store := NewStore(Seed())

	_, ok := store.UpdateByID("999", Update{})
	assert.False(t, ok)
}
