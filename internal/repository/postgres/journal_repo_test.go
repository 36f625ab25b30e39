package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mindmate/mindmate-server/internal/domain"
	"github.com/mindmate/mindmate-server/internal/repository/postgres"
	"github.com/mindmate/mindmate-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestJournalRepository_ListByUserID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewJournalRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	// Entries created oldest first; List must return newest first.
	first := testutil.NewEntryBuilder(owner.ID).WithEntry("oldest").Build(t, testDB.DB)
	time.Sleep(10 * time.Millisecond)
	second := testutil.NewEntryBuilder(owner.ID).WithEntry("newest").Build(t, testDB.DB)
	testutil.NewEntryBuilder(other.ID).WithEntry("not mine").Build(t, testDB.DB)

	entries, err := repo.ListByUserID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)

	for _, e := range entries {
		assert.Equal(t, owner.ID, e.UserID)
	}
}

func TestJournalRepository_ListByUserID_Empty(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewJournalRepository(testDB.DB)
	ctx := context.Background()

	entries, err := repo.ListByUserID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournalRepository_UpdateOwned(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewJournalRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	entry := testutil.NewEntryBuilder(owner.ID).WithMood("calm").Build(t, testDB.DB)

	fields := &domain.JournalEntry{
		Date:  entry.Date,
		Mood:  "happy",
		Entry: "updated text",
		Tags:  datatypes.NewJSONSlice([]string{"gratitude"}),
	}

	t.Run("owner updates own entry", func(t *testing.T) {
		updated, err := repo.UpdateOwned(ctx, entry.ID, owner.ID, fields)
		require.NoError(t, err)
		assert.Equal(t, "happy", updated.Mood)
		assert.Equal(t, "updated text", updated.Entry)
		assert.Equal(t, owner.ID, updated.UserID)
	})

	t.Run("other user cannot update", func(t *testing.T) {
		_, err := repo.UpdateOwned(ctx, entry.ID, stranger.ID, fields)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		// Entry unchanged by the rejected attempt
		var current domain.JournalEntry
		require.NoError(t, testDB.DB.First(&current, "id = ?", entry.ID).Error)
		assert.Equal(t, "happy", current.Mood)
	})

	t.Run("unknown entry id", func(t *testing.T) {
		_, err := repo.UpdateOwned(ctx, uuid.New(), owner.ID, fields)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestJournalRepository_DeleteOwned(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewJournalRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	entry := testutil.NewEntryBuilder(owner.ID).Build(t, testDB.DB)

	t.Run("other user cannot delete", func(t *testing.T) {
		err := repo.DeleteOwned(ctx, entry.ID, stranger.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		var count int64
		testDB.DB.Model(&domain.JournalEntry{}).Where("id = ?", entry.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("owner deletes own entry", func(t *testing.T) {
		err := repo.DeleteOwned(ctx, entry.ID, owner.ID)
		require.NoError(t, err)

		var count int64
		testDB.DB.Model(&domain.JournalEntry{}).Where("id = ?", entry.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("already deleted", func(t *testing.T) {
		err := repo.DeleteOwned(ctx, entry.ID, owner.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
