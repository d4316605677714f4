package audit_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisteredEntry(t *testing.T) {
	parcelID := kernel.NewUUID()

	entry, err := audit.NewRegisteredEntry(
		kernel.NewUUID(), parcelID, "Stored", "A01-01", "registered into A01-01")

	require.NoError(t, err)
	require.NoError(t, entry.Validate())
	assert.Equal(t, audit.ActionRegistered, entry.Action())
	assert.True(t, entry.ParcelID().IsEqual(parcelID))
	assert.Empty(t, entry.OldStatus())
	assert.Equal(t, "Stored", entry.NewStatus())
	assert.Empty(t, entry.OldLocation())
	assert.Equal(t, "A01-01", entry.NewLocation())
	assert.WithinDuration(t, time.Now().UTC(), entry.RecordedAt(), time.Minute)
}

func TestNewStatusUpdateEntry(t *testing.T) {
	t.Run("delivery clears location", func(t *testing.T) {
		entry, err := audit.NewStatusUpdateEntry(
			kernel.NewUUID(), kernel.NewUUID(),
			"Stored", "Delivered", "A01-01", "", "")

		require.NoError(t, err)
		assert.Equal(t, audit.ActionStatusUpdate, entry.Action())
		assert.Equal(t, "Stored", entry.OldStatus())
		assert.Equal(t, "Delivered", entry.NewStatus())
		assert.Equal(t, "A01-01", entry.OldLocation())
		assert.Empty(t, entry.NewLocation())
	})

	t.Run("missing old status", func(t *testing.T) {
		_, err := audit.NewStatusUpdateEntry(
			kernel.NewUUID(), kernel.NewUUID(),
			"", "Delivered", "A01-01", "", "")

		require.Error(t, err)
	})

	t.Run("missing new status", func(t *testing.T) {
		_, err := audit.NewStatusUpdateEntry(
			kernel.NewUUID(), kernel.NewUUID(),
			"Stored", "", "A01-01", "", "")

		require.Error(t, err)
	})
}

func TestRestoreEntry(t *testing.T) {
	recordedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	entry, err := audit.RestoreEntry(
		kernel.NewUUID(), kernel.NewUUID(), audit.ActionStatusUpdate,
		"Stored", "InTransit", "B02-01", "B02-01", "picked up", recordedAt)

	require.NoError(t, err)
	assert.Equal(t, recordedAt, entry.RecordedAt())
	assert.Equal(t, "picked up", entry.Note())
}

func TestRestoreEntry_InvalidAction(t *testing.T) {
	_, err := audit.RestoreEntry(
		kernel.NewUUID(), kernel.NewUUID(), audit.Action("RELABELED"),
		"Stored", "Stored", "", "", "", time.Now())

	require.Error(t, err)
}

func TestEntry_Validate_NotConstructed(t *testing.T) {
	var entry audit.Entry

	require.ErrorIs(t, entry.Validate(), audit.ErrEntryIsNotConstructed)
}
