package parcel_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDimensions(t *testing.T) parcel.Dimensions {
	t.Helper()
	dims, err := parcel.NewDimensions(12.5, 30, 20, 15)
	require.NoError(t, err)
	return dims
}

func TestNewDimensions(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		dims, err := parcel.NewDimensions(12.5, 30, 20, 15)
		require.NoError(t, err)
		require.NoError(t, dims.Validate())
		assert.InDelta(t, 12.5, dims.Weight(), 0.001)
		assert.InDelta(t, 30.0, dims.Length(), 0.001)
		assert.InDelta(t, 20.0, dims.Width(), 0.001)
		assert.InDelta(t, 15.0, dims.Height(), 0.001)
	})

	t.Run("non-positive components", func(t *testing.T) {
		testCases := []struct {
			name                          string
			weight, length, width, height float64
		}{
			{"zero weight", 0, 30, 20, 15},
			{"negative weight", -1, 30, 20, 15},
			{"zero length", 10, 0, 20, 15},
			{"zero width", 10, 30, 0, 15},
			{"zero height", 10, 30, 20, 0},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := parcel.NewDimensions(tc.weight, tc.length, tc.width, tc.height)
				require.Error(t, err)
			})
		}
	})

	t.Run("not constructed", func(t *testing.T) {
		var dims parcel.Dimensions
		require.ErrorIs(t, dims.Validate(), parcel.ErrDimensionsAreNotConstructed)
	})
}

func TestNewParcel(t *testing.T) {
	t.Run("valid parcel", func(t *testing.T) {
		categoryID := kernel.NamedUUID("category/Standard")
		locationID := kernel.NamedUUID("location/A01-01")

		p, err := parcel.NewParcel(
			kernel.NewUUID(), "PKG-0001", mustDimensions(t),
			"Boston, USA", "Standard", categoryID, locationID)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "PKG-0001", p.Barcode())
		assert.Equal(t, parcel.Stored, p.Status())
		require.NotNil(t, p.LocationID())
		assert.True(t, p.LocationID().IsEqual(locationID))
		assert.True(t, p.CategoryID().IsEqual(categoryID))
		assert.WithinDuration(t, time.Now().UTC(), p.ReceivedAt(), time.Minute)
	})

	t.Run("invalid parameters", func(t *testing.T) {
		dims := mustDimensions(t)
		id := kernel.NewUUID()
		categoryID := kernel.NamedUUID("category/Standard")
		locationID := kernel.NamedUUID("location/A01-01")

		testCases := []struct {
			name  string
			build func() (*parcel.Parcel, error)
		}{
			{
				name: "empty barcode",
				build: func() (*parcel.Parcel, error) {
					return parcel.NewParcel(id, "", dims, "Boston, USA", "Standard", categoryID, locationID)
				},
			},
			{
				name: "empty destination",
				build: func() (*parcel.Parcel, error) {
					return parcel.NewParcel(id, "PKG-0001", dims, "", "Standard", categoryID, locationID)
				},
			},
			{
				name: "empty priority",
				build: func() (*parcel.Parcel, error) {
					return parcel.NewParcel(id, "PKG-0001", dims, "Boston, USA", "", categoryID, locationID)
				},
			},
			{
				name: "unconstructed dimensions",
				build: func() (*parcel.Parcel, error) {
					return parcel.NewParcel(id, "PKG-0001", parcel.Dimensions{}, "Boston, USA", "Standard", categoryID, locationID)
				},
			},
			{
				name: "empty category id",
				build: func() (*parcel.Parcel, error) {
					return parcel.NewParcel(id, "PKG-0001", dims, "Boston, USA", "Standard", kernel.UUID{}, locationID)
				},
			},
			{
				name: "empty location id",
				build: func() (*parcel.Parcel, error) {
					return parcel.NewParcel(id, "PKG-0001", dims, "Boston, USA", "Standard", categoryID, kernel.UUID{})
				},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				p, err := tc.build()
				require.Error(t, err)
				assert.Nil(t, p)
			})
		}
	})
}

func TestRestoreParcel(t *testing.T) {
	dims, err := parcel.NewDimensions(8, 25, 18, 10)
	require.NoError(t, err)

	id := kernel.NewUUID()
	categoryID := kernel.NamedUUID("category/Standard")
	locationID := kernel.NamedUUID("location/A01-02")
	receivedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("stored parcel with location", func(t *testing.T) {
		p, err := parcel.RestoreParcel(id, "PKG-0002", dims,
			"Chicago, USA", "Standard", categoryID, &locationID, parcel.Stored, receivedAt)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, parcel.Stored, p.Status())
		assert.Equal(t, receivedAt, p.ReceivedAt())
		require.NotNil(t, p.LocationID())
	})

	t.Run("delivered parcel without location", func(t *testing.T) {
		p, err := parcel.RestoreParcel(id, "PKG-0002", dims,
			"Chicago, USA", "Standard", categoryID, nil, parcel.Delivered, receivedAt)

		require.NoError(t, err)
		assert.Nil(t, p.LocationID())
	})

	t.Run("stored parcel missing location", func(t *testing.T) {
		_, err := parcel.RestoreParcel(id, "PKG-0002", dims,
			"Chicago, USA", "Standard", categoryID, nil, parcel.Stored, receivedAt)

		require.Error(t, err)
	})

	t.Run("delivered parcel holding location", func(t *testing.T) {
		_, err := parcel.RestoreParcel(id, "PKG-0002", dims,
			"Chicago, USA", "Standard", categoryID, &locationID, parcel.Delivered, receivedAt)

		require.Error(t, err)
	})
}

func TestParcel_TransitionTo(t *testing.T) {
	newStoredParcel := func(t *testing.T) *parcel.Parcel {
		t.Helper()
		p, err := parcel.NewParcel(
			kernel.NewUUID(), "PKG-0003", mustDimensions(t),
			"Denver, USA", "Standard",
			kernel.NamedUUID("category/Standard"), kernel.NamedUUID("location/A01-03"))
		require.NoError(t, err)
		return p
	}

	t.Run("stored to in transit keeps location", func(t *testing.T) {
		p := newStoredParcel(t)

		require.NoError(t, p.TransitionTo(parcel.InTransit))
		assert.Equal(t, parcel.InTransit, p.Status())
		assert.NotNil(t, p.LocationID())
	})

	t.Run("delivery clears location", func(t *testing.T) {
		p := newStoredParcel(t)

		require.NoError(t, p.TransitionTo(parcel.Delivered))
		assert.Equal(t, parcel.Delivered, p.Status())
		assert.Nil(t, p.LocationID())
	})

	t.Run("illegal transition keeps state", func(t *testing.T) {
		p := newStoredParcel(t)

		require.Error(t, p.TransitionTo(parcel.Received))
		assert.Equal(t, parcel.Stored, p.Status())
		assert.NotNil(t, p.LocationID())
	})

	t.Run("no transition out of delivered", func(t *testing.T) {
		p := newStoredParcel(t)
		require.NoError(t, p.TransitionTo(parcel.Delivered))

		require.Error(t, p.TransitionTo(parcel.Stored))
		assert.Equal(t, parcel.Delivered, p.Status())
	})
}

func TestParcel_Validate_NotConstructed(t *testing.T) {
	var p parcel.Parcel

	require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
}
