package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFindParcelQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewFindParcelQuery("PKG-0001")
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "PKG-0001", query.Barcode())
	})

	t.Run("empty barcode", func(t *testing.T) {
		_, err := queries.NewFindParcelQuery("")
		require.ErrorIs(t, err, queries.ErrBarcodeIsRequired)
	})

	t.Run("not constructed", func(t *testing.T) {
		var query queries.FindParcelQuery
		require.ErrorIs(t, query.Validate(), queries.ErrFindParcelQueryIsNotConstructed)
	})
}

func TestNewSummaryReportQuery(t *testing.T) {
	t.Run("explicit limit", func(t *testing.T) {
		query, err := queries.NewSummaryReportQuery(25)
		require.NoError(t, err)
		assert.Equal(t, 25, query.RecentLimit())
	})

	t.Run("zero selects default", func(t *testing.T) {
		query, err := queries.NewSummaryReportQuery(0)
		require.NoError(t, err)
		assert.Equal(t, queries.DefaultRecentLimit, query.RecentLimit())
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := queries.NewSummaryReportQuery(-1)
		require.Error(t, err)
	})

	t.Run("not constructed", func(t *testing.T) {
		var query queries.SummaryReportQuery
		require.ErrorIs(t, query.Validate(), queries.ErrSummaryReportQueryIsNotConstructed)
	})
}
