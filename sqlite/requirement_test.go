package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonyzdev/jobparse"
	"github.com/tonyzdev/jobparse/sqlite"
)

func TestRequirementService_WriteRequirements(t *testing.T) {
	t.Parallel()

	t.Run("stores records in order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRequirementService(db)
		ctx := context.Background()
		records := []*jobparse.RequirementRecord{
			{JobTitle: "Analyst", Education: "Bachelor's", Industry: "Finance/Banking"},
			{JobTitle: "Nurse", Major: "Nursing"},
		}

		require.NoError(t, svc.WriteRequirements(ctx, records))

		got, err := svc.FindRequirements(ctx)
		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("replaces previous records", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRequirementService(db)
		ctx := context.Background()

		require.NoError(t, svc.WriteRequirements(ctx, []*jobparse.RequirementRecord{{JobTitle: "Old"}}))
		require.NoError(t, svc.WriteRequirements(ctx, []*jobparse.RequirementRecord{{JobTitle: "New"}}))

		got, err := svc.FindRequirements(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "New", got[0].JobTitle)
	})

	t.Run("empty write clears the table", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRequirementService(db)
		ctx := context.Background()
		require.NoError(t, svc.WriteRequirements(ctx, []*jobparse.RequirementRecord{{JobTitle: "Old"}}))

		require.NoError(t, svc.WriteRequirements(ctx, nil))

		got, err := svc.FindRequirements(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
