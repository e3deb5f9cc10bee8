package scheduling_test

import (
	"testing"

	"shiftboard-backend/internal/database/models"
	"shiftboard-backend/internal/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobFunction(name string, sortOrder int) models.JobFunction {
	return models.JobFunction{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		IsActive:  true,
		SortOrder: sortOrder,
	}
}

func TestIsMeterFunction(t *testing.T) {
	assert.True(t, scheduling.IsMeterFunction("Meter 1"))
	assert.True(t, scheduling.IsMeterFunction("Meter 12"))

	// Exact, case-sensitive prefix with the trailing space.
	assert.False(t, scheduling.IsMeterFunction("Meter"))
	assert.False(t, scheduling.IsMeterFunction("meter 1"))
	assert.False(t, scheduling.IsMeterFunction("Meters"))
	assert.False(t, scheduling.IsMeterFunction("Receiving"))
	assert.False(t, scheduling.IsMeterFunction(""))
}

func TestMeterNumber(t *testing.T) {
	n, ok := scheduling.MeterNumber("Meter 5")
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	_, ok = scheduling.MeterNumber("Receiving")
	assert.False(t, ok)

	_, ok = scheduling.MeterNumber("Meter five")
	assert.False(t, ok)
}

func TestGroupCatalog(t *testing.T) {
	receiving := jobFunction("Receiving", 1)
	meter1 := jobFunction("Meter 1", 2)
	meter2 := jobFunction("Meter 2", 3)
	standalone := jobFunction("Meter", 4) // legacy record, superseded by the group
	packing := jobFunction("Packing", 5)

	grouped := scheduling.GroupCatalog([]models.JobFunction{receiving, meter1, meter2, standalone, packing})

	require.Len(t, grouped, 3)

	names := make([]string, len(grouped))
	for i, g := range grouped {
		names[i] = g.Name
	}
	assert.Equal(t, []string{"Receiving", "Meter", "Packing"}, names)

	group := grouped[1]
	assert.True(t, group.IsGroup)
	require.Len(t, group.IndividualMeters, 2)
	assert.Equal(t, meter1.ID, group.IndividualMeters[0].ID)
	assert.Equal(t, meter2.ID, group.IndividualMeters[1].ID)
	// Group entry inherits the first meter's attributes.
	assert.Equal(t, meter1.ID, group.ID)
	assert.Equal(t, meter1.SortOrder, group.SortOrder)
}

func TestGroupCatalogNoMeters(t *testing.T) {
	receiving := jobFunction("Receiving", 1)
	grouped := scheduling.GroupCatalog([]models.JobFunction{receiving})

	require.Len(t, grouped, 1)
	assert.False(t, grouped[0].IsGroup)
	assert.Equal(t, "Receiving", grouped[0].Name)
}

func TestSanitizeTrainingIDs(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	got := scheduling.SanitizeTrainingIDs([]string{
		a.String(),
		"",                            // empty
		scheduling.MeterGroupSentinel, // legacy placeholder
		b.String(),
		a.String(), // duplicate
		"not-a-uuid",
	})

	assert.Equal(t, []uuid.UUID{a, b}, got)
}
