package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeResourceStatuses(t *testing.T) {
	assert.Equal(t, EstablishmentStatusActive, NormalizeEstablishmentStatus("actif"))
	assert.Equal(t, EstablishmentStatusUnknown, NormalizeEstablishmentStatus("demolished"))

	assert.Equal(t, PersonnelStatusOnLeave, NormalizePersonnelStatus("en congé"))
	assert.Equal(t, ProductStatusOutOfStock, NormalizeProductStatus("out-of-stock"))
	assert.Equal(t, LeaveStatusApproved, NormalizeLeaveStatus("Approuvée"))
	assert.Equal(t, ReportStatusResolved, NormalizeReportStatus("traité"))
	assert.Equal(t, ReservationStatusConfirmed, NormalizeReservationStatus("confirmed"))
	assert.Equal(t, EquipmentStatusBroken, NormalizeEquipmentStatus("EN PANNE"))
	assert.Equal(t, RevenueCategoryRestaurant, NormalizeRevenueCategory("restauration"))
	assert.Equal(t, RevenueCategoryUnknown, NormalizeRevenueCategory(""))
}

func TestParseResourceStatusesRejectUnknown(t *testing.T) {
	_, err := ParseReservationStatus("lost")
	require.Error(t, err)

	status, err := ParseEquipmentStatus("FONCTIONNEL")
	require.NoError(t, err)
	assert.Equal(t, EquipmentStatusOperational, status)
}

func TestFurnitureTypeHelpers(t *testing.T) {
	assert.True(t, FurnitureTypeTableLarge.IsTable())
	assert.False(t, FurnitureTypeChair.IsTable())
	assert.False(t, FurnitureType("throne").IsValid())

	parsed, err := ParseFurnitureType("sofa")
	require.NoError(t, err)
	assert.Equal(t, FurnitureTypeSofa, parsed)
}
