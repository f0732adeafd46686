package services_test

import (
	"testing"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParcel(t *testing.T, code string, weight, volume float64) *parcel.Parcel {
	t.Helper()
	dims, err := kernel.NewDimensions(weight, volume)
	require.NoError(t, err)
	p, err := parcel.NewParcel(kernel.NewUUID(), code, kernel.NewUUID(), dims, decimal.NewFromInt(1))
	require.NoError(t, err)
	return p
}

func newShipment(t *testing.T, name string) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), name)
	require.NoError(t, err)
	return s
}

func TestShipmentCoordinator_Join(t *testing.T) {
	coordinator := services.NewShipmentCoordinator()

	t.Run("should assign unassigned parcel", func(t *testing.T) {
		s := newShipment(t, "C1")
		p := newParcel(t, "TRK1", 1, 1)

		require.NoError(t, coordinator.Join(s, p))
		assert.True(t, p.BelongsTo(s.ID()))
	})

	t.Run("should be idempotent for the same shipment", func(t *testing.T) {
		s := newShipment(t, "C1")
		p := newParcel(t, "TRK1", 1, 1)

		require.NoError(t, coordinator.Join(s, p))
		require.NoError(t, coordinator.Join(s, p))
		assert.True(t, p.BelongsTo(s.ID()))
	})

	t.Run("should refuse parcel of another shipment", func(t *testing.T) {
		owner := newShipment(t, "C1")
		other := newShipment(t, "C2")
		p := newParcel(t, "TRK1", 1, 1)
		require.NoError(t, coordinator.Join(owner, p))

		err := coordinator.Join(other, p)

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, services.ErrParcelInAnotherShipment)
		assert.True(t, p.BelongsTo(owner.ID()))
	})
}

func TestShipmentCoordinator_Claim(t *testing.T) {
	coordinator := services.NewShipmentCoordinator()
	owner := newShipment(t, "C1")
	thief := newShipment(t, "C2")
	p := newParcel(t, "TRK1", 1, 1)
	require.NoError(t, coordinator.Join(owner, p))

	require.NoError(t, coordinator.Claim(thief, p))

	assert.True(t, p.BelongsTo(thief.ID()))
}

func TestShipmentCoordinator_ReplaceMembers(t *testing.T) {
	coordinator := services.NewShipmentCoordinator()

	t.Run("should release dropped and take new members", func(t *testing.T) {
		s := newShipment(t, "C1")
		p1 := newParcel(t, "P1", 1, 0.1)
		p2 := newParcel(t, "P2", 2, 0.2)
		p3 := newParcel(t, "P3", 4, 0.4)

		_, members, err := coordinator.ReplaceMembers(s, nil, []*parcel.Parcel{p1, p2})
		require.NoError(t, err)
		require.NoError(t, coordinator.RecomputeTotals(s, members))

		changed, members, err := coordinator.ReplaceMembers(s, []*parcel.Parcel{p1, p2}, []*parcel.Parcel{p2, p3})
		require.NoError(t, err)
		require.NoError(t, coordinator.RecomputeTotals(s, members))

		assert.Nil(t, p1.ShipmentID())
		assert.True(t, p2.BelongsTo(s.ID()))
		assert.True(t, p3.BelongsTo(s.ID()))
		assert.ElementsMatch(t, []*parcel.Parcel{p1, p3}, changed)
		assert.InDelta(t, p2.Dimensions().Weight()+p3.Dimensions().Weight(), s.Totals().Weight(), 1e-9)
		assert.InDelta(t, 0.6, s.Totals().Volume(), 1e-9)
	})

	t.Run("should take parcels from other shipments", func(t *testing.T) {
		s := newShipment(t, "C1")
		other := newShipment(t, "C2")
		p := newParcel(t, "P1", 1, 1)
		require.NoError(t, coordinator.Join(other, p))

		changed, members, err := coordinator.ReplaceMembers(s, nil, []*parcel.Parcel{p})

		require.NoError(t, err)
		assert.Len(t, changed, 1)
		assert.Len(t, members, 1)
		assert.True(t, p.BelongsTo(s.ID()))
	})

	t.Run("should ignore duplicate ids", func(t *testing.T) {
		s := newShipment(t, "C1")
		p := newParcel(t, "P1", 1, 1)

		_, members, err := coordinator.ReplaceMembers(s, nil, []*parcel.Parcel{p, p})

		require.NoError(t, err)
		assert.Len(t, members, 1)
	})

	t.Run("should change nothing when the set is unchanged", func(t *testing.T) {
		s := newShipment(t, "C1")
		p := newParcel(t, "P1", 1, 1)
		require.NoError(t, coordinator.Join(s, p))

		changed, members, err := coordinator.ReplaceMembers(s, []*parcel.Parcel{p}, []*parcel.Parcel{p})

		require.NoError(t, err)
		assert.Empty(t, changed)
		assert.Len(t, members, 1)
	})
}

func TestShipmentCoordinator_RecomputeTotals(t *testing.T) {
	coordinator := services.NewShipmentCoordinator()

	t.Run("should sum member dimensions", func(t *testing.T) {
		s := newShipment(t, "C1")
		p1 := newParcel(t, "P1", 1.5, 0.5)
		p2 := newParcel(t, "P2", 2.5, 0.25)
		require.NoError(t, coordinator.Join(s, p1))
		require.NoError(t, coordinator.Join(s, p2))

		require.NoError(t, coordinator.RecomputeTotals(s, []*parcel.Parcel{p1, p2}))
		require.NoError(t, coordinator.RecomputeTotals(s, []*parcel.Parcel{p1, p2}))

		assert.InDelta(t, 4.0, s.Totals().Weight(), 1e-9)
		assert.InDelta(t, 0.75, s.Totals().Volume(), 1e-9)
	})

	t.Run("should reject parcels that are not members", func(t *testing.T) {
		s := newShipment(t, "C1")
		stranger := newParcel(t, "P1", 1, 1)

		err := coordinator.RecomputeTotals(s, []*parcel.Parcel{stranger})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipmentCoordinator_AdvanceStatus(t *testing.T) {
	coordinator := services.NewShipmentCoordinator()
	t0 := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should propagate mapped status to members", func(t *testing.T) {
		s := newShipment(t, "C1")
		p1 := newParcel(t, "P1", 1, 1)
		p2 := newParcel(t, "P2", 1, 1)
		require.NoError(t, coordinator.Join(s, p1))
		require.NoError(t, coordinator.Join(s, p2))

		applied, err := coordinator.AdvanceStatus(s, []*parcel.Parcel{p1, p2}, shipment.EnRoute, t0)

		require.NoError(t, err)
		assert.Equal(t, parcel.EnRoute, applied)
		assert.Equal(t, shipment.EnRoute, s.Status())
		assert.Equal(t, parcel.EnRoute, p1.Status())
		assert.Equal(t, parcel.EnRoute, p2.Status())
		assert.Equal(t, t0, *s.DepartureDate())
	})

	t.Run("should keep departure on repeated EnRoute", func(t *testing.T) {
		s := newShipment(t, "C1")

		_, err := coordinator.AdvanceStatus(s, nil, shipment.EnRoute, t0)
		require.NoError(t, err)
		_, err = coordinator.AdvanceStatus(s, nil, shipment.EnRoute, t0.Add(time.Hour))
		require.NoError(t, err)

		assert.Equal(t, t0, *s.DepartureDate())
	})

	t.Run("should map Completed to Arrived", func(t *testing.T) {
		s := newShipment(t, "C1")
		p := newParcel(t, "P1", 1, 1)
		require.NoError(t, coordinator.Join(s, p))

		applied, err := coordinator.AdvanceStatus(s, []*parcel.Parcel{p}, shipment.Completed, t0)

		require.NoError(t, err)
		assert.Equal(t, parcel.Arrived, applied)
		assert.Equal(t, parcel.Arrived, p.Status())
	})

	t.Run("should reject unknown status and change nothing", func(t *testing.T) {
		s := newShipment(t, "C1")
		p := newParcel(t, "P1", 1, 1)

		_, err := coordinator.AdvanceStatus(s, []*parcel.Parcel{p}, shipment.Unknown, t0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.Planning, s.Status())
		assert.Equal(t, parcel.InWarehouse, p.Status())
	})
}
