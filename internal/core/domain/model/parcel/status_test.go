package parcel_test

import (
	"testing"

	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "InWarehouse", parcel.InWarehouse.String())
	assert.Equal(t, "EnRoute", parcel.EnRoute.String())
	assert.Equal(t, "Unknown", parcel.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []parcel.Status{parcel.Registered, parcel.InWarehouse, parcel.EnRoute, parcel.Arrived, parcel.Delivered} {
		require.NoError(t, s.Validate(), s.String())
	}
	require.ErrorIs(t, parcel.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, parcel.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestParseStatus(t *testing.T) {
	s, err := parcel.ParseStatus("Arrived")
	require.NoError(t, err)
	assert.Equal(t, parcel.Arrived, s)

	_, err = parcel.ParseStatus("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = parcel.ParseStatus("arrived")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
