package shipment_test

import (
	"testing"

	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    shipment.Status
		wantErr bool
	}{
		{in: "Planning", want: shipment.Planning},
		{in: "EnRoute", want: shipment.EnRoute},
		{in: "Arrived", want: shipment.Arrived},
		{in: "Completed", want: shipment.Completed},
		{in: "Unknown", wantErr: true},
		{in: "Lost", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := shipment.ParseStatus(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, shipment.Completed.Validate())
	require.Error(t, shipment.Unknown.Validate())
	require.Error(t, shipment.Status(7).Validate())
	assert.Equal(t, "Unknown", shipment.Status(7).String())
}
