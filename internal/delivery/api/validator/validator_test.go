package validator

import (
	"testing"

	domainerrors "tidewise/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type positionRequest struct {
	Lat *float64 `validate:"required,gte=-90,lte=90"`
	Lng *float64 `validate:"required,gte=-180,lte=180"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	lat, lng := 16.5, 80.6

	require.NoError(t, v.Validate(&positionRequest{Lat: &lat, Lng: &lng}))

	err := v.Validate(&positionRequest{Lat: &lat})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Lng failed on required", appErr.Details())

	bad := 95.0
	err = v.Validate(&positionRequest{Lat: &bad, Lng: &lng})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Lat failed on lte=90", appErr.Details())
}
