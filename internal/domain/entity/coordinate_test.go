package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate_TenFractionalDigitsRoundTrip(t *testing.T) {
	c, err := ParseCoordinate("-12.0463741234")
	require.NoError(t, err)
	assert.Equal(t, "-12.0463741234", c.String())
}

func TestParseCoordinate_RejectsExcessPrecision(t *testing.T) {
	_, err := ParseCoordinate("-12.04637412345")
	assert.ErrorIs(t, err, ErrCoordinatePrecision)
}

func TestParseCoordinate_RejectsOutOfRange(t *testing.T) {
	_, err := ParseCoordinate("1000")
	assert.ErrorIs(t, err, ErrCoordinateOutOfRange)

	_, err = ParseCoordinate("-1000.5")
	assert.ErrorIs(t, err, ErrCoordinateOutOfRange)

	// Just inside the bound is fine.
	_, err = ParseCoordinate("999.9999999999")
	assert.NoError(t, err)
}

func TestParseCoordinate_AcceptsJSONNumber(t *testing.T) {
	c, err := ParseCoordinate(json.Number("-77.042793"))
	require.NoError(t, err)
	assert.True(t, c.Equal(MustCoordinate("-77.042793")))
}

func TestParseCoordinate_RejectsNonNumeric(t *testing.T) {
	_, err := ParseCoordinate("norte")
	assert.ErrorIs(t, err, ErrCoordinateInvalid)

	_, err = ParseCoordinate(true)
	assert.ErrorIs(t, err, ErrCoordinateInvalid)
}

func TestNewCoordinate_ZeroIsValid(t *testing.T) {
	c, err := NewCoordinate(decimal.Zero)
	require.NoError(t, err)
	assert.True(t, c.Equal(MustCoordinate("0")))
}

func TestCoordinate_MarshalJSON_BareNumber(t *testing.T) {
	c := MustCoordinate("-12.046374")

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, "-12.046374", string(data))
}

func TestCoordinate_UnmarshalJSON(t *testing.T) {
	var c Coordinate
	require.NoError(t, json.Unmarshal([]byte("-77.042793"), &c))
	assert.True(t, c.Equal(MustCoordinate("-77.042793")))

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &c))
	assert.Error(t, json.Unmarshal([]byte("1000"), &c))
}
