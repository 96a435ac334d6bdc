package impl

import (
	"testing"

	"canpestre/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLocationEvent_EnglishKeys(t *testing.T) {
	payload := []byte(`{"mascota":3,"latitude":-12.046374,"longitude":-77.042793}`)

	normalized, err := NormalizeLocationEvent(payload)
	require.NoError(t, err)

	assert.Equal(t, int64(3), normalized.MascotaID)
	assert.True(t, normalized.Latitude.Equal(entity.MustCoordinate("-12.046374")))
	assert.True(t, normalized.Longitude.Equal(entity.MustCoordinate("-77.042793")))
}

func TestNormalizeLocationEvent_SpanishKeys(t *testing.T) {
	payload := []byte(`{"mascota":7,"latitud":4.60971,"longitud":-74.08175}`)

	normalized, err := NormalizeLocationEvent(payload)
	require.NoError(t, err)

	assert.Equal(t, int64(7), normalized.MascotaID)
	assert.True(t, normalized.Latitude.Equal(entity.MustCoordinate("4.60971")))
	assert.True(t, normalized.Longitude.Equal(entity.MustCoordinate("-74.08175")))
}

func TestNormalizeLocationEvent_EnglishKeyWinsOverSpanish(t *testing.T) {
	payload := []byte(`{"mascota":1,"latitude":1.5,"latitud":9.9,"longitude":2.5,"longitud":8.8}`)

	normalized, err := NormalizeLocationEvent(payload)
	require.NoError(t, err)

	assert.True(t, normalized.Latitude.Equal(entity.MustCoordinate("1.5")))
	assert.True(t, normalized.Longitude.Equal(entity.MustCoordinate("2.5")))
}

func TestNormalizeLocationEvent_ZeroCoordinatesAreValid(t *testing.T) {
	// A reading at the origin is a legitimate GPS fix; presence of the key is
	// what matters, not the value.
	payload := []byte(`{"mascota":5,"latitude":0,"longitude":0}`)

	normalized, err := NormalizeLocationEvent(payload)
	require.NoError(t, err)

	assert.True(t, normalized.Latitude.Equal(entity.MustCoordinate("0")))
	assert.True(t, normalized.Longitude.Equal(entity.MustCoordinate("0")))
}

func TestNormalizeLocationEvent_MissingPetID(t *testing.T) {
	payload := []byte(`{"latitude":-12.0,"longitude":-77.0}`)

	_, err := NormalizeLocationEvent(payload)
	assert.ErrorIs(t, err, ErrMissingPetID)
}

func TestNormalizeLocationEvent_InvalidPetID(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "string id", payload: `{"mascota":"tres","latitude":1,"longitude":1}`},
		{name: "zero id", payload: `{"mascota":0,"latitude":1,"longitude":1}`},
		{name: "negative id", payload: `{"mascota":-4,"latitude":1,"longitude":1}`},
		{name: "fractional id", payload: `{"mascota":3.5,"latitude":1,"longitude":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeLocationEvent([]byte(tt.payload))
			assert.ErrorIs(t, err, ErrInvalidPetID)
		})
	}
}

func TestNormalizeLocationEvent_MissingCoordinate(t *testing.T) {
	_, err := NormalizeLocationEvent([]byte(`{"mascota":3,"longitude":-77.0}`))
	assert.ErrorIs(t, err, ErrMissingCoordinate)

	_, err = NormalizeLocationEvent([]byte(`{"mascota":3,"latitude":-12.0}`))
	assert.ErrorIs(t, err, ErrMissingCoordinate)
}

func TestNormalizeLocationEvent_NotJSON(t *testing.T) {
	_, err := NormalizeLocationEvent([]byte(`not json at all`))
	assert.ErrorIs(t, err, ErrPayloadNotJSON)
}

func TestNormalizeLocationEvent_NotUTF8(t *testing.T) {
	_, err := NormalizeLocationEvent([]byte{0xff, 0xfe, 0xfd})
	assert.ErrorIs(t, err, ErrPayloadNotUTF8)
}

func TestNormalizeLocationEvent_CoordinateOutOfRange(t *testing.T) {
	_, err := NormalizeLocationEvent([]byte(`{"mascota":3,"latitude":1000,"longitude":-77.0}`))
	assert.ErrorIs(t, err, entity.ErrCoordinateOutOfRange)
}

func TestNormalizeLocationEvent_CoordinateTooPrecise(t *testing.T) {
	_, err := NormalizeLocationEvent([]byte(`{"mascota":3,"latitude":-12.12345678901,"longitude":-77.0}`))
	assert.ErrorIs(t, err, entity.ErrCoordinatePrecision)
}
