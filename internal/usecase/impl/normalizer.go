package impl

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"

	"canpestre/internal/domain/entity"

	"github.com/pkg/errors"
)

// Normalization errors. Each one names the first check that failed; callers
// treat them all as message-local faults.
var (
	// ErrPayloadNotUTF8 is returned when the raw bytes are not valid UTF-8.
	ErrPayloadNotUTF8 = errors.New("payload is not valid UTF-8")
	// ErrPayloadNotJSON is returned when the payload does not parse as a JSON object.
	ErrPayloadNotJSON = errors.New("payload is not a JSON object")
	// ErrMissingPetID is returned when the mascota key is absent.
	ErrMissingPetID = errors.New("payload missing mascota")
	// ErrInvalidPetID is returned when mascota is present but not a positive integer.
	ErrInvalidPetID = errors.New("mascota is not a positive integer")
	// ErrMissingCoordinate is returned when a latitude or longitude key is absent.
	ErrMissingCoordinate = errors.New("payload missing coordinate")
)

// NormalizeLocationEvent turns a raw broker payload into a NormalizedLocation.
//
// The pet id must arrive under "mascota". Coordinates are accepted under
// either the English or Spanish key ("latitude"/"latitud",
// "longitude"/"longitud"), with the English spelling winning when both are
// present. Presence is what matters: a coordinate of 0 is a valid reading.
func NormalizeLocationEvent(payload []byte) (*entity.NormalizedLocation, error) {
	if !utf8.Valid(payload) {
		return nil, ErrPayloadNotUTF8
	}

	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return nil, errors.Wrap(ErrPayloadNotJSON, err.Error())
	}

	petID, err := extractPetID(fields)
	if err != nil {
		return nil, err
	}

	latitude, err := extractCoordinate(fields, "latitude", "latitud")
	if err != nil {
		return nil, err
	}

	longitude, err := extractCoordinate(fields, "longitude", "longitud")
	if err != nil {
		return nil, err
	}

	return &entity.NormalizedLocation{
		MascotaID: petID,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}

// extractPetID reads and validates the mascota field.
func extractPetID(fields map[string]any) (int64, error) {
	raw, ok := fields["mascota"]
	if !ok {
		return 0, ErrMissingPetID
	}

	number, ok := raw.(json.Number)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidPetID, "type %T", raw)
	}

	petID, err := number.Int64()
	if err != nil || petID <= 0 {
		return 0, errors.Wrapf(ErrInvalidPetID, "value %s", number.String())
	}

	return petID, nil
}

// extractCoordinate reads a coordinate under its primary key, falling back to
// the alternate spelling.
func extractCoordinate(fields map[string]any, key, altKey string) (entity.Coordinate, error) {
	raw, ok := fields[key]
	if !ok {
		raw, ok = fields[altKey]
	}
	if !ok {
		return entity.Coordinate{}, errors.Wrapf(ErrMissingCoordinate, "key %q", key)
	}

	coordinate, err := entity.ParseCoordinate(raw)
	if err != nil {
		return entity.Coordinate{}, errors.Wrapf(err, "key %q", key)
	}

	return coordinate, nil
}
