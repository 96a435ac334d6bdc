package entity

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Coordinate precision: numeric(13,10) in the store, so at most 3 integer
// digits and 10 fractional digits. Values that cannot be represented exactly
// at that precision are rejected rather than rounded.
const (
	coordinateFractionalDigits = 10
	coordinateIntegerBound     = 1000
)

// Coordinate-related errors.
var (
	// ErrCoordinateOutOfRange is returned when |value| has more than 3 integer digits.
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
	// ErrCoordinatePrecision is returned when a value carries more than 10 fractional digits.
	ErrCoordinatePrecision = errors.New("coordinate exceeds fixed-point precision")
	// ErrCoordinateInvalid is returned when a value cannot be parsed as a decimal number.
	ErrCoordinateInvalid = errors.New("coordinate is not a number")
)

// Coordinate is a latitude or longitude stored as an exact fixed-point
// decimal. Arithmetic on float64 drifts across repeated writes; decimals
// round-trip through the numeric(13,10) columns unchanged.
type Coordinate struct {
	decimal.Decimal
}

// NewCoordinate validates d against the fixed-point bounds.
func NewCoordinate(d decimal.Decimal) (Coordinate, error) {
	if d.Exponent() < -coordinateFractionalDigits {
		return Coordinate{}, errors.Wrapf(ErrCoordinatePrecision, "value %s", d.String())
	}
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(coordinateIntegerBound)) {
		return Coordinate{}, errors.Wrapf(ErrCoordinateOutOfRange, "value %s", d.String())
	}

	return Coordinate{Decimal: d}, nil
}

// ParseCoordinate converts a decoded JSON value into a Coordinate. Numbers
// decoded with json.Number keep their textual form, so precision checks see
// exactly what the client sent.
func ParseCoordinate(value any) (Coordinate, error) {
	switch v := value.(type) {
	case interface{ String() string }: // json.Number and friends
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return Coordinate{}, errors.Wrapf(ErrCoordinateInvalid, "value %q", v.String())
		}

		return NewCoordinate(d)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Coordinate{}, errors.Wrapf(ErrCoordinateInvalid, "value %q", v)
		}

		return NewCoordinate(d)
	case float64:
		return NewCoordinate(decimal.NewFromFloat(v))
	case int:
		return NewCoordinate(decimal.NewFromInt(int64(v)))
	case int64:
		return NewCoordinate(decimal.NewFromInt(v))
	default:
		return Coordinate{}, errors.Wrapf(ErrCoordinateInvalid, "type %T", value)
	}
}

// MustCoordinate is a test helper; it panics on invalid input.
func MustCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}

	return c
}

// Equal reports whether two coordinates represent the same value.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Decimal.Equal(other.Decimal)
}

// MarshalJSON emits the coordinate as a bare JSON number. The embedded
// decimal would quote it as a string, which the API's clients do not expect.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return []byte(c.Decimal.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string and applies the
// fixed-point bounds.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(string(bytes.Trim(data, `"`)))
	if err != nil {
		return errors.Wrapf(ErrCoordinateInvalid, "value %s", data)
	}

	parsed, err := NewCoordinate(d)
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
