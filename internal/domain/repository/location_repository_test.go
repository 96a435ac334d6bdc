package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationFilter_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "zero defaults to cap", limit: 0, wantLimit: MaxLocationPageSize},
		{name: "negative defaults to cap", limit: -5, wantLimit: MaxLocationPageSize},
		{name: "within cap kept", limit: 25, wantLimit: 25},
		{name: "at cap kept", limit: 100, wantLimit: 100},
		{name: "over cap clamped", limit: 150, wantLimit: MaxLocationPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := LocationFilter{Limit: tt.limit}.Normalize()
			assert.Equal(t, tt.wantLimit, f.Limit)
		})
	}
}

func TestLocationFilter_Ascending(t *testing.T) {
	assert.False(t, LocationFilter{}.Ascending())

	afterID := int64(10)
	assert.True(t, LocationFilter{AfterID: &afterID}.Ascending())

	// A zero cursor is still a cursor.
	zero := int64(0)
	assert.True(t, LocationFilter{AfterID: &zero}.Ascending())
}
