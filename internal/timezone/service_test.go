package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTimezone(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	tests := []struct {
		name string
		lat  float64
		lon  float64
		want string
	}{
		{"Hamburg", 53.5506, 9.9930, "Europe/Berlin"},
		{"Berlin", 52.5170, 13.3888, "Europe/Berlin"},
		{"London", 51.5074, -0.1278, "Europe/London"},
		{"New York", 40.7128, -74.0060, "America/New_York"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.lat, tt.lon)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewService_ReturnsSameInstance(t *testing.T) {
	first, err := NewService()
	require.NoError(t, err)

	second, err := NewService()
	require.NoError(t, err)

	assert.Same(t, first, second)
}
