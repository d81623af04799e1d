package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{
			name:     "microseconds",
			d:        250 * time.Microsecond,
			expected: "250µs",
		},
		{
			name:     "milliseconds",
			d:        42 * time.Millisecond,
			expected: "42ms",
		},
		{
			name:     "seconds",
			d:        1500 * time.Millisecond,
			expected: "1.5s",
		},
		{
			name:     "minutes",
			d:        90 * time.Second,
			expected: "1.5m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Duration(tt.d))
		})
	}
}

func TestBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int64
		expected string
	}{
		{
			name:     "bytes",
			n:        512,
			expected: "512 B",
		},
		{
			name:     "kibibytes",
			n:        2048,
			expected: "2.0 KiB",
		},
		{
			name:     "mebibytes",
			n:        3 * 1024 * 1024,
			expected: "3.0 MiB",
		},
		{
			name:     "gibibytes",
			n:        5 * 1024 * 1024 * 1024,
			expected: "5.0 GiB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Bytes(tt.n))
		})
	}
}
