package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "sentinel", err: ErrNotFound, expected: true},
		{name: "wrapped sentinel", err: fmt.Errorf("guild lookup: %w", ErrNotFound), expected: true},
		{name: "rest message", err: errors.New(`HTTP 404 Not Found, {"message": "Unknown Channel"}`), expected: true},
		{name: "other error", err: errors.New("connection reset"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDeliveryFailure(t *testing.T) {
	assert.True(t, IsDeliveryFailure(fmt.Errorf("%w: dial tcp: connection refused", ErrDeliveryFailed)))
	assert.False(t, IsDeliveryFailure(errors.New("dial tcp: connection refused")))
	assert.False(t, IsDeliveryFailure(nil))
}
