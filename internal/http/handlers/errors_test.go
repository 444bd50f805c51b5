package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/collabmatch/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

func TestStatusFromErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", fmt.Errorf("campaign %w", services.ErrNotFound), fiber.StatusNotFound},
		{"forbidden", fmt.Errorf("%w: not a participant", services.ErrForbidden), fiber.StatusForbidden},
		{"conflict", fmt.Errorf("%w: already applied", services.ErrConflict), fiber.StatusConflict},
		{"invalid", fmt.Errorf("%w: message is required", services.ErrInvalid), fiber.StatusBadRequest},
		// Driver and transport failures must land on 500, never a
		// client-error status.
		{"plain error", errors.New("write tcp: connection reset"), fiber.StatusInternalServerError},
		{"wrapped plain error", fmt.Errorf("query: %w", errors.New("timeout")), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFromErr(tt.err); got != tt.expected {
				t.Errorf("statusFromErr(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
