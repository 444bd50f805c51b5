package models

import (
	"testing"
	"time"
)

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		name     string
		likes    int
		comments int
		views    int
		expected float64
	}{
		{"no views", 5, 3, 0, 0.0},
		{"negative views", 1, 1, -1, 0.0},
		{"no engagement", 0, 0, 100, 0.0},
		{"simple", 10, 10, 100, 20.0},
		{"rounds to 2 decimals", 1, 0, 3, 33.33},
		{"rounds up", 2, 0, 3, 66.67},
		{"half rounds to even down", 1, 0, 800, 0.12},
		{"half rounds to even up", 3, 0, 800, 0.38},
		{"over 100 percent", 50, 60, 100, 110.0},
		{"single view single like", 1, 0, 1, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EngagementRate(tt.likes, tt.comments, tt.views)
			if got != tt.expected {
				t.Errorf("EngagementRate(%d, %d, %d) = %v, want %v", tt.likes, tt.comments, tt.views, got, tt.expected)
			}
		})
	}
}

func TestCampaignIsActive(t *testing.T) {
	past := Campaign{Deadline: time.Now().Add(-time.Hour)}
	if past.IsActive() {
		t.Error("campaign with past deadline should be inactive")
	}

	future := Campaign{Deadline: time.Now().Add(time.Hour)}
	if !future.IsActive() {
		t.Error("campaign with future deadline should be active")
	}
}
