package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
)

func TestSubscriptionStatusFor(t *testing.T) {
	tests := []struct {
		transactionStatus string
		fraudStatus       string
		want              model.SubscriptionStatus
		applied           bool
	}{
		{"capture", "accept", model.SubscriptionActive, true},
		{"capture", "challenge", model.SubscriptionPending, true},
		{"settlement", "", model.SubscriptionActive, true},
		{"pending", "", model.SubscriptionPending, true},
		{"deny", "", model.SubscriptionPastDue, true},
		{"cancel", "", model.SubscriptionCanceled, true},
		{"refund", "", model.SubscriptionCanceled, true},
		{"partial_refund", "", model.SubscriptionCanceled, true},
		{"expire", "", model.SubscriptionExpired, true},
		{"SETTLEMENT", "", model.SubscriptionActive, true}, // case-insensitive
		{"failure", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		got, applied := SubscriptionStatusFor(tt.transactionStatus, tt.fraudStatus)
		assert.Equal(t, tt.applied, applied, "status %q", tt.transactionStatus)
		if tt.applied {
			assert.Equal(t, tt.want, got, "status %q", tt.transactionStatus)
		}
	}
}
