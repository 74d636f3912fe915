package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBucketsPartitionAllStatuses(t *testing.T) {
	active := 0
	completed := 0
	for _, status := range AllStatuses {
		require.True(t, status.Valid())
		if status.InProgress() {
			active++
		} else {
			completed++
		}
	}
	// Every status lands in exactly one bucket.
	assert.Equal(t, len(AllStatuses), active+completed)
	assert.Equal(t, 3, active)
	assert.Equal(t, 3, completed)
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusHired.Terminal())
	assert.True(t, StatusRejected.Terminal())
	for _, status := range []ApplicationStatus{StatusReceived, StatusInReview, StatusInterview, StatusOffer} {
		assert.False(t, status.Terminal(), string(status))
	}
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    ApplicationStatus
		to      ApplicationStatus
		enforce bool
		wantErr bool
	}{
		{"unrestricted allows skipping ahead", StatusReceived, StatusHired, false, false},
		{"unrestricted allows moving back", StatusOffer, StatusReceived, false, false},
		{"unrestricted allows leaving terminal", StatusHired, StatusReceived, false, false},
		{"unrestricted rejects unknown status", StatusReceived, "archived", false, true},
		{"pipeline allows forward step", StatusReceived, StatusInReview, true, false},
		{"pipeline allows forward jump", StatusInReview, StatusHired, true, false},
		{"pipeline allows reject from any non-terminal", StatusInterview, StatusRejected, true, false},
		{"pipeline rejects backward step", StatusOffer, StatusInReview, true, true},
		{"pipeline freezes hired", StatusHired, StatusOffer, true, true},
		{"pipeline freezes rejected", StatusRejected, StatusInReview, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to, tt.enforce)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
