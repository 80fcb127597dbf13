package gpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		count int
		want  TranscriptStatus
	}{
		{0, StatusEmpty},
		{1, StatusPartial},
		{19, StatusPartial},
		{20, StatusComplete},
		{45, StatusComplete},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Status(tt.count), "course count %d", tt.count)
	}
}
