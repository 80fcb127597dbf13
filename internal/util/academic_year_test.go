package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAcademicYear(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2023-2024", true},
		{"1999-2000", true},
		{"2024-2024", false},
		{"2023-2025", false},
		{"2023/2024", false},
		{"23-24", false},
		{"", false},
		{"abcd-efgh", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidAcademicYear(tt.in), "input %q", tt.in)
	}
}
