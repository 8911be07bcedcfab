package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripSentinels(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing dx line", "1. Low back pain (M54.50)\n[AUTO:DX]", "1. Low back pain (M54.50)"},
		{"trailing moi paragraph", "P1.\n\nP2.\n\n[AUTO:MOI]", "P1.\n\nP2."},
		{"leading plan token", "[AUTO:PLAN] The patient will receive care.", "The patient will receive care."},
		{"case insensitive", "Text\n  [auto:dx]  ", "Text"},
		{"tag only", "[AUTO:MOI]", ""},
		{"tag mid-line kept", "see [AUTO:MOI] here", "see [AUTO:MOI] here"},
		{"stacked markers", "[AUTO:PLAN] Body\n[AUTO:DX]\n[AUTO:MOI]", "Body"},
		{"no marker", "Plain text.", "Plain text."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := StripSentinels(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, StripSentinels(got), "stripping must be idempotent")
		})
	}
}

func TestHasSentinel(t *testing.T) {
	assert.True(t, HasSentinel("a\n[AUTO:DX]", TagDx))
	assert.True(t, HasSentinel("[auto:plan] x", TagPlan))
	assert.False(t, HasSentinel("a", TagDx))
}
