//go:build unit

package patch_test

import (
	"testing"

	"branch-reservations/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestCoalesce(t *testing.T) {
	assert.Equal(t, int32(3), patch.Coalesce(nil, int32(3)))
	assert.Equal(t, int32(0), patch.Coalesce(ptr(int32(0)), 3))
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{name: "absent keeps current", in: nil, want: "Juan Perez"},
		{name: "sent is trimmed", in: ptr("  Maria Gomez "), want: "Maria Gomez"},
		{name: "blank clears", in: ptr("   "), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, patch.Text(tt.in, "Juan Perez"))
		})
	}
}
