package cmake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/recmake/re-cmake/internal/model"
)

// TestInvocation_Args verifies the argument order for each flag combination.
func TestInvocation_Args(t *testing.T) {
	tests := []struct {
		name   string
		opts   model.Options
		native []string
		want   string
	}{
		{
			name: "defaults",
			want: "cmake --build . --config Debug --target native-build",
		},
		{
			name: "verbose",
			opts: model.Options{Verbose: true},
			want: "cmake --build . --verbose --config Debug --target native-build",
		},
		{
			name: "release",
			opts: model.Options{Release: true},
			want: "cmake --build . --config Release --target native-build",
		},
		{
			name:   "native options appended verbatim",
			opts:   model.Options{Verbose: true, Release: true},
			native: []string{"--", "-j", "8"},
			want:   "cmake --build . --verbose --config Release --target native-build -- -j 8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInvocation("", tt.opts, "native-build", tt.native)
			assert.Equal(t, tt.want, inv.String())
		})
	}
}

// TestInvocation_Argv checks that Argv is the binary followed by Args.
func TestInvocation_Argv(t *testing.T) {
	inv := NewInvocation("/opt/cmake/bin/cmake", model.Options{}, "common-clean", nil)

	assert.Equal(t, "/opt/cmake/bin/cmake", inv.Argv()[0])
	assert.Equal(t, inv.Args(), inv.Argv()[1:])
	assert.Equal(t, []string{"--build", ".", "--config", "Debug", "--target", "common-clean"}, inv.Args())
}
