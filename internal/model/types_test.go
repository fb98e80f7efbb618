package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions_LocalInstallType verifies the -d/-t precedence rules:
// debugging wins over testing, and deployment is the default.
func TestOptions_LocalInstallType(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want LocalInstallType
	}{
		{"default is deployment", Options{}, LocalInstallDeployment},
		{"debugging", Options{Debugging: true}, LocalInstallDebugging},
		{"testing", Options{Testing: true}, LocalInstallTesting},
		{"debugging wins over testing", Options{Debugging: true, Testing: true}, LocalInstallDebugging},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.LocalInstallType())
		})
	}
}

// TestOptions_GUIType checks the low-res/hi-res derivation.
func TestOptions_GUIType(t *testing.T) {
	assert.Equal(t, GUIHiRes, Options{}.GUIType())
	assert.Equal(t, GUILowRes, Options{LowRes: true}.GUIType())
	assert.Equal(t, "low-res", GUILowRes.String())
}

// TestOptions_BuildConfig checks that --release switches Debug to Release.
func TestOptions_BuildConfig(t *testing.T) {
	assert.Equal(t, BuildConfigDebug, Options{}.BuildConfig())
	assert.Equal(t, BuildConfigRelease, Options{Release: true}.BuildConfig())
}

// TestSplitCommands covers the "--" split. The separator is forwarded
// together with the options that follow it.
func TestSplitCommands(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCmds   []string
		wantNative []string
	}{
		{
			name:     "no separator",
			args:     []string{"build", "install"},
			wantCmds: []string{"build", "install"},
		},
		{
			name:       "separator with native options",
			args:       []string{"a", "--", "-j", "8"},
			wantCmds:   []string{"a"},
			wantNative: []string{"--", "-j", "8"},
		},
		{
			name:       "only the first separator splits",
			args:       []string{"build", "--", "-k", "--", "x"},
			wantCmds:   []string{"build"},
			wantNative: []string{"--", "-k", "--", "x"},
		},
		{
			name:       "leading separator leaves no commands",
			args:       []string{"--", "-j", "8"},
			wantCmds:   []string{},
			wantNative: []string{"--", "-j", "8"},
		},
		{
			name:       "trailing separator",
			args:       []string{"build", "--"},
			wantCmds:   []string{"build"},
			wantNative: []string{"--"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, native := SplitCommands(tt.args)
			assert.Equal(t, tt.wantCmds, cmds)
			assert.Equal(t, tt.wantNative, native)
		})
	}
}

// TestCLIError verifies message formatting and unwrapping.
func TestCLIError(t *testing.T) {
	inner := errors.New("permission denied")
	err := WrapCLIError(ExitGeneralError, "failed to clear cache", inner)

	assert.Equal(t, "failed to clear cache: permission denied", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "bad flag", (&CLIError{Code: ExitUsageError, Message: "bad flag"}).Error())

	var cliErr *CLIError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &cliErr)
	assert.Equal(t, ExitGeneralError, cliErr.Code)
}

// TestStepFailedError checks the exact stderr wording of a failed step.
func TestStepFailedError(t *testing.T) {
	err := &StepFailedError{
		Command:    "build",
		Invocation: []string{"cmake", "--build", ".", "--config", "Debug", "--target", "native-build"},
		ExitCode:   3,
	}
	assert.Equal(t,
		`Command "build" [cmake --build . --config Debug --target native-build] failed with error code 3`,
		err.Error())
}
