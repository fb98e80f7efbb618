// Package model defines the domain types for the re-cmake CLI.
//
// All values in this package are built from command-line input at process
// start, used once to drive the executor, and discarded at exit. Nothing is
// persisted between runs.
//
// The derived variant types (LocalInstallType, GUIType, BuildConfig) are
// computed from Options once per invocation and parameterize the target
// names that the target package resolves command tokens to.
package model
