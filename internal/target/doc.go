// Package target maps re-cmake command tokens to CMake target names.
//
// A Table is built once per invocation because the variant-dependent
// target names (local45 install type, GUI resolution) are invocation-wide.
// Tokens that are not in the table are CMake targets in their own right and
// resolve to themselves.
package target
