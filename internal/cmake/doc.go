// Package cmake builds and runs `cmake --build` invocations.
//
// All build work is delegated to the cmake binary via os/exec. The package
// only knows how to assemble the argument vector for a target and how to
// report the exit code of the child process; it does not interpret CMake
// output.
package cmake
