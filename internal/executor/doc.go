// Package executor runs a sequence of re-cmake command tokens.
//
// Steps run strictly in order, one external process at a time. The first
// step whose build tool exits with a non-zero code stops the sequence;
// earlier successful steps are not rolled back and later steps never run.
package executor
