// Package runner executes scripts through an external interpreter.
//
// Every run stages the script into its own scoped temporary file (see
// package tmpfile), starts the interpreter with the staged path as the
// first argument followed by the caller's arguments, and waits for the
// process to exit. Standard output is either streamed line by line to a
// LineSink or inherited from the caller.
//
// Only staging, spawn and read failures are errors. A script that runs and
// exits with a non-zero status is reported as a success; interpreting exit
// codes is left to callers.
package runner
