// Package testutil provides helpers for testing houston components.
//
// Key components:
//   - FakeRunner: a runner.ScriptRunner built on testify/mock
//   - Environment: an isolated config and state directory wired through
//     the HOUSTON_* environment variables
//   - RequireShell: skips tests that need a POSIX shell when none exists
package testutil
