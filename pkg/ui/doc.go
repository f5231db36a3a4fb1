// Package ui renders houston's terminal output.
//
// Output adapts to where it goes: rich styling and markdown rendering on
// color terminals, plain text when piped, redirected or when NO_COLOR is set.
package ui
