// Package template evaluates context templates.
//
// A template is plain text with embedded shell commands written as
// ${command}. Evaluate scans left to right, runs each command through a
// runner.ScriptRunner and splices the output, minus trailing line breaks,
// into the result:
//
//	hello ${echo world}   ->   hello world
//
// The closing brace of a marker is found by counting braces, so a command
// may contain balanced braces of its own:
//
//	${ for f in *; do { echo "$f"; }; done }
//
// Command output is never scanned again, so output that contains ${ is
// kept literally. There is no escape for a literal ${ in the template.
// A marker without a matching closing brace is a syntax error and no
// partial result is returned.
package template
