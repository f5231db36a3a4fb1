package contexts

import "strings"

// Call names a context and the arguments to evaluate it with
type Call struct {
	Name string
	Args []string
}

// ParseCall parses name or name:args. Everything after the first colon is
// split on single spaces, so "foo:bar baz" yields foo with [bar baz]
// and later colons stay part of the arguments.
func ParseCall(input string) Call {
	name, rest, found := strings.Cut(input, ":")
	call := Call{Name: name, Args: []string{}}
	if found {
		call.Args = strings.Split(rest, " ")
	}
	return call
}

// String formats the call the way ParseCall reads it
func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + ":" + strings.Join(c.Args, " ")
}
