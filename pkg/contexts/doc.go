// Package contexts reads and evaluates context files.
//
// A context file is a template named <name>.ctxt in the houston config
// directory. Its ${...} markers are evaluated through a shell before the
// result is handed to the script generator as an extra requirement.
//
// Contexts are referenced by calls of the form name:arg1 arg2. The
// arguments are available to every command in the file as positional
// parameters:
//
//	$ cat ~/.config/houston/git.ctxt
//	The current branch is ${git -C "$1" branch --show-current}
//
//	$ hu -c git:. "create a release tag"
package contexts
