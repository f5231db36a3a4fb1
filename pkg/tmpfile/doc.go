// Package tmpfile provides scoped temporary files used to stage scripts
// before they are handed to an interpreter.
//
// A File is created with its full content already written and closed, so
// a child process can open it by path. Close removes the backing file; it
// is safe to call more than once and never reports removal failures, which
// lets callers write
//
//	f, err := tmpfile.New(script, ".ps1")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
// without the cleanup masking the error of the surrounding operation.
package tmpfile
