package tmpfile

import (
	"os"
	"sync"

	"github.com/npgrosser/houston/pkg/errors"
	"github.com/npgrosser/houston/pkg/logging"
)

// namePrefix is the prefix of every staged file name
const namePrefix = "houston-"

// File is a uniquely named file that is removed when closed
type File struct {
	path string
	once sync.Once
}

// New creates a file in the system temp directory whose name ends with
// suffix and writes content to it.
func New(content, suffix string) (*File, error) {
	return NewIn("", content, suffix)
}

// NewIn is like New but creates the file in dir. An empty dir means the
// system temp directory.
func NewIn(dir, content, suffix string) (*File, error) {
	fh, err := os.CreateTemp(dir, namePrefix+"*"+suffix)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileCreate, "failed to create temporary file").
			WithDetail("suffix", suffix)
	}

	f := &File{path: fh.Name()}

	if _, err := fh.WriteString(content); err != nil {
		_ = fh.Close()
		_ = f.Close()
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write temporary file %s", f.path)
	}
	if err := fh.Close(); err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to close temporary file %s", f.path)
	}

	logger := logging.GetLogger("tmpfile")
	logger.Trace().Str("path", f.path).Int("bytes", len(content)).Msg("Staged temporary file")

	return f, nil
}

// Path returns the absolute location of the file
func (f *File) Path() string {
	return f.path
}

// Close removes the file. Only the first call has an effect. Removal
// errors, including the file already being gone, are logged and dropped.
func (f *File) Close() error {
	f.once.Do(func() {
		if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
			logger := logging.GetLogger("tmpfile")
			logger.Debug().Err(err).Str("path", f.path).Msg("Failed to remove temporary file")
		}
	})
	return nil
}
