package contexts

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npgrosser/houston/pkg/errors"
	"github.com/npgrosser/houston/pkg/logging"
	"github.com/npgrosser/houston/pkg/paths"
	"github.com/npgrosser/houston/pkg/runner"
	"github.com/npgrosser/houston/pkg/template"
)

// Store gives access to the context files of one directory
type Store struct {
	Dir string
}

// NewStore returns a Store for the houston config directory
func NewStore(p paths.Paths) *Store {
	return &Store{Dir: p.ConfigDir()}
}

// Path returns the file path of the context called name
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name+paths.ContextExt)
}

// Exists reports whether the context file called name exists
func (s *Store) Exists(name string) bool {
	if validateName(name) != nil {
		return false
	}
	info, err := os.Stat(s.Path(name))
	return err == nil && !info.IsDir()
}

// Read returns the raw template of the context called name
func (s *Store) Read(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrContextNotFound, "context %q not found", name).
				WithDetail("name", name).
				WithDetail("path", path)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read context %q", name).
			WithDetail("path", path)
	}
	return string(data), nil
}

// List returns the sorted names of all context files
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list contexts in %s", s.Dir)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !paths.IsContextFile(entry.Name()) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), paths.ContextExt))
	}
	sort.Strings(names)
	return names, nil
}

// EvaluateWith reads the context of call and evaluates it with r
func (s *Store) EvaluateWith(call Call, r runner.ScriptRunner) (string, error) {
	logger := logging.GetLogger("contexts")

	tmpl, err := s.Read(call.Name)
	if err != nil {
		return "", err
	}

	logger.Debug().Str("context", call.Name).Strs("args", call.Args).Msg("Evaluating context")

	result, err := template.New(r).Evaluate(tmpl, call.Args)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrContextEval, "failed to evaluate context template %q", call.Name).
			WithDetail("name", call.Name)
	}
	return result, nil
}

// WithDefault returns calls followed by the default context when its file exists
func (s *Store) WithDefault(calls []Call) []Call {
	out := make([]Call, 0, len(calls)+1)
	out = append(out, calls...)
	if s.Exists(paths.DefaultContextName) {
		out = append(out, Call{Name: paths.DefaultContextName, Args: []string{}})
	}
	return out
}

// EvaluateAll evaluates every call in order and stops at the first error
func (s *Store) EvaluateAll(calls []Call, r runner.ScriptRunner) ([]string, error) {
	results := make([]string, 0, len(calls))
	for _, call := range calls {
		result, err := s.EvaluateWith(call, r)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func validateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "context name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.Newf(errors.ErrInvalidInput, "invalid context name %q", name).WithDetail("name", name)
	}
	return nil
}
