package goals

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FormatError indicates the status file exists but is not valid YAML of the
// expected shape. The loop treats it as fatal: nothing in this process can
// repair the file, so retrying the same read would spin.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Load reads and parses the goals document at path. Unknown fields are
// tolerated; a missing or odd status value parses fine and classifies as
// pending. Read failures wrap the underlying I/O error, parse failures
// return a *FormatError.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	return &f, nil
}

// UnmarshalYAML accepts any node as a status value. A non-string or missing
// status must not fail the parse; whatever is there classifies as pending.
func (s *Status) UnmarshalYAML(value *yaml.Node) error {
	*s = Status(value.Value)
	return nil
}

// IsNotFound reports whether err stems from a missing status file.
func IsNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
