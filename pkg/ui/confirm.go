package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npgrosser/houston/pkg/errors"
)

// Confirm asks question on out and reads the answer from in. Only y or
// yes (any case) confirm; an empty answer or end of input declines.
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N]: ", question); err != nil {
		return false, errors.Wrap(err, errors.ErrInternal, "failed to write prompt")
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, errors.ErrInvalidInput, "failed to read user input")
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
