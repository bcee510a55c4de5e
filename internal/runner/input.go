// internal/runner/input.go
package runner

import (
	"fmt"
	"io"
	"os"
)

// StdinPath is the file path that selects standard input.
const StdinPath = "-"

// ResolveText determines one text field of an estimate.
// Priority: text > filePath > stdin. filePath "-" reads stdin; stdin may be
// nil when it is a terminal. Unlike prompts, an estimate may be empty, so no
// source at all yields "".
func ResolveText(text, filePath string, stdin io.Reader) (string, error) {
	if text != "" {
		return text, nil
	}

	if filePath == StdinPath {
		if stdin == nil {
			return "", fmt.Errorf("reading stdin: standard input is a terminal")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), nil
	}

	return "", nil
}
