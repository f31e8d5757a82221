// internal/cli/input.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// readInput resolves the message text: --text wins, then --file, then
// piped stdin. An interactive terminal with no flags is an error rather
// than a silent hang.
func readInput(cmd *cobra.Command, text, file string) (string, error) {
	if text != "" && file != "" {
		return "", errors.New("--text conflicts with --file")
	}
	if text != "" {
		return text, nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return trimTrailingNewline(string(data)), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if stat, err := f.Stat(); err == nil && stat.Mode()&os.ModeCharDevice != 0 {
			return "", errors.New("no input: use --text, --file, or pipe via stdin")
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return trimTrailingNewline(string(data)), nil
}

func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// splitTriple parses a comma-separated rotor list. Exactly three names;
// anything else is reported, not padded.
func splitTriple(s string) ([3]string, error) {
	var out [3]string
	parts := splitList(s)
	if len(parts) != 3 {
		return out, fmt.Errorf("want exactly 3 rotors, got %d", len(parts))
	}
	copy(out[:], parts)
	return out, nil
}

// splitRings parses a comma-separated ring-setting list. Range checking is
// the machine's job; only the shape is parsed here.
func splitRings(s string) ([3]int, error) {
	var out [3]int
	parts := splitList(s)
	if len(parts) != 3 {
		return out, fmt.Errorf("want exactly 3 ring settings, got %d", len(parts))
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return out, fmt.Errorf("ring %q: %w", p, err)
		}
		out[i] = n
	}
	return out, nil
}

// splitPairs accepts "AB CD" or "AB,CD".
func splitPairs(s string) []string {
	return splitList(s)
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
