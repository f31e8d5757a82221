// internal/writers/result.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"enigma-core/machine"
	"enigma/pkg/api"
)

// Formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormat reports whether f names a known writer.
func ValidFormat(f string) bool { return f == FormatText || f == FormatJSON }

// NewResult assembles the wire struct from a finished run. cfg is the
// effective config (as echoed by the machine), final the position after
// the run.
func NewResult(cfg machine.Config, ciphertext, final string) api.ResultV1 {
	return api.ResultV1{
		Ciphertext:    ciphertext,
		FinalPosition: final,
		Reflector:     cfg.Reflector,
		Rotors:        cfg.Rotors[:],
		Rings:         cfg.Rings[:],
		Position:      cfg.Position,
		Plugboard:     cfg.Plugboard,
	}
}

// Write serializes r in the requested format. Text output is the bare
// ciphertext with a trailing newline; everything else about the run is
// JSON-only so text stays pipeline-friendly.
func Write(w io.Writer, format string, r api.ResultV1) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintln(w, r.Ciphertext)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
