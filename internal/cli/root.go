// Package cli wires the cobra command tree. Commands are thin adapters:
// they translate flags and files into a machine.Config, run the core, and
// hand the result to writers. No cipher logic lives here.
package cli

import (
	"github.com/spf13/cobra"

	"enigma/internal/version"
)

// NewRootCmd builds the command tree. Output and input streams come from
// the command itself so tests can run it against buffers.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "enigma",
		Short:   "Enigma M3 rotor cipher machine",
		Version: version.Version,
		Long: `Simulates the Wehrmacht/Kriegsmarine Enigma M3: eight rotors (I-VIII),
five reflectors (A, B, C, B-Thin, C-Thin), ring settings, ground position,
and a ten-cable plugboard, including the double-stepping anomaly.

Because the machine is reciprocal, decrypt is the same transform as
encrypt run from the same ground position.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newCipherCmd("encrypt", "Encrypt text with a configured machine"),
		newCipherCmd("decrypt", "Decrypt text (same transform, same ground position)"),
		newComponentsCmd(),
	)
	return root
}
