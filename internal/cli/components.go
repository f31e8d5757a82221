// internal/cli/components.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"enigma-core/rotor"
)

// newComponentsCmd lists the registry: the fixed historical set of rotors
// and reflectors a config may name.
func newComponentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List available rotors and reflectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Rotors:")
			for _, name := range rotor.Names() {
				s, err := rotor.Lookup(name)
				if err != nil {
					return err
				}
				notches := strings.Join(strings.Split(s.Notches, ""), " ")
				fmt.Fprintf(w, "  %-5s notch %s\n", name, notches)
			}
			fmt.Fprintln(w, "Reflectors:")
			for _, name := range rotor.ReflectorNames() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			return nil
		},
	}
}
