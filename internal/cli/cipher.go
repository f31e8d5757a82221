// internal/cli/cipher.go
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"enigma-core/machine"
	"enigma/internal/machinecfg"
	"enigma/internal/writers"
)

// cipherOptions holds the flags shared by encrypt and decrypt.
type cipherOptions struct {
	Text   string
	File   string
	Output string

	Reflector string
	Rotors    string // "I,II,III" left to right
	Rings     string // "1,1,1"
	Position  string
	Plugboard string // "AB CD EF"
	Strip     bool

	ConfigFile string
	SaveConfig string

	Format  string
	Verbose bool
}

// newCipherCmd builds encrypt or decrypt; the two are the same transform.
func newCipherCmd(use, short string) *cobra.Command {
	var opt cipherOptions
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCipher(cmd, &opt)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&opt.Text, "text", "t", "", "text to transform")
	fl.StringVarP(&opt.File, "file", "f", "", "read input from file")
	fl.StringVarP(&opt.Output, "output", "o", "", "write output to file (default stdout)")

	fl.StringVar(&opt.Reflector, "reflector", "", "reflector: A | B | C | B-Thin | C-Thin [B]")
	fl.StringVar(&opt.Rotors, "rotors", "", "three rotors, left to right, e.g. I,II,III")
	fl.StringVar(&opt.Rings, "rings", "", "three ring settings 1..26, e.g. 1,1,1")
	fl.StringVarP(&opt.Position, "position", "p", "", "ground position, three letters, e.g. AAA")
	fl.StringVar(&opt.Plugboard, "plugboard", "", `plugboard pairs, e.g. "AB CD EF" (max 10)`)
	fl.BoolVar(&opt.Strip, "strip-non-alpha", false, "drop characters outside A-Z instead of passing them through")

	fl.StringVar(&opt.ConfigFile, "config", "", "load machine settings from YAML file")
	fl.StringVar(&opt.SaveConfig, "save-config", "", "save effective settings to YAML file")

	fl.StringVar(&opt.Format, "format", writers.FormatText, "output format: text | json")
	fl.BoolVarP(&opt.Verbose, "verbose", "v", false, "log settings and final position to stderr")

	return cmd
}

func runCipher(cmd *cobra.Command, opt *cipherOptions) error {
	if !writers.ValidFormat(opt.Format) {
		return fmt.Errorf("invalid --format %q (want text or json)", opt.Format)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opt.Verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cfg, err := buildConfig(cmd, opt)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, opt.Text, opt.File)
	if err != nil {
		return err
	}

	m, err := machine.New(cfg)
	if err != nil {
		return err
	}
	eff := m.Config()
	logger.Info("machine configured",
		"reflector", eff.Reflector,
		"rotors", fmt.Sprintf("%s %s %s", eff.Rotors[0], eff.Rotors[1], eff.Rotors[2]),
		"rings", fmt.Sprintf("%d %d %d", eff.Rings[0], eff.Rings[1], eff.Rings[2]),
		"position", eff.Position,
		"plugboard_pairs", len(eff.Plugboard),
	)

	if opt.SaveConfig != "" {
		if err := machinecfg.Save(opt.SaveConfig, eff); err != nil {
			return err
		}
		logger.Info("settings saved", "path", opt.SaveConfig)
	}

	out := m.Encode(text)
	logger.Info("run complete", "final_position", m.Position())

	dst := cmd.OutOrStdout()
	if opt.Output != "" {
		f, err := os.Create(opt.Output)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer func() { _ = f.Close() }()
		dst = f
	}
	return writers.Write(dst, opt.Format, writers.NewResult(eff, out, m.Position()))
}

// buildConfig starts from the defaults (or a settings file) and overlays
// every flag the user actually set. Validation stays in machine.New; bad
// values are reported, never corrected.
func buildConfig(cmd *cobra.Command, opt *cipherOptions) (machine.Config, error) {
	cfg := machine.Default()
	if opt.ConfigFile != "" {
		var err error
		if cfg, err = machinecfg.Load(opt.ConfigFile); err != nil {
			return machine.Config{}, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("reflector") {
		cfg.Reflector = opt.Reflector
	}
	if fl.Changed("rotors") {
		rotors, err := splitTriple(opt.Rotors)
		if err != nil {
			return machine.Config{}, fmt.Errorf("--rotors: %w", err)
		}
		cfg.Rotors = rotors
	}
	if fl.Changed("rings") {
		rings, err := splitRings(opt.Rings)
		if err != nil {
			return machine.Config{}, fmt.Errorf("--rings: %w", err)
		}
		cfg.Rings = rings
	}
	if fl.Changed("position") {
		cfg.Position = opt.Position
	}
	if fl.Changed("plugboard") {
		cfg.Plugboard = splitPairs(opt.Plugboard)
	}
	if fl.Changed("strip-non-alpha") {
		cfg.PreserveNonAlpha = !opt.Strip
	}
	return cfg, nil
}
