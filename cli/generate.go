package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/color-game/palettes/palette"
)

type generateOptions struct {
	harmony  string
	seed     int64
	format   string
	lock     []int
	previous []string
}

func newGenerateCmd(logger func() hclog.Logger) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette",
		Long: `Generate a five-colour palette and print it as terminal swatches.

Examples:
  # Random harmony
  palettectl generate

  # Reproducible triadic palette
  palettectl generate --harmony triadic --seed 7

  # Keep the first and last colours of a previous palette
  palettectl generate --lock 0,4 \
    --previous '#1481B8,#808080,#FF5833,#FFFFFF,#000000'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, logger())
		},
	}

	cmd.Flags().StringVar(&opts.harmony, "harmony", string(palette.Random), "harmony kind, or random")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&opts.format, "format", string(palette.FormatHex), "value format (HEX, RGBA, HSL)")
	cmd.Flags().IntSliceVar(&opts.lock, "lock", nil, "positions (0-4) to keep from --previous")
	cmd.Flags().StringSliceVar(&opts.previous, "previous", nil, "previous palette as hex colours")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions, logger hclog.Logger) error {
	harmony, err := palette.ParseHarmony(opts.harmony)
	if err != nil {
		return err
	}
	format, err := palette.ParseFormat(strings.ToUpper(opts.format))
	if err != nil {
		return err
	}
	lock, err := parseLockMask(opts.lock)
	if err != nil {
		return err
	}
	previous, err := parseHexColors(opts.previous)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("generating palette", "seed", seed, "harmony", harmony, "locked", opts.lock)

	p, err := palette.NewSeededGenerator(seed).Generate(lock, previous, harmony)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderPalette(p, format))
	return nil
}

// parseLockMask turns a list of positions into a LockMask.
func parseLockMask(positions []int) (palette.LockMask, error) {
	var mask palette.LockMask
	for _, i := range positions {
		if i < 0 || i >= palette.Size {
			return mask, fmt.Errorf("lock position %d out of range 0-%d", i, palette.Size-1)
		}
		mask[i] = true
	}
	return mask, nil
}

// parseHexColors converts "#RRGGBB" strings into HSL colours. The leading
// '#' is optional.
func parseHexColors(values []string) ([]palette.Color, error) {
	if len(values) > palette.Size {
		return nil, fmt.Errorf("at most %d previous colours allowed, got %d", palette.Size, len(values))
	}
	colors := make([]palette.Color, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if !strings.HasPrefix(v, "#") {
			v = "#" + v
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return nil, fmt.Errorf("invalid colour %q: %w", v, err)
		}
		h, s, l := c.Hsl()
		colors = append(colors, palette.Color{H: h, S: s * 100, L: l * 100})
	}
	return colors, nil
}
