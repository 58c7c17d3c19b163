package cli

import (
	"fmt"
	"math/rand/v2"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/cubetimer/internal/config"
	"github.com/watchfire-io/cubetimer/internal/models"
	"github.com/watchfire-io/cubetimer/internal/scramble"
)

var (
	scrambleCount  int
	scrambleRender string
	scramblePlain  bool
	scrambleSeed   uint64
	scrambleOut    string
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print scrambles",
	Long: `Print one or more scrambles for a 3x3x3 cube.

--render net draws the scrambled cube as an unfolded net.
--render visualcube prints the VisualCube image URL; with --out the image
is downloaded to the given file.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleCount, "count", "n", 1, "number of scrambles")
	scrambleCmd.Flags().StringVarP(&scrambleRender, "render", "r", "", "render each scramble (net|visualcube)")
	scrambleCmd.Flags().BoolVar(&scramblePlain, "plain", false, "draw the net with face letters instead of colours")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "seed for reproducible scrambles (0 = random)")
	scrambleCmd.Flags().StringVarP(&scrambleOut, "out", "o", "", "write the VisualCube image to this file (single scramble only)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	if scrambleOut != "" && (scrambleRender != models.RendererVisualCube || scrambleCount != 1) {
		return fmt.Errorf("--out needs --render visualcube and a single scramble")
	}

	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	logger := cliLogger(settings)

	var rng *rand.Rand
	if scrambleSeed != 0 {
		rng = rand.New(rand.NewPCG(scrambleSeed, scrambleSeed))
	}
	provider := scramble.NewRandomMoves(settings.Scramble.Length, rng)

	var renderer scramble.Renderer
	switch scrambleRender {
	case "":
	case models.RendererNet:
		renderer = scramble.NetRenderer{Plain: scramblePlain}
	case models.RendererVisualCube:
		cfg := settings.VisualCube
		cfg.Fetch = scrambleOut != ""
		renderer = scramble.NewVisualCube(cfg, &http.Client{})
	default:
		return fmt.Errorf("unknown renderer %q (want net or visualcube)", scrambleRender)
	}

	out := cmd.OutOrStdout()
	for i := 0; i < scrambleCount; i++ {
		s, err := provider.Scramble(settings.Scramble.Size)
		if err != nil {
			return fmt.Errorf("failed to generate scramble: %w", err)
		}

		if scrambleCount > 1 {
			fmt.Fprintf(out, "%s %s\n", styleLabel.Render(fmt.Sprintf("%3d.", i+1)), styleScramble.Render(s))
		} else {
			fmt.Fprintln(out, styleScramble.Render(s))
		}

		if renderer == nil {
			continue
		}

		img, err := renderer.Render(cmd.Context(), s)
		if err != nil {
			logger.Warn().Err(err).Str("scramble", s).Msg("render failed")
			fmt.Fprintln(out, styleHint.Render(img.Alt))
			if scrambleOut != "" {
				return err
			}
			continue
		}

		switch {
		case img.ContentType == "text/plain":
			fmt.Fprintln(out, string(img.Data))
		case scrambleOut != "":
			if err := config.WriteFileAtomic(scrambleOut, img.Data); err != nil {
				return fmt.Errorf("failed to write image: %w", err)
			}
			fmt.Fprintln(out, styleSuccess.Render(fmt.Sprintf("Saved %s (%d bytes).", scrambleOut, len(img.Data))))
		default:
			fmt.Fprintln(out, styleHint.Render(img.URL))
		}
		if scrambleCount > 1 {
			fmt.Fprintln(out)
		}
	}
	return nil
}
