package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"starfield/field"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the field headless and report what it drew",
	Long: `Drives the engine with simulated host frames and no window. A host rate
below the degrade threshold shows the adaptive quality controller at work.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().Duration("duration", 30*time.Second, "simulated run time")
	benchCmd.Flags().Float64("fps", 60, "simulated host frame rate")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	duration, _ := cmd.Flags().GetDuration("duration")
	fps, _ := cmd.Flags().GetFloat64("fps")

	e, err := field.NewEngine(cfg.Field, float64(cfg.ScreenWidth), float64(cfg.ScreenHeight), cfg.Seed)
	if err != nil {
		return err
	}
	res, err := field.Simulate(e, fps, duration)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "surface   %dx%d, host %.0f fps for %v\n", cfg.ScreenWidth, cfg.ScreenHeight, fps, duration)
	fmt.Fprintf(out, "frames    %d (%d ticks) in %v wall time\n", res.Frames, res.Ticks, res.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "state     %s at %.1f fps\n", res.Performance.State, res.Performance.FPS)
	fmt.Fprintf(out, "stars     %d", res.Stats.Stars)
	for _, c := range field.Categories {
		fmt.Fprintf(out, "  %s=%d", c, res.Stats.Types[c])
	}
	fmt.Fprintf(out, "\neffects   twinkle=%d glow=%d pulse=%d\n", res.Stats.Twinkle, res.Stats.Glow, res.Stats.Pulse)
	fmt.Fprintf(out, "shooting  %d in flight\n", res.Stats.ShootingStars)
	fmt.Fprintf(out, "draws     circles=%d glows=%d lines=%d blurs=%d\n",
		res.Draws.Circles, res.Draws.Glows, res.Draws.Lines, res.Draws.Blurs)
	for _, c := range res.Changes {
		fmt.Fprintf(out, "quality   %s at %.1f fps -> %d stars\n", c.Quality, c.FPS, c.Stars)
	}
	return nil
}
