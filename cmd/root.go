package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"starfield/config"
	"starfield/game"
)

var rootCmd = &cobra.Command{
	Use:   "starfield",
	Short: "Animated starfield with shooting stars",
	Long: `Opens a window with a twinkling starfield and occasional shooting stars.

Defaults can be overridden with STARFIELD_* environment variables; flags win
over the environment.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int("width", 0, "surface width in logical pixels")
	rootCmd.PersistentFlags().Int("height", 0, "surface height in logical pixels")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed (0 seeds from the clock)")

	rootCmd.Flags().Bool("reduced-motion", false, "draw one static frame instead of animating")
	rootCmd.Flags().Duration("shooting-interval", 0, "time between automatic shooting stars")
	rootCmd.Flags().String("profile-dir", "", "capture CPU profiles here when the field degrades")
}

// loadConfig reads the environment and applies any flags set on cmd
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.ScreenWidth, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.ScreenHeight, _ = flags.GetInt("height")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("reduced-motion") {
		cfg.ReducedMotion, _ = flags.GetBool("reduced-motion")
	}
	if flags.Changed("shooting-interval") {
		cfg.Field.ShootingStarInterval, _ = flags.GetDuration("shooting-interval")
	}
	if flags.Changed("profile-dir") {
		cfg.ProfileDir, _ = flags.GetString("profile-dir")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizable(true)

	log.Printf("starfield: %dx%d, %d stars", cfg.ScreenWidth, cfg.ScreenHeight, g.Engine().Stats().Stars)
	return ebiten.RunGame(g)
}
