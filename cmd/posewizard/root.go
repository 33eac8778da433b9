package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/posekit/model"
	"github.com/randalmurphal/posekit/openai"
	"github.com/randalmurphal/posekit/pricing"
	"github.com/randalmurphal/posekit/probe"
	"github.com/randalmurphal/posekit/resolver"
	"github.com/randalmurphal/posekit/wizard"
)

var version = "0.1.0"

// rootFlags are shared by every subcommand.
type rootFlags struct {
	apiKey       string
	modeName     string
	override     string
	settingsPath string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:     "posewizard",
		Short:   "Turn a photo plus a rough description into 3D bone rotations",
		Version: version,
		Long: `posewizard resolves a working OpenAI model for your chosen cost/quality
mode, shows what a run will cost before any paid call is made, and then
runs the two-call pipeline: describe the photo, synthesize bone rotations.

The API key is read from --key or the OPENAI_API_KEY environment variable
and is never written to disk.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if flags.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: level})))
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.apiKey, "key", "", "API key (defaults to $OPENAI_API_KEY)")
	pf.StringVar(&flags.modeName, "mode", "", "operating mode: Budget, Balanced, or Quality")
	pf.StringVar(&flags.override, "model", "", "pin a specific model, bypassing mode priority")
	pf.StringVar(&flags.settingsPath, "settings", "", "settings file (default config/settings.toml)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		newModelsCmd(flags),
		newEstimateCmd(flags),
		newGenerateCmd(flags),
	)
	return cmd
}

// newSession builds the wired session from flags, settings file, and
// environment, in that ascending order of precedence for the key pieces.
func newSession(flags *rootFlags) (*wizard.Session, model.Mode, model.ID, error) {
	settings, err := wizard.LoadSettings(flags.settingsPath)
	if err != nil {
		return nil, model.Mode{}, "", err
	}

	key := flags.apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return nil, model.Mode{}, "", fmt.Errorf("no API key: pass --key or set OPENAI_API_KEY")
	}

	mode := settings.Mode()
	if flags.modeName != "" {
		m, ok := model.ModeByName(flags.modeName)
		if !ok {
			return nil, model.Mode{}, "", fmt.Errorf("unknown mode %q (want Budget, Balanced, or Quality)", flags.modeName)
		}
		mode = m
	}

	override := model.ID(settings.OverrideModel)
	if flags.override != "" {
		override = model.ID(flags.override)
	}

	client := openai.NewClient(key)
	prober := probe.NewProber(client)
	res := resolver.New(client, prober, mode)
	catalog := pricing.NewCatalog(settings.PricingPath)

	return wizard.NewSession(client, res, catalog), mode, override, nil
}
