package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sdhtool/internal/config"
	"sdhtool/internal/logging"
	"sdhtool/internal/sdh"
	"sdhtool/internal/srtio"
	"sdhtool/internal/textutil"
)

// cleaningFlagNames pairs each CLI rule flag with its usage string. The same
// names feed resolveCleaning, which only honors flags the user actually set.
var cleaningFlagNames = []struct {
	name  string
	usage string
}{
	{"remove-between-square", "Remove [bracketed] sound descriptions"},
	{"remove-between-paren", "Remove (parenthesized) sound descriptions"},
	{"between-only-if-separate-line", "Only drop bracketed text when it fills the whole line"},
	{"remove-text-before-colon", "Remove speaker labels before a colon"},
	{"colon-only-if-uppercase", "Only treat uppercase labels as speakers"},
	{"remove-if-only-music-symbols", "Drop lines containing nothing but music symbols"},
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		modeFlag   string
		inputPath  string
		outputPath string
		inPlace    bool
		presetFlag string
		renumber   bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a subtitle track between SDH, full, and forced variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			mode, err := sdh.ParseMode(modeFlag)
			if err != nil {
				return err
			}

			rules, err := resolveCleaning(cfg, presetFlag, cmd)
			if err != nil {
				return err
			}

			if inPlace {
				if strings.TrimSpace(inputPath) == "" {
					return fmt.Errorf("--in-place requires an input file")
				}
				if outputPath != "" {
					return fmt.Errorf("--in-place and --output are mutually exclusive")
				}
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}
			log := logging.NewComponentLogger(logger, "convert")
			runID := uuid.NewString()
			started := time.Now()

			lines, err := srtio.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("read subtitles: %w", err)
			}
			entries := sdh.Segment(lines)

			transformed, err := sdh.Transform(entries, mode, rules, nil)
			if err != nil {
				return err
			}

			doRenumber := cfg.Output.Renumber
			if cmd.Flags().Changed("renumber") {
				doRenumber = renumber
			}
			formatted := sdh.Format(transformed, doRenumber)

			if inPlace {
				err = srtio.RewriteInPlace(inputPath, formatted)
			} else {
				err = srtio.WriteFile(resolveOutputPath(inputPath, outputPath, mode), formatted)
			}
			if err != nil {
				return fmt.Errorf("write subtitles: %w", err)
			}

			log.Info("conversion complete",
				logging.String("run_id", runID),
				logging.String("mode", string(mode)),
				logging.Int("entries_in", len(entries)),
				logging.Int("entries_out", len(transformed)),
				logging.Int("entries_dropped", len(entries)-len(transformed)),
				logging.Duration("duration", time.Since(started)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", string(sdh.ModeSDHToFull), "Transformation mode (sdh-to-full, full-to-forced, sdh-to-forced)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input SRT file (defaults to stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output SRT file or directory (defaults to stdout)")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "Rewrite the input file in place")
	cmd.Flags().StringVar(&presetFlag, "preset", "", "Cleaning preset, replacing the configured one")
	cmd.Flags().BoolVar(&renumber, "renumber", true, "Renumber entries sequentially in the output")
	registerCleaningFlags(cmd)

	return cmd
}

func registerCleaningFlags(cmd *cobra.Command) {
	for _, flag := range cleaningFlagNames {
		cmd.Flags().Bool(flag.name, false, flag.usage)
	}
}

// resolveCleaning layers the rule sources: the configured preset plus config
// overrides form the base, --preset replaces that base outright, and any rule
// flag the user set wins over both.
func resolveCleaning(cfg *config.Config, presetFlag string, cmd *cobra.Command) (sdh.Config, error) {
	var rules sdh.Config
	if name := strings.ToLower(strings.TrimSpace(presetFlag)); name != "" {
		template, ok := sdh.Preset(name)
		if !ok {
			return sdh.Config{}, fmt.Errorf("unknown preset %q (known presets: %s)", presetFlag, strings.Join(sdh.PresetNames(), ", "))
		}
		rules = template
	} else {
		resolved, err := cfg.CleaningConfig()
		if err != nil {
			return sdh.Config{}, err
		}
		rules = resolved
	}

	flags := cmd.Flags()
	targets := map[string]*bool{
		"remove-between-square":         &rules.RemoveBetweenSquare,
		"remove-between-paren":          &rules.RemoveBetweenParen,
		"between-only-if-separate-line": &rules.BetweenOnlyIfSeparateLine,
		"remove-text-before-colon":      &rules.RemoveTextBeforeColon,
		"colon-only-if-uppercase":       &rules.ColonOnlyIfUppercase,
		"remove-if-only-music-symbols":  &rules.RemoveIfOnlyMusicSymbols,
	}
	for name, target := range targets {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetBool(name)
		if err != nil {
			return sdh.Config{}, err
		}
		*target = value
	}
	return rules, nil
}

// resolveOutputPath derives the destination file. When output names an
// existing directory the file name is built from the input name and the mode.
func resolveOutputPath(inputPath, outputPath string, mode sdh.Mode) string {
	if outputPath == "" {
		return ""
	}
	info, err := os.Stat(outputPath)
	if err != nil || !info.IsDir() {
		return outputPath
	}
	base := "subtitles"
	if inputPath != "" {
		name := filepath.Base(inputPath)
		base = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return filepath.Join(outputPath, base+"."+textutil.SanitizeToken(string(mode))+".srt")
}
