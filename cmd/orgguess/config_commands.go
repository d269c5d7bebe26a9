package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"orgguess/internal/config"
	"orgguess/internal/logging"
	"orgguess/internal/ner"
	"orgguess/internal/preflight"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create, check and print the orgguess configuration",
	}
	cmd.AddCommand(
		newConfigInitCommand(),
		newConfigValidateCommand(ctx),
		newConfigShowCommand(ctx),
	)
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var dest string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a commented sample configuration",
		Annotations: standalone(),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := initTarget(dest)
			if err != nil {
				return err
			}
			if !overwrite {
				_, statErr := os.Stat(target)
				switch {
				case statErr == nil:
					return fmt.Errorf("%s already exists; pass --overwrite to replace it", target)
				case !errors.Is(statErr, fs.ErrNotExist):
					return fmt.Errorf("inspect %s: %w", target, statErr)
				}
			}
			if err := config.CreateSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(cmd.OutOrStdout(), "Set models.es (or ORGGUESS_ES_MODEL) to a prose model directory for statistical Spanish recognition.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dest, "path", "p", "", "Where to write the file (default ~/.config/orgguess/config.toml)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

func initTarget(dest string) (string, error) {
	if dest = strings.TrimSpace(dest); dest == "" {
		return config.DefaultConfigPath()
	}
	return config.ExpandPath(dest)
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Check the configuration and that every language pipeline loads",
		Annotations: standalone(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(strings.TrimSpace(ctx.flags.config))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "No config file found; using defaults")
			}

			registry := ner.NewDefaultRegistry(ner.Options{
				ModelDirs:     cfg.ModelDirs(),
				ExtraSuffixes: cfg.ExtraSuffixes(),
				Patterns:      cfg.Ruler.Patterns,
				Logger:        logging.NewNop(),
			})
			results := preflight.RunAll(cmd.Context(), cfg, registry)
			printPreflight(out, results)
			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d preflight checks failed", len(failed))
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func printPreflight(w io.Writer, results []preflight.Result) {
	for _, res := range results {
		status := "ok"
		if !res.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "  %-4s %s: %s\n", status, res.Name, res.Detail)
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration after defaults and environment overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := ctx.config.Encode()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", filepath.Clean(ctx.configPath), encoded)
			return err
		},
	}
}
