package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"orgguess/internal/logging"
	"orgguess/internal/orgguess"
	"orgguess/internal/textutil"
)

// guessOutput is the --json form of a guess.
type guessOutput struct {
	orgguess.Result
	// FileName is the organization expanded into --template.
	FileName string `json:"file_name,omitempty"`
	// Fallback is set when Organization is the --fallback value.
	Fallback bool   `json:"fallback,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newGuessCommand(ctx *commandContext) *cobra.Command {
	var flags guessFlags
	var tie, fallback, template string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "guess [files...]",
		Short: "Print the organization the texts mention most",
		Long: `Print the organization the texts mention most, lowercased with spaces
replaced by hyphens ("Acme Corp" prints as acme-corp).

Texts come from --text flags, then from each file: plain text (one text per
line), .json (array of strings), .xlsx (one cell per text) or .html (one
paragraph per text). Use "-" or no files to read stdin.

With --fallback the given value is printed instead of failing when no
organization can be guessed. With --template the organization is made safe
for file names and substituted for %o ("%o_scan.pdf" prints
acme-corp_scan.pdf); %% prints a percent sign.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			texts, err := ctx.readTexts(cmd, &flags, args)
			if err != nil {
				return err
			}
			guesser, err := ctx.newGuesser(tie)
			if err != nil {
				return err
			}
			fallback = firstNonEmpty(fallback, ctx.config.Guess.Fallback)
			template = firstNonEmpty(template, ctx.config.Guess.Template)

			out := guessOutput{}
			out.Result, err = guesser.Explain(cmd.Context(), texts, ctx.language(&flags))
			if err != nil {
				if !canFallBack(err, fallback) {
					return err
				}
				logging.WarnWithContext(logging.WithContext(cmd.Context(), ctx.logger),
					"no organization guessed; printing fallback", "guess_fallback",
					logging.String("fallback", fallback),
					logging.String(logging.FieldImpact, "output names the fallback instead of an organization"),
					logging.Error(err),
				)
				out = guessOutput{
					Result:   orgguess.Result{Organization: fallback, Language: ctx.language(&flags)},
					Fallback: true,
					Error:    err.Error(),
				}
			}
			line := out.Organization
			if template != "" {
				out.FileName = textutil.ExpandTemplate(template, out.Organization)
				line = out.FileName
			}
			if asJSON {
				return writeJSON(cmd, out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&tie, "tie", "", "Tie policy when organizations are mentioned equally often: first, lexical or error")
	cmd.Flags().StringVar(&fallback, "fallback", "", "Print this value instead of failing when no organization is guessed; defaults to guess.fallback")
	cmd.Flags().StringVar(&template, "template", "", "Output template; %o expands to the file-name-safe organization; defaults to guess.template")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	return cmd
}

// canFallBack reports whether a failed guess may be replaced by fallback.
// Cancellation always propagates.
func canFallBack(err error, fallback string) bool {
	if fallback == "" {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
