package main

import (
	"github.com/spf13/cobra"

	"orgguess/internal/language"
)

type languageRow struct {
	Code  string `json:"code" yaml:"code"`
	ISO3  string `json:"iso639_2" yaml:"iso639_2"`
	Name  string `json:"name" yaml:"name"`
	Model string `json:"model" yaml:"model"`
}

func newLanguagesCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the languages organizations can be guessed in",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveOutput(cmd, output)
			if err != nil {
				return err
			}
			dirs := ctx.config.ModelDirs()
			var rows []languageRow
			for _, code := range ctx.ensureRegistry().Languages() {
				rows = append(rows, languageRow{
					Code:  code,
					ISO3:  language.ToISO3(code),
					Name:  language.DisplayName(code),
					Model: modelDescription(code, dirs),
				})
			}
			return emit(cmd, format, rows, []column[languageRow]{
				{title: "Code", cell: func(r languageRow) string { return r.Code }},
				{title: "ISO 639-2", cell: func(r languageRow) string { return r.ISO3 }},
				{title: "Name", cell: func(r languageRow) string { return r.Name }},
				{title: "Model", cell: func(r languageRow) string { return r.Model }},
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", outputFlagUsage)
	return cmd
}

func modelDescription(code string, dirs map[string]string) string {
	if dir, ok := dirs[code]; ok {
		return "prose model at " + dir + " + rules"
	}
	if code == "en" {
		return "built-in prose model + rules"
	}
	return "rules only"
}
