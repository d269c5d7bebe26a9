package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"orgguess/internal/language"
	"orgguess/internal/orgguess"
	"orgguess/internal/textutil"
)

type rankRow struct {
	Rank         int    `json:"rank" yaml:"rank"`
	Organization string `json:"organization" yaml:"organization"`
	Text         string `json:"text" yaml:"text"`
	Mentions     int    `json:"mentions" yaml:"mentions"`
	FirstSeen    int    `json:"first_seen" yaml:"first_seen"`
}

var rankColumns = []column[rankRow]{
	{title: "Rank", right: true, cell: func(r rankRow) string { return strconv.Itoa(r.Rank) }},
	{title: "Organization", cell: func(r rankRow) string { return r.Organization }},
	{title: "Text", cell: func(r rankRow) string { return r.Text }},
	{title: "Mentions", right: true, cell: func(r rankRow) string { return strconv.Itoa(r.Mentions) }},
	{title: "First Seen", right: true, cell: func(r rankRow) string { return strconv.Itoa(r.FirstSeen) }},
}

func newRankCommand(ctx *commandContext) *cobra.Command {
	var flags guessFlags
	var output string
	var limit int

	cmd := &cobra.Command{
		Use:   "rank [files...]",
		Short: "List every organization mentioned, most frequent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveOutput(cmd, output)
			if err != nil {
				return err
			}
			texts, err := ctx.readTexts(cmd, &flags, args)
			if err != nil {
				return err
			}
			guesser, err := ctx.newGuesser("")
			if err != nil {
				return err
			}
			lang := ctx.language(&flags)
			ranking, err := guesser.Rank(cmd.Context(), texts, lang)
			if err != nil {
				return err
			}

			return emit(cmd, format, rankRows(ranking, lang, limit), rankColumns)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", outputFlagUsage)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many organizations (0 for all)")
	return cmd
}

func rankRows(ranking orgguess.Ranking, lang string, limit int) []rankRow {
	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	tag := language.Tag(lang)
	rows := make([]rankRow, 0, len(ranking))
	for i, c := range ranking {
		rows = append(rows, rankRow{
			Rank:         i + 1,
			Organization: textutil.NormalizeOrganization(c.Text, tag),
			Text:         c.Text,
			Mentions:     c.Count,
			FirstSeen:    c.FirstSeen,
		})
	}
	return rows
}
