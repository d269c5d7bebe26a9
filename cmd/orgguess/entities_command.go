package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"orgguess/internal/ner"
)

type textEntities struct {
	Index    int          `json:"index" yaml:"index"`
	Entities []ner.Entity `json:"entities" yaml:"entities"`
}

// entityRow is one recognized entity in tabular output.
type entityRow struct {
	index  int
	entity ner.Entity
}

func newEntitiesCommand(ctx *commandContext) *cobra.Command {
	var flags guessFlags
	var output string

	cmd := &cobra.Command{
		Use:   "entities [files...]",
		Short: "Show the named entities recognized in each text",
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
			perText, err := guesser.Entities(cmd.Context(), texts, ctx.language(&flags))
			if err != nil {
				return err
			}

			views := make([]textEntities, 0, len(perText))
			for i, ents := range perText {
				if ents == nil {
					ents = []ner.Entity{}
				}
				views = append(views, textEntities{Index: i, Entities: ents})
			}
			if written, err := writeStructured(cmd, format, views); written {
				return err
			}
			var found []entityRow
			for _, view := range views {
				for _, ent := range view.Entities {
					found = append(found, entityRow{index: view.Index, entity: ent})
				}
			}
			return emit(cmd, format, found, []column[entityRow]{
				{title: "Text", right: true, cell: func(r entityRow) string { return strconv.Itoa(r.index) }},
				{title: "Label", cell: func(r entityRow) string { return r.entity.Label }},
				{title: "Entity", cell: func(r entityRow) string { return r.entity.Text }},
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", outputFlagUsage)
	return cmd
}
