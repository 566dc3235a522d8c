package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"recipechat/internal/api"
	"recipechat/internal/recipe"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var refresh bool

	cmd := &cobra.Command{
		Use:   "parse <url>",
		Short: "Parse a recipe page and print its ingredients and steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			parsed, err := rt.service.Parse(cmd.Context(), api.ParseRequest{URL: args[0], Refresh: refresh})
			if err != nil {
				return cliError(err)
			}
			sess, ok := rt.service.Sessions().Get(parsed.SessionID)
			if !ok {
				return fmt.Errorf("session %s disappeared", parsed.SessionID)
			}
			r := sess.Recipe()
			if asJSON {
				return writeJSON(cmd, r)
			}

			out := cmd.OutOrStdout()
			if r.Title != "" {
				fmt.Fprintln(out, cases.Title(language.English).String(r.Title))
			}
			source := r.SourceURL
			if parsed.Cached {
				source += " (cached)"
			}
			fmt.Fprintln(out, source)
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderIngredients(r.Ingredients))
			fmt.Fprintln(out, renderSteps(r.Steps))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the parsed recipe as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Bypass the recipe cache")
	return cmd
}

func renderIngredients(ingredients []recipe.Ingredient) string {
	rows := make([][]string, 0, len(ingredients))
	for _, ing := range ingredients {
		rows = append(rows, []string{ing.Quantity, ing.Unit, ing.Name})
	}
	return renderTable([]string{"Qty", "Unit", "Ingredient"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft})
}

func renderSteps(steps []recipe.Step) string {
	rows := make([][]string, 0, len(steps))
	for _, step := range steps {
		rows = append(rows, []string{
			strconv.Itoa(step.Number),
			step.Description,
			strings.Join(step.Ingredients, ", "),
			strings.Join(step.Methods, ", "),
		})
	}
	return renderTable([]string{"#", "Step", "Uses", "Methods"}, rows, []columnAlignment{alignRight})
}
