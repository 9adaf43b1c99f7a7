package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/quanta"
	"github.com/teranos/quanta/errors"
)

// LocalesCmd represents the locales command
var LocalesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List available locales and their dimensions",
	RunE: func(cmd *cobra.Command, args []string) error {
		useJSON, _ := cmd.Flags().GetBool("json")

		parser, err := quanta.New(quanta.Options{})
		if err != nil {
			return errors.Wrap(err, "failed to build parser")
		}

		if useJSON {
			type entry struct {
				Locale     string   `json:"locale"`
				Dimensions []string `json:"dimensions"`
			}
			var out []entry
			for _, tag := range parser.Locales() {
				var names []string
				for _, dim := range parser.Dimensions(tag) {
					names = append(names, string(dim))
				}
				out = append(out, entry{Locale: tag.String(), Dimensions: names})
			}
			encoded, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to encode locales")
			}
			fmt.Println(string(encoded))
			return nil
		}

		rows := pterm.TableData{{"Locale", "Dimensions"}}
		for _, tag := range parser.Locales() {
			var names []string
			for _, dim := range parser.Dimensions(tag) {
				names = append(names, string(dim))
			}
			rows = append(rows, []string{tag.String(), strings.Join(names, ", ")})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}
