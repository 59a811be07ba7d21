package cmd

import (
	"fmt"

	"github.com/Manu343726/spvgen/pkg/definitions"
	"github.com/spf13/cobra"
)

var definitionsCmd = &cobra.Command{
	Use:   "definitions",
	Short: "List the available definitions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		width := 0
		for _, name := range definitions.Default.Names() {
			width = max(width, len(name))
		}

		for _, definition := range definitions.Default.All() {
			colorName.Fprintf(cmd.OutOrStdout(), "%-*s", width, definition.Name())
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", definition.Description())
		}
	},
}
