package cmd

import (
	"fmt"
	"strings"

	"github.com/Manu343726/spvgen/pkg/definitions"
	"github.com/Manu343726/spvgen/pkg/generator"
	"github.com/Manu343726/spvgen/pkg/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	colorSuccess = color.New(color.FgGreen)
	colorPath    = color.New(color.FgHiBlue)
	colorName    = color.New(color.FgYellow, color.Bold)
)

var generateCmd = &cobra.Command{
	Use:   "generate [definition...|all]",
	Short: "Generate source modules from the SPIR-V grammar",
	Long: `Runs the given definitions against the grammar and writes one module per definition
to the output directory, named after the definition. Without arguments, or with "all",
every definition is run.

Supported definitions:
` + strings.Join(utils.Map(definitions.Default.Names(), func(name string) string { return "  " + name }), "\n"),
	ValidArgs: append(definitions.Default.Names(), definitions.All),
	Args:      cobra.OnlyValidArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := loadGrammar()
		if err != nil {
			return err
		}

		g := generator.NewGenerator(model, definitions.Default,
			generator.WithPreamble(configuredPreamble()),
			generator.WithJobs(viper.GetInt("jobs")),
			generator.WithLogger(logger))

		toStdout, _ := cmd.Flags().GetBool("stdout")
		if toStdout {
			selected, err := g.Resolve(args)
			if err != nil {
				return err
			}

			for _, definition := range selected {
				module, err := g.Module(definition.Name())
				if err != nil {
					return err
				}

				fmt.Fprint(cmd.OutOrStdout(), model.Dialect().Highlight(module.Serialize()))
			}

			return nil
		}

		paths, err := g.Generate(cmd.Context(), args, viper.GetString("output"))
		if err != nil {
			return err
		}

		for _, path := range paths {
			colorSuccess.Fprint(cmd.OutOrStdout(), "generated ")
			colorPath.Fprintln(cmd.OutOrStdout(), path)
		}

		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("output", "o", ".", "Output directory. Created if missing.")
	generateCmd.Flags().Bool("stdout", false, "Print the generated modules to stdout instead of writing files.")
	generateCmd.Flags().IntP("jobs", "j", 0, "Number of definitions generated in parallel. 0 means one per CPU.")

	cobra.CheckErr(viper.BindPFlag("output", generateCmd.Flags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("jobs", generateCmd.Flags().Lookup("jobs")))
}
