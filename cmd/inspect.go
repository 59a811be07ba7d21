package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Manu343726/spvgen/pkg/grammar"
	"github.com/Manu343726/spvgen/pkg/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var ErrUnknownClass = errors.New("unknown instruction class")

func formatCount(count int) string {
	if count == grammar.Unbounded {
		return "unbounded"
	}

	return strconv.Itoa(count)
}

func formatIndices(indices []int) string {
	if len(indices) == 0 {
		return "-"
	}

	return utils.FormatSlice(indices, ", ")
}

// Returns a table with one row per instruction
func instructionTable(model *grammar.Grammar, instructions []*grammar.Instruction) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Opcode", "Name", "Class", "Result", "Result type", "Min", "Max", "Refs", "Optional refs", "Trailing refs"})

	for _, instruction := range instructions {
		t.AppendRow(table.Row{
			instruction.OpCode(),
			instruction.OpName(),
			model.ClassOf(instruction.OpCode()).Identifier(),
			instruction.HasResult(),
			instruction.HasResultType(),
			instruction.MinOperandCount(),
			formatCount(instruction.MaxOperandCount()),
			formatIndices(instruction.RequiredReferenceIndices()),
			formatIndices(instruction.OptionalReferenceIndices()),
			instruction.HasTrailingVariadicReferences(),
		})
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("%d instructions", len(instructions))})
	return t
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print a table of the grammar instructions and their derived properties",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := loadGrammar()
		if err != nil {
			return err
		}

		instructions := model.Instructions()
		title := ""

		if tag, _ := cmd.Flags().GetString("class"); tag != "" {
			class, ok := model.Class(tag)
			if !ok {
				return utils.MakeError(ErrUnknownClass, "%q", tag)
			}

			instructions = model.InstructionsOfClass(class.Tag())
			title = class.Description()
		}

		t := instructionTable(model, instructions)
		if title != "" {
			t.SetTitle(title)
		}

		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringP("class", "c", "", "Only show the instructions of the class with this grammar tag (e.g. Type-Declaration)")
}
