package cmd

import (
	"errors"
	"strconv"

	"github.com/Manu343726/spvgen/pkg/grammar"
	"github.com/Manu343726/spvgen/pkg/utils"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var ErrUnknownInstruction = errors.New("unknown instruction")

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Finds an instruction by opcode or by mnemonic
func findInstruction(model *grammar.Grammar, query string) (*grammar.Instruction, error) {
	if opcode, err := strconv.ParseUint(query, 10, 32); err == nil {
		if instruction, ok := model.Instruction(grammar.OpCode(opcode)); ok {
			return instruction, nil
		}
	}

	for _, instruction := range model.Instructions() {
		if instruction.OpName() == query {
			return instruction, nil
		}
	}

	return nil, utils.MakeError(ErrUnknownInstruction, "%q", query)
}

var dumpCmd = &cobra.Command{
	Use:   "dump [opcode|opname]",
	Short: "Dump the grammar model",
	Long: `Prints the model built from the grammar file: classes and deduplicated instructions.
If an opcode or an instruction name is given, only that instruction is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := loadGrammar()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			instruction, err := findInstruction(model, args[0])
			if err != nil {
				return err
			}

			dumpConfig.Fdump(cmd.OutOrStdout(), instruction)
			return nil
		}

		dumpConfig.Fdump(cmd.OutOrStdout(), model.Classes(), model.Instructions())
		return nil
	},
}
