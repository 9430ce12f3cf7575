package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/a64dis/disasm"
	"github.com/sarchlab/a64dis/insts"
)

func newWordsCmd(gs *globalState, opts *options) *cobra.Command {
	var addr uint64

	wordsCmd := &cobra.Command{
		Use:   "words <hex>...",
		Short: "Disassemble words given on the command line",
		Example: `  a64dis words d503201f 0x910003e0
  a64dis words --addr 0x1000 54000040`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			decoder := insts.NewDecoder()

			for i, arg := range args {
				word, err := parseWord(arg)
				if err != nil {
					return err
				}

				pc := addr + uint64(i)*4
				l := disasm.Line{Addr: pc, Word: word}

				inst, err := decoder.Decode(word, pc)
				if err != nil {
					l.Text = fmt.Sprintf(".inst 0x%08x", word)
					l.Err = err
					logUnallocated(gs.logger, l)
				} else {
					l.Text = disasm.Print(inst)
				}
				l.Inst = inst

				if err := writeLine(gs.stdout, opts, l); err != nil {
					return err
				}
			}
			return nil
		},
	}

	wordsCmd.Flags().Uint64Var(&addr, "addr", 0, "address of the first word")

	return wordsCmd
}

func parseWord(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid word %q: %w", s, err)
	}
	return uint32(v), nil
}
