// Package disasm renders decoded AArch64 instructions as assembly text.
//
// Each encoding family has one handler, a pure function from an
// insts.Instruction to a line of text. Handlers choose the preferred alias
// mnemonic (mov, cmp, tst, lsl, cset, ...) from the operand values and fall
// back to the canonical form otherwise.
//
// Usage:
//
//	text, err := disasm.Disassemble(0x910003E0, 0x1000) // "mov x0, sp"
package disasm

import (
	"io"

	"github.com/sarchlab/a64dis/insts"
)

// handler renders one instruction of a family.
type handler func(insts.Instruction) string

var handlers = map[insts.Format]handler{
	insts.FormatPCRel:              printPCRel,
	insts.FormatDPImm:              printAddSubImm,
	insts.FormatLogicalImm:         printLogicalImm,
	insts.FormatMoveWide:           printMoveWide,
	insts.FormatBitfield:           printBitfield,
	insts.FormatExtract:            printExtract,
	insts.FormatBranchCond:         printBranchCond,
	insts.FormatException:          printException,
	insts.FormatSystem:             printSystem,
	insts.FormatBranchReg:          printBranchReg,
	insts.FormatBranch:             printBranch,
	insts.FormatCompareBranch:      printCompareBranch,
	insts.FormatTestBranch:         printTestBranch,
	insts.FormatLoadStoreExclusive: printLoadStoreExclusive,
	insts.FormatLoadLiteral:        printLoadLiteral,
	insts.FormatLoadStorePair:      printLoadStorePair,
	insts.FormatLoadStore:          printLoadStore,
	insts.FormatDataProc2:          printDataProc2,
	insts.FormatDataProc1:          printDataProc1,
	insts.FormatLogicalReg:         printLogicalReg,
	insts.FormatDPReg:              printAddSubShifted,
	insts.FormatDPExt:              printAddSubExtended,
	insts.FormatCarry:              printCarry,
	insts.FormatCondCompare:        printCondCompare,
	insts.FormatCondSelect:         printCondSelect,
	insts.FormatDataProc3:          printDataProc3,
}

// Print renders inst as one line of assembly with no trailing newline.
// Opcodes outside every family render as UnsupportedInsn.
func Print(inst insts.Instruction) string {
	h, ok := handlers[inst.Op.Format()]
	if !ok {
		return UnsupportedInsn
	}
	return h(inst)
}

// Fprint writes the rendering of inst to w.
func Fprint(w io.Writer, inst insts.Instruction) error {
	_, err := io.WriteString(w, Print(inst))
	return err
}

var decoder = insts.NewDecoder()

// Disassemble decodes and renders a single word. Unallocated words return
// the decoder's error.
func Disassemble(word uint32, addr uint64) (string, error) {
	inst, err := decoder.Decode(word, addr)
	if err != nil {
		return "", err
	}
	return Print(inst), nil
}

func reg(inst insts.Instruction, i int) insts.Register {
	return inst.Operands[i].(insts.Register)
}

func imm(inst insts.Instruction, i int) insts.Immediate {
	return inst.Operands[i].(insts.Immediate)
}

// isZR reports whether r is the zero register.
func isZR(r insts.Register) bool {
	return r.Name == insts.RegXZR
}

func isSP(r insts.Register) bool {
	return r.Name == insts.RegSP
}
