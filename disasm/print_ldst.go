package disasm

import (
	"github.com/sarchlab/a64dis/insts"
)

// accessSize returns the memory access width of an address operand.
func accessSize(op insts.Operand) uint8 {
	switch a := op.(type) {
	case insts.ImmediateOffset:
		return a.Size
	case insts.RegisterOffset:
		return a.Size
	default:
		return 0
	}
}

// sizeSuffix returns the mnemonic suffix for an access width: b and h for
// byte and halfword, w for a sign-extending word load.
func sizeSuffix(size uint8, signed bool) string {
	switch {
	case size == 8:
		return "b"
	case size == 16:
		return "h"
	case size == 32 && signed:
		return "w"
	default:
		return ""
	}
}

// exclusiveRegs is the number of register operands before the address.
var exclusiveRegs = map[insts.Op]int{
	insts.OpSTXR:  2,
	insts.OpSTLXR: 2,
	insts.OpSTXP:  3,
	insts.OpSTLXP: 3,
	insts.OpLDXP:  2,
	insts.OpLDAXP: 2,
}

func printLoadStoreExclusive(inst insts.Instruction) string {
	n, ok := exclusiveRegs[inst.Op]
	if !ok {
		n = 1
	}

	s := make(shape, 0, n+1)
	for i := 0; i < n; i++ {
		s = append(s, kReg)
	}
	s = append(s, kImmOff)
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	name := canonical(inst)
	switch inst.Op {
	case insts.OpSTXP, insts.OpSTLXP, insts.OpLDXP, insts.OpLDAXP:
	default:
		name += sizeSuffix(accessSize(inst.Operands[n]), false)
	}

	parts := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		parts = append(parts, FormatRegister(reg(inst, i)))
	}
	parts = append(parts, FormatOperand(inst.Operands[n]))

	return line(name, parts...)
}

func printLoadLiteral(inst insts.Instruction) string {
	if inst.Op == insts.OpPRFMLit {
		s := shape{kImm, kImm}
		if !s.fits(inst) {
			return s.fallback(inst)
		}
		return line("prfm", FormatPrefetchOp(imm(inst, 0)), FormatSignedImmediate(imm(inst, 1)))
	}

	s := shape{kReg, kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	return line(canonical(inst), FormatRegister(reg(inst, 0)), FormatSignedImmediate(imm(inst, 1)))
}

func printLoadStorePair(inst insts.Instruction) string {
	s := shape{kReg, kReg, kImmOff}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	return line(canonical(inst),
		FormatRegister(reg(inst, 0)),
		FormatRegister(reg(inst, 1)),
		FormatOperand(inst.Operands[2]))
}

// printLoadStore renders the single-register transfers. The access width
// selects the b/h/w suffix.
func printLoadStore(inst insts.Instruction) string {
	switch inst.Op {
	case insts.OpPRFM, insts.OpPRFUM:
		s := shape{kImm, kAddr}
		if !s.fits(inst) {
			return s.fallback(inst)
		}
		return line(canonical(inst), FormatPrefetchOp(imm(inst, 0)), FormatOperand(inst.Operands[1]))
	}

	s := shape{kReg, kAddr}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	signed := inst.Op == insts.OpLDRS || inst.Op == insts.OpLDURS || inst.Op == insts.OpLDTRS
	name := canonical(inst) + sizeSuffix(accessSize(inst.Operands[1]), signed)

	return line(name, FormatRegister(reg(inst, 0)), FormatOperand(inst.Operands[1]))
}
