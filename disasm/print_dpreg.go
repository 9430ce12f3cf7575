package disasm

import (
	"github.com/sarchlab/a64dis/insts"
)

func printDataProc2(inst insts.Instruction) string {
	s := shape{kReg, kReg, kReg}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	return line(canonical(inst),
		FormatRegister(reg(inst, 0)),
		FormatRegister(reg(inst, 1)),
		FormatRegister(reg(inst, 2)))
}

// printDataProc1 renders the bit operations and pointer authentication. The
// zero-modifier PAC/AUT forms print as paciza, autdzb and so on.
func printDataProc1(inst insts.Instruction) string {
	if inst.Op == insts.OpXPACI || inst.Op == insts.OpXPACD {
		s := shape{kReg}
		if !s.fits(inst) {
			return s.fallback(inst)
		}
		return line(canonical(inst), FormatRegister(reg(inst, 0)))
	}

	s := shape{kReg, kReg}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rd, rn := reg(inst, 0), reg(inst, 1)
	name := canonical(inst)

	switch inst.Op {
	case insts.OpPACIA, insts.OpPACIB, insts.OpPACDA, insts.OpPACDB,
		insts.OpAUTIA, insts.OpAUTIB, insts.OpAUTDA, insts.OpAUTDB:
		if isZR(rn) {
			return line(name[:4]+"z"+name[4:], FormatRegister(rd))
		}
	}
	return line(name, FormatRegister(rd), FormatRegister(rn))
}

// printLogicalReg renders the shifted-register logical operations and the
// tst, mov and mvn aliases.
func printLogicalReg(inst insts.Instruction) string {
	s := shape{kReg, kReg, kReg, kShift}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rd, rn, rm := reg(inst, 0), reg(inst, 1), reg(inst, 2)
	sh := inst.Operands[3].(insts.Shift)
	shift := FormatShift(sh)

	switch {
	case inst.Op == insts.OpAND && inst.SetFlags && isZR(rd):
		return line("tst", FormatRegister(rn), FormatRegister(rm), shift)
	case inst.Op == insts.OpORR && isZR(rn) && sh.Type == insts.ShiftNone:
		return line("mov", FormatRegister(rd), FormatRegister(rm))
	case inst.Op == insts.OpORN && isZR(rn):
		return line("mvn", FormatRegister(rd), FormatRegister(rm), shift)
	default:
		return line(canonical(inst), FormatRegister(rd), FormatRegister(rn), FormatRegister(rm), shift)
	}
}

// printAddSubShifted renders ADD/ADDS/SUB/SUBS (shifted register) and the
// cmp, cmn, neg and negs aliases.
func printAddSubShifted(inst insts.Instruction) string {
	s := shape{kReg, kReg, kReg, kShift}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rd, rn, rm := reg(inst, 0), reg(inst, 1), reg(inst, 2)
	shift := FormatShift(inst.Operands[3].(insts.Shift))
	sub := inst.Op == insts.OpSUB

	switch {
	case inst.SetFlags && isZR(rd) && sub:
		return line("cmp", FormatRegister(rn), FormatRegister(rm), shift)
	case inst.SetFlags && isZR(rd):
		return line("cmn", FormatRegister(rn), FormatRegister(rm), shift)
	case sub && isZR(rn):
		name := "neg"
		if inst.SetFlags {
			name = "negs"
		}
		return line(name, FormatRegister(rd), FormatRegister(rm), shift)
	default:
		return line(canonical(inst), FormatRegister(rd), FormatRegister(rn), FormatRegister(rm), shift)
	}
}

// printAddSubExtended renders ADD/ADDS/SUB/SUBS (extended register). When
// the stack pointer is involved the no-op extend of the register width
// prints as lsl.
func printAddSubExtended(inst insts.Instruction) string {
	s := shape{kReg, kReg, kReg, kExtend}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rd, rn, rm := reg(inst, 0), reg(inst, 1), reg(inst, 2)
	ext := inst.Operands[3].(insts.Extend)

	noop := insts.ExtendUXTW
	if rd.Size == 64 {
		noop = insts.ExtendUXTX
	}
	if (isSP(rd) || isSP(rn)) && ext.Type == noop {
		ext.Type = insts.ExtendLSL
	}
	extend := FormatExtend(ext)

	if inst.SetFlags && isZR(rd) {
		name := "cmn"
		if inst.Op == insts.OpSUBExt {
			name = "cmp"
		}
		return line(name, FormatRegister(rn), FormatRegister(rm), extend)
	}
	return line(canonical(inst), FormatRegister(rd), FormatRegister(rn), FormatRegister(rm), extend)
}

func printCarry(inst insts.Instruction) string {
	s := shape{kReg, kReg, kReg}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rd, rn, rm := reg(inst, 0), reg(inst, 1), reg(inst, 2)

	if inst.Op == insts.OpSBC && isZR(rn) {
		name := "ngc"
		if inst.SetFlags {
			name = "ngcs"
		}
		return line(name, FormatRegister(rd), FormatRegister(rm))
	}
	return line(canonical(inst), FormatRegister(rd), FormatRegister(rn), FormatRegister(rm))
}

func printCondCompare(inst insts.Instruction) string {
	s := shape{kReg, kRegOrImm, kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	return line(canonical(inst),
		FormatRegister(reg(inst, 0)),
		FormatOperand(inst.Operands[1]),
		decimal(imm(inst, 2)),
		inst.Cond.String())
}

// printCondSelect renders CSEL/CSINC/CSINV/CSNEG. The aliases print the
// inverse of the encoded condition and never apply to al or nv.
func printCondSelect(inst insts.Instruction) string {
	s := shape{kReg, kReg, kReg}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rd, rn, rm := reg(inst, 0), reg(inst, 1), reg(inst, 2)
	d, n := FormatRegister(rd), FormatRegister(rn)
	inv := inst.Cond.Invert().String()

	if rn == rm && !inst.Cond.Always() {
		switch {
		case inst.Op == insts.OpCSINC && isZR(rn):
			return line("cset", d, inv)
		case inst.Op == insts.OpCSINC:
			return line("cinc", d, n, inv)
		case inst.Op == insts.OpCSINV && isZR(rn):
			return line("csetm", d, inv)
		case inst.Op == insts.OpCSINV:
			return line("cinv", d, n, inv)
		case inst.Op == insts.OpCSNEG:
			return line("cneg", d, n, inv)
		}
	}
	return line(canonical(inst), d, n, FormatRegister(rm), inst.Cond.String())
}

// mulAliases names the multiply-accumulate forms with a zero addend.
var mulAliases = map[insts.Op]string{
	insts.OpMADD:   "mul",
	insts.OpMSUB:   "mneg",
	insts.OpSMADDL: "smull",
	insts.OpSMSUBL: "smnegl",
	insts.OpUMADDL: "umull",
	insts.OpUMSUBL: "umnegl",
}

func printDataProc3(inst insts.Instruction) string {
	if inst.Op == insts.OpSMULH || inst.Op == insts.OpUMULH {
		return printDataProc2(inst)
	}

	s := shape{kReg, kReg, kReg, kReg}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rd, rn, rm, ra := reg(inst, 0), reg(inst, 1), reg(inst, 2), reg(inst, 3)

	if alias, ok := mulAliases[inst.Op]; ok && isZR(ra) {
		return line(alias, FormatRegister(rd), FormatRegister(rn), FormatRegister(rm))
	}
	return line(canonical(inst), FormatRegister(rd), FormatRegister(rn), FormatRegister(rm), FormatRegister(ra))
}
