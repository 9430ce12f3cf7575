package disasm

import (
	"github.com/sarchlab/a64dis/insts"
)

func printPCRel(inst insts.Instruction) string {
	s := shape{kReg, kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	return line(canonical(inst), FormatRegister(reg(inst, 0)), FormatSignedImmediate(imm(inst, 1)))
}

// printAddSubImm renders ADD/ADDS/SUB/SUBS (immediate) and the mov, cmp
// and cmn aliases.
func printAddSubImm(inst insts.Instruction) string {
	s := shape{kReg, kReg, kImm, kShift}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rd, rn := reg(inst, 0), reg(inst, 1)
	v := imm(inst, 2)
	sh := inst.Operands[3].(insts.Shift)

	switch {
	case inst.Op == insts.OpADDImm && !inst.SetFlags && v.Value == 0 &&
		sh.Type == insts.ShiftNone && (isSP(rd) || isSP(rn)):
		return line("mov", FormatRegister(rd), FormatRegister(rn))
	case inst.SetFlags && isZR(rd):
		name := "cmn"
		if inst.Op == insts.OpSUBImm {
			name = "cmp"
		}
		return line(name, FormatRegister(rn), FormatImmediate(v), FormatShift(sh))
	default:
		return line(canonical(inst), FormatRegister(rd), FormatRegister(rn),
			FormatImmediate(v), FormatShift(sh))
	}
}

// printLogicalImm renders AND/ORR/EOR/ANDS (immediate) and the tst and mov
// aliases.
func printLogicalImm(inst insts.Instruction) string {
	s := shape{kReg, kReg, kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rd, rn := reg(inst, 0), reg(inst, 1)
	v := FormatImmediate(imm(inst, 2))

	switch {
	case inst.Op == insts.OpANDImm && inst.SetFlags && isZR(rd):
		return line("tst", FormatRegister(rn), v)
	case inst.Op == insts.OpORRImm && isZR(rn) && !moveWideEncodable(imm(inst, 2).Value, rd.Size):
		return line("mov", FormatRegister(rd), v)
	default:
		return line(canonical(inst), FormatRegister(rd), FormatRegister(rn), v)
	}
}

// moveWideEncodable reports whether MOVZ or MOVN can produce value in a
// size-bit register, in which case mov belongs to the move-wide form.
func moveWideEncodable(value uint64, size uint8) bool {
	mask := sizeMask(size)
	for _, v := range []uint64{value & mask, ^value & mask} {
		for shift := uint8(0); shift < size; shift += 16 {
			if v&^(0xFFFF<<shift) == 0 {
				return true
			}
		}
	}
	return false
}

// printMoveWide renders MOVN/MOVZ/MOVK. MOVZ and MOVN print as mov with the
// resulting value, except for the encodings mov does not select.
func printMoveWide(inst insts.Instruction) string {
	s := shape{kReg, kImm, kShift}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rd := reg(inst, 0)
	v := imm(inst, 1)
	sh := inst.Operands[2].(insts.Shift)

	imm16 := v.Value & 0xFFFF
	value := insts.Immediate{Value: imm16 << sh.Count, Size: rd.Size}
	shiftedZero := imm16 == 0 && sh.Count != 0

	switch {
	case inst.Op == insts.OpMOVZ && !shiftedZero:
		return line("mov", FormatRegister(rd), FormatImmediate(value))
	case inst.Op == insts.OpMOVN && !shiftedZero && !(rd.Size == 32 && imm16 == 0xFFFF):
		value.Value = ^value.Value
		return line("mov", FormatRegister(rd), FormatImmediate(value))
	default:
		return line(canonical(inst), FormatRegister(rd), FormatImmediate(v), FormatShift(sh))
	}
}

func small(v uint64) string {
	return FormatImmediate(insts.Immediate{Value: v, Size: 8})
}

// printBitfield renders BFM/SBFM/UBFM through their aliases. The first
// matching rule wins.
func printBitfield(inst insts.Instruction) string {
	s := shape{kReg, kReg, kImm, kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rd, rn := reg(inst, 0), reg(inst, 1)
	immr, imms := imm(inst, 2).Value, imm(inst, 3).Value
	size := uint64(rd.Size)
	d, n := FormatRegister(rd), FormatRegister(rn)

	// insert: lsb = size-immr, width = imms+1
	// extract: lsb = immr, width = imms-immr+1
	insert := imms < immr
	insLSB, insWidth := small(size-immr), small(imms+1)
	extLSB, extWidth := small(immr), small(imms-immr+1)

	switch inst.Op {
	case insts.OpSBFM:
		switch {
		case imms == size-1:
			return line("asr", d, n, small(immr))
		case insert:
			return line("sbfiz", d, n, insLSB, insWidth)
		case immr == 0 && (imms == 7 || imms == 15 || imms == 31):
			name := map[uint64]string{7: "sxtb", 15: "sxth", 31: "sxtw"}[imms]
			return line(name, d, FormatRegister(insts.Register{Name: rn.Name, Size: 32}))
		default:
			return line("sbfx", d, n, extLSB, extWidth)
		}
	case insts.OpUBFM:
		switch {
		case imms != size-1 && imms+1 == immr:
			return line("lsl", d, n, small(size-immr))
		case imms == size-1:
			return line("lsr", d, n, small(immr))
		case insert:
			return line("ubfiz", d, n, insLSB, insWidth)
		case size == 32 && immr == 0 && imms == 7:
			return line("uxtb", d, n)
		case size == 32 && immr == 0 && imms == 15:
			return line("uxth", d, n)
		default:
			return line("ubfx", d, n, extLSB, extWidth)
		}
	default:
		switch {
		case insert && isZR(rn):
			return line("bfc", d, insLSB, insWidth)
		case insert:
			return line("bfi", d, n, insLSB, insWidth)
		default:
			return line("bfxil", d, n, extLSB, extWidth)
		}
	}
}

func printExtract(inst insts.Instruction) string {
	s := shape{kReg, kReg, kReg, kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rd, rn, rm := reg(inst, 0), reg(inst, 1), reg(inst, 2)
	lsb := decimal(imm(inst, 3))

	if rn == rm {
		return line("ror", FormatRegister(rd), FormatRegister(rn), lsb)
	}
	return line(canonical(inst), FormatRegister(rd), FormatRegister(rn), FormatRegister(rm), lsb)
}
