package disasm

import (
	"github.com/sarchlab/a64dis/insts"
)

func printBranchCond(inst insts.Instruction) string {
	s := shape{kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	return line(canonical(inst), FormatSignedImmediate(imm(inst, 0)))
}

// printException renders SVC/HVC/SMC/BRK/HLT/DCPSn. DCPSn omit a zero
// immediate.
func printException(inst insts.Instruction) string {
	s := shape{kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	v := imm(inst, 0)
	switch inst.Op {
	case insts.OpDCPS1, insts.OpDCPS2, insts.OpDCPS3:
		if v.Value == 0 {
			return canonical(inst)
		}
	}
	return line(canonical(inst), decimal(v))
}

func printBranchReg(inst insts.Instruction) string {
	switch inst.Op {
	case insts.OpBRAA, insts.OpBRAB, insts.OpBLRAA, insts.OpBLRAB:
		s := shape{kReg, kReg}
		if !s.fits(inst) {
			return s.fallback(inst)
		}
		return line(canonical(inst), FormatRegister(reg(inst, 0)), FormatRegister(reg(inst, 1)))
	case insts.OpRETAA, insts.OpRETAB, insts.OpERET, insts.OpERETAA,
		insts.OpERETAB, insts.OpDRPS:
		s := shape{}
		if !s.fits(inst) {
			return s.fallback(inst)
		}
		return canonical(inst)
	}

	s := shape{kReg}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	rn := reg(inst, 0)
	if inst.Op == insts.OpRET && rn.Name == insts.RegX30 {
		return "ret"
	}
	return line(canonical(inst), FormatRegister(rn))
}

func printBranch(inst insts.Instruction) string {
	s := shape{kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	return line(canonical(inst), FormatSignedImmediate(imm(inst, 0)))
}

func printCompareBranch(inst insts.Instruction) string {
	s := shape{kReg, kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	return line(canonical(inst), FormatRegister(reg(inst, 0)), FormatSignedImmediate(imm(inst, 1)))
}

func printTestBranch(inst insts.Instruction) string {
	s := shape{kReg, kImm, kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	return line(canonical(inst),
		FormatRegister(reg(inst, 0)),
		decimal(imm(inst, 1)),
		FormatSignedImmediate(imm(inst, 2)))
}
