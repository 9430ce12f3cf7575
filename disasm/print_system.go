package disasm

import (
	"fmt"

	"github.com/sarchlab/a64dis/insts"
)

// sysOp identifies a SYS operation by its op1, CRn, CRm and op2 fields.
type sysOp struct {
	op1, crn, crm, op2 uint64
}

// sysAlias is the DC/IC/AT/TLBI spelling of a SYS operation. Operations
// without a register operand only alias when Rt is XZR.
type sysAlias struct {
	name  string
	noReg bool
}

var sysAliases = map[sysOp]sysAlias{
	{0, 7, 6, 1}:  {"dc ivac", false},
	{0, 7, 6, 2}:  {"dc isw", false},
	{0, 7, 10, 2}: {"dc csw", false},
	{0, 7, 14, 2}: {"dc cisw", false},
	{3, 7, 4, 1}:  {"dc zva", false},
	{3, 7, 10, 1}: {"dc cvac", false},
	{3, 7, 11, 1}: {"dc cvau", false},
	{3, 7, 12, 1}: {"dc cvap", false},
	{3, 7, 13, 1}: {"dc cvadp", false},
	{3, 7, 14, 1}: {"dc civac", false},

	{0, 7, 1, 0}: {"ic ialluis", true},
	{0, 7, 5, 0}: {"ic iallu", true},
	{3, 7, 5, 1}: {"ic ivau", false},

	{0, 7, 8, 0}: {"at s1e1r", false},
	{0, 7, 8, 1}: {"at s1e1w", false},
	{0, 7, 8, 2}: {"at s1e0r", false},
	{0, 7, 8, 3}: {"at s1e0w", false},
	{0, 7, 9, 0}: {"at s1e1rp", false},
	{0, 7, 9, 1}: {"at s1e1wp", false},
	{4, 7, 8, 0}: {"at s1e2r", false},
	{4, 7, 8, 1}: {"at s1e2w", false},
	{4, 7, 8, 4}: {"at s12e1r", false},
	{4, 7, 8, 5}: {"at s12e1w", false},
	{4, 7, 8, 6}: {"at s12e0r", false},
	{4, 7, 8, 7}: {"at s12e0w", false},
	{6, 7, 8, 0}: {"at s1e3r", false},
	{6, 7, 8, 1}: {"at s1e3w", false},

	{0, 8, 3, 0}: {"tlbi vmalle1is", true},
	{0, 8, 3, 1}: {"tlbi vae1is", false},
	{0, 8, 3, 2}: {"tlbi aside1is", false},
	{0, 8, 3, 3}: {"tlbi vaae1is", false},
	{0, 8, 3, 5}: {"tlbi vale1is", false},
	{0, 8, 3, 7}: {"tlbi vaale1is", false},
	{0, 8, 7, 0}: {"tlbi vmalle1", true},
	{0, 8, 7, 1}: {"tlbi vae1", false},
	{0, 8, 7, 2}: {"tlbi aside1", false},
	{0, 8, 7, 3}: {"tlbi vaae1", false},
	{0, 8, 7, 5}: {"tlbi vale1", false},
	{0, 8, 7, 7}: {"tlbi vaale1", false},
	{0, 8, 2, 1}: {"tlbi rvae1is", false},
	{0, 8, 2, 3}: {"tlbi rvaae1is", false},
	{0, 8, 2, 5}: {"tlbi rvale1is", false},
	{0, 8, 2, 7}: {"tlbi rvaale1is", false},
	{0, 8, 5, 1}: {"tlbi rvae1os", false},
	{0, 8, 5, 3}: {"tlbi rvaae1os", false},
	{0, 8, 5, 5}: {"tlbi rvale1os", false},
	{0, 8, 5, 7}: {"tlbi rvaale1os", false},
	{0, 8, 6, 1}: {"tlbi rvae1", false},
	{0, 8, 6, 3}: {"tlbi rvaae1", false},
	{0, 8, 6, 5}: {"tlbi rvale1", false},
	{0, 8, 6, 7}: {"tlbi rvaale1", false},
	{4, 8, 0, 1}: {"tlbi ipas2e1is", false},
	{4, 8, 0, 5}: {"tlbi ipas2le1is", false},
	{4, 8, 3, 0}: {"tlbi alle2is", true},
	{4, 8, 3, 1}: {"tlbi vae2is", false},
	{4, 8, 3, 4}: {"tlbi alle1is", true},
	{4, 8, 3, 5}: {"tlbi vale2is", false},
	{4, 8, 3, 6}: {"tlbi vmalls12e1is", true},
	{4, 8, 4, 1}: {"tlbi ipas2e1", false},
	{4, 8, 4, 5}: {"tlbi ipas2le1", false},
	{4, 8, 7, 0}: {"tlbi alle2", true},
	{4, 8, 7, 1}: {"tlbi vae2", false},
	{4, 8, 7, 4}: {"tlbi alle1", true},
	{4, 8, 7, 5}: {"tlbi vale2", false},
	{4, 8, 7, 6}: {"tlbi vmalls12e1", true},
	{4, 8, 0, 2}: {"tlbi ripas2e1is", false},
	{4, 8, 0, 6}: {"tlbi ripas2le1is", false},
	{4, 8, 4, 2}: {"tlbi ripas2e1", false},
	{4, 8, 4, 3}: {"tlbi ripas2e1os", false},
	{4, 8, 4, 6}: {"tlbi ripas2le1", false},
	{4, 8, 4, 7}: {"tlbi ripas2le1os", false},
	{4, 8, 2, 1}: {"tlbi rvae2is", false},
	{4, 8, 2, 5}: {"tlbi rvale2is", false},
	{4, 8, 5, 1}: {"tlbi rvae2os", false},
	{4, 8, 5, 5}: {"tlbi rvale2os", false},
	{4, 8, 6, 1}: {"tlbi rvae2", false},
	{4, 8, 6, 5}: {"tlbi rvale2", false},
	{6, 8, 3, 0}: {"tlbi alle3is", true},
	{6, 8, 3, 1}: {"tlbi vae3is", false},
	{6, 8, 3, 5}: {"tlbi vale3is", false},
	{6, 8, 7, 0}: {"tlbi alle3", true},
	{6, 8, 7, 1}: {"tlbi vae3", false},
	{6, 8, 7, 5}: {"tlbi vale3", false},
	{6, 8, 2, 1}: {"tlbi rvae3is", false},
	{6, 8, 2, 5}: {"tlbi rvale3is", false},
	{6, 8, 5, 1}: {"tlbi rvae3os", false},
	{6, 8, 5, 5}: {"tlbi rvale3os", false},
	{6, 8, 6, 1}: {"tlbi rvae3", false},
	{6, 8, 6, 5}: {"tlbi rvale3", false},
}

var btiTargets = [4]string{"", "c", "j", "jc"}

// printSystem renders hints, barriers, PSTATE and system register access,
// and SYS/SYSL with their cache and TLB maintenance aliases.
func printSystem(inst insts.Instruction) string {
	switch inst.Op {
	case insts.OpSYS:
		return printSys(inst)
	case insts.OpSYSL:
		return printSysl(inst)
	case insts.OpMRS:
		s := shape{kReg, kSysReg}
		if !s.fits(inst) {
			return s.fallback(inst)
		}
		sr := inst.Operands[1].(insts.SystemRegister)
		return line("mrs", FormatRegister(reg(inst, 0)), FormatSystemRegister(sr))
	case insts.OpMSRReg:
		s := shape{kSysReg, kReg}
		if !s.fits(inst) {
			return s.fallback(inst)
		}
		sr := inst.Operands[0].(insts.SystemRegister)
		return line("msr", FormatSystemRegister(sr), FormatRegister(reg(inst, 1)))
	case insts.OpMSRImm:
		s := shape{kSysReg, kImm}
		if !s.fits(inst) {
			return s.fallback(inst)
		}
		sr := inst.Operands[0].(insts.SystemRegister)
		return line("msr", FormatSystemRegister(sr), decimal(imm(inst, 1)))
	case insts.OpHINT, insts.OpBTI, insts.OpCLREX, insts.OpDSB,
		insts.OpDMB, insts.OpISB:
		return printSystemImm(inst)
	}

	s := shape{}
	if !s.fits(inst) {
		return s.fallback(inst)
	}
	return canonical(inst)
}

// printSystemImm renders the hint and barrier forms that carry a single
// immediate.
func printSystemImm(inst insts.Instruction) string {
	s := shape{kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	v := imm(inst, 0)
	n := v.Value & 0xF

	switch inst.Op {
	case insts.OpHINT:
		return line("hint", FormatImmediate(v))
	case insts.OpBTI:
		return line("bti", btiTargets[v.Value&0x3])
	case insts.OpDSB:
		switch n {
		case 0:
			return "ssbb"
		case 4:
			return "pssbb"
		}
		return line("dsb", FormatBarrierOption(v))
	case insts.OpDMB:
		return line("dmb", FormatBarrierOption(v))
	default:
		// ISB and CLREX default to option 15
		if n == 15 {
			return canonical(inst)
		}
		return line(canonical(inst), decimal(v))
	}
}

func sysFields(inst insts.Instruction, from int) (op sysOp, text string) {
	op = sysOp{
		op1: imm(inst, from).Value,
		crn: imm(inst, from+1).Value,
		crm: imm(inst, from+2).Value,
		op2: imm(inst, from+3).Value,
	}
	text = fmt.Sprintf("#%d, C%d, C%d, #%d", op.op1, op.crn, op.crm, op.op2)
	return op, text
}

func printSys(inst insts.Instruction) string {
	s := shape{kImm, kImm, kImm, kImm, kReg}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	op, fields := sysFields(inst, 0)
	rt := reg(inst, 4)

	if alias, ok := sysAliases[op]; ok {
		switch {
		case !alias.noReg:
			return line(alias.name, FormatRegister(rt))
		case isZR(rt):
			return alias.name
		}
	}

	if isZR(rt) {
		return line("sys", fields)
	}
	return line("sys", fields, FormatRegister(rt))
}

func printSysl(inst insts.Instruction) string {
	s := shape{kReg, kImm, kImm, kImm, kImm}
	if !s.fits(inst) {
		return s.fallback(inst)
	}

	_, fields := sysFields(inst, 1)
	return line("sysl", FormatRegister(reg(inst, 0)), fields)
}
