package insts

// hintOps maps the CRm:op2 hint number to its named instruction. Numbers not
// listed decode as OpHINT.
var hintOps = map[uint32]Op{
	0:  OpNOP,
	1:  OpYIELD,
	2:  OpWFE,
	3:  OpWFI,
	4:  OpSEV,
	5:  OpSEVL,
	7:  OpXPACLRI,
	8:  OpPACIA1716,
	10: OpPACIB1716,
	12: OpAUTIA1716,
	14: OpAUTIB1716,
	16: OpESB,
	17: OpPSBCSYNC,
	20: OpCSDB,
	24: OpPACIAZ,
	25: OpPACIASP,
	26: OpPACIBZ,
	27: OpPACIBSP,
	28: OpAUTIAZ,
	29: OpAUTIASP,
	30: OpAUTIBZ,
	31: OpAUTIBSP,
}

// decodeSystem decodes hints, barriers, PSTATE access, SYS/SYSL and
// MSR/MRS.
// Format: 1101010100 | L | op0 | op1 | CRn | CRm | op2 | Rt
func (d *Decoder) decodeSystem(word uint32, inst *Instruction) error {
	l := (word >> 21) & 0x1   // bit 21: 1=read
	op0 := (word >> 19) & 0x3 // bits [20:19]
	op1 := (word >> 16) & 0x7 // bits [18:16]
	crn := (word >> 12) & 0xF // bits [15:12]
	crm := (word >> 8) & 0xF  // bits [11:8]
	op2 := (word >> 5) & 0x7  // bits [7:5]
	rt := word & 0x1F         // bits [4:0]

	switch {
	case op0 == 0b00 && l == 1:
		return unallocated("system")
	case op0 == 0b00:
		return d.decodeSystemOp0(op1, crn, crm, op2, rt, inst)
	case op0 == 0b01:
		fields := []Operand{imm8(op1), imm8(crn), imm8(crm), imm8(op2)}
		if l == 0 {
			inst.Op = OpSYS
			inst.Operands = append(fields, GPR(rt, 64))
		} else {
			inst.Op = OpSYSL
			inst.Operands = append([]Operand{GPR(rt, 64)}, fields...)
		}
	default:
		sysreg := SystemRegister{
			Name: sysRegs[sysRegKey(op0, op1, crn, crm, op2)],
			Op0:  uint8(op0),
			Op1:  uint8(op1),
			CRn:  uint8(crn),
			CRm:  uint8(crm),
			Op2:  uint8(op2),
		}
		if l == 0 {
			inst.Op = OpMSRReg
			inst.Operands = []Operand{sysreg, GPR(rt, 64)}
		} else {
			inst.Op = OpMRS
			inst.Operands = []Operand{GPR(rt, 64), sysreg}
		}
	}

	return nil
}

// decodeSystemOp0 decodes the op0 == 00 space: PSTATE writes, hints and
// barriers.
func (d *Decoder) decodeSystemOp0(op1, crn, crm, op2, rt uint32, inst *Instruction) error {
	if rt != 0x1F {
		return nil
	}

	switch crn {
	case 0b0100:
		name, ok := pstateFields[op1<<3|op2]
		if !ok {
			return nil
		}
		inst.Op = OpMSRImm
		inst.Operands = []Operand{
			SystemRegister{Name: name, Op1: uint8(op1), CRn: uint8(crn), Op2: uint8(op2)},
			imm8(crm),
		}
	case 0b0010:
		d.decodeHint(crm<<3|op2, inst)
	case 0b0011:
		return d.decodeBarrier(op2, crm, inst)
	}

	return nil
}

func (d *Decoder) decodeHint(hint uint32, inst *Instruction) {
	if op, ok := hintOps[hint]; ok {
		inst.Op = op
		return
	}

	if hint&^0b110 == 0b100000 {
		// BTI {c|j|jc}
		inst.Op = OpBTI
		inst.Operands = []Operand{imm8((hint >> 1) & 0x3)}
		return
	}

	inst.Op = OpHINT
	inst.Operands = []Operand{imm8(hint)}
}

// decodeBarrier decodes CLREX/DSB/DMB/ISB. The CRm field is the barrier
// option.
func (d *Decoder) decodeBarrier(op2, crm uint32, inst *Instruction) error {
	switch op2 {
	case 0b000:
		return unallocated("barrier")
	case 0b010:
		inst.Op = OpCLREX
	case 0b100:
		inst.Op = OpDSB
	case 0b101:
		inst.Op = OpDMB
	case 0b110:
		inst.Op = OpISB
	default:
		// SB, TCOMMIT and the nXS barriers
		return nil
	}

	inst.Operands = []Operand{imm8(crm)}

	return nil
}
