package insts

// decodeBranchSystem decodes the branches, exception generation and system
// instruction class.
func (d *Decoder) decodeBranchSystem(word uint32, inst *Instruction) error {
	switch {
	case word&0xFE000000 == 0x54000000:
		return d.decodeBranchCond(word, inst)
	case word&0xFF000000 == 0xD4000000:
		return d.decodeException(word, inst)
	case word&0xFFC00000 == 0xD5000000:
		return d.decodeSystem(word, inst)
	case word&0xFE000000 == 0xD6000000:
		return d.decodeBranchReg(word, inst)
	case word&0x7C000000 == 0x14000000:
		d.decodeBranchImm(word, inst)
		return nil
	case word&0x7E000000 == 0x34000000:
		d.decodeCompareBranch(word, inst)
		return nil
	case word&0x7E000000 == 0x36000000:
		d.decodeTestBranch(word, inst)
		return nil
	default:
		return unallocated("branch")
	}
}

// decodeBranchCond decodes conditional branch instructions.
// Format: 0101010 | o1 | imm19 | o0 | cond
func (d *Decoder) decodeBranchCond(word uint32, inst *Instruction) error {
	o1 := (word >> 24) & 0x1       // bit 24
	imm19 := (word >> 5) & 0x7FFFF // bits [23:5]
	o0 := (word >> 4) & 0x1        // bit 4: BC.cond
	cond := word & 0xF             // bits [3:0]

	if o1 == 1 {
		return unallocated("conditional branch")
	}
	if o0 == 1 {
		return nil
	}

	inst.Op = OpBCond
	inst.Cond = Cond(cond)
	inst.Operands = []Operand{offset(imm19<<2, 21)}

	return nil
}

// decodeException decodes SVC/HVC/SMC/BRK/HLT/DCPSn.
// Format: 11010100 | opc | imm16 | op2 | LL
func (d *Decoder) decodeException(word uint32, inst *Instruction) error {
	opc := (word >> 21) & 0x7     // bits [23:21]
	imm16 := (word >> 5) & 0xFFFF // bits [20:5]
	op2 := (word >> 2) & 0x7      // bits [4:2]
	ll := word & 0x3              // bits [1:0]

	if op2 != 0 {
		return unallocated("exception")
	}

	switch opc<<2 | ll {
	case 0b000_01:
		inst.Op = OpSVC
	case 0b000_10:
		inst.Op = OpHVC
	case 0b000_11:
		inst.Op = OpSMC
	case 0b001_00:
		inst.Op = OpBRK
	case 0b010_00:
		inst.Op = OpHLT
	case 0b011_00:
		// TCANCEL
		return nil
	case 0b101_01:
		inst.Op = OpDCPS1
	case 0b101_10:
		inst.Op = OpDCPS2
	case 0b101_11:
		inst.Op = OpDCPS3
	default:
		return unallocated("exception")
	}

	inst.Operands = []Operand{Immediate{Value: uint64(imm16), Size: 16}}

	return nil
}

// decodeBranchReg decodes unconditional branch (register) instructions.
// Format: 1101011 | opc | op2 | op3 | Rn | op4
func (d *Decoder) decodeBranchReg(word uint32, inst *Instruction) error {
	opc := (word >> 21) & 0xF  // bits [24:21]
	op2 := (word >> 16) & 0x1F // bits [20:16]
	op3 := (word >> 10) & 0x3F // bits [15:10]
	rn := (word >> 5) & 0x1F   // bits [9:5]
	op4 := word & 0x1F         // bits [4:0]

	if op2 != 0x1F {
		return unallocated("branch register")
	}

	target := []Operand{GPR(rn, 64)}

	switch {
	case opc <= 0b0010 && op3 == 0 && op4 == 0:
		// BR, BLR, RET
		inst.Op = [...]Op{OpBR, OpBLR, OpRET}[opc]
		inst.Operands = target
	case opc <= 0b0001 && (op3 == 0b000010 || op3 == 0b000011) && op4 == 0x1F:
		inst.Op = [2][2]Op{{OpBRAAZ, OpBRABZ}, {OpBLRAAZ, OpBLRABZ}}[opc][op3&1]
		inst.Operands = target
	case opc == 0b0010 && (op3 == 0b000010 || op3 == 0b000011) && rn == 0x1F && op4 == 0x1F:
		inst.Op = [2]Op{OpRETAA, OpRETAB}[op3&1]
	case opc == 0b0100 && op3 == 0 && rn == 0x1F && op4 == 0:
		inst.Op = OpERET
	case opc == 0b0100 && (op3 == 0b000010 || op3 == 0b000011) && rn == 0x1F && op4 == 0x1F:
		inst.Op = [2]Op{OpERETAA, OpERETAB}[op3&1]
	case opc == 0b0101 && op3 == 0 && rn == 0x1F && op4 == 0:
		inst.Op = OpDRPS
	case (opc == 0b1000 || opc == 0b1001) && (op3 == 0b000010 || op3 == 0b000011):
		inst.Op = [2][2]Op{{OpBRAA, OpBRAB}, {OpBLRAA, OpBLRAB}}[opc&1][op3&1]
		inst.Operands = []Operand{GPR(rn, 64), GPROrSP(op4, 64)}
	default:
		return unallocated("branch register")
	}

	return nil
}

// decodeBranchImm decodes B and BL instructions.
// Format: op | 00101 | imm26
func (d *Decoder) decodeBranchImm(word uint32, inst *Instruction) {
	op := (word >> 31) & 0x1  // bit 31: 0=B, 1=BL
	imm26 := word & 0x3FFFFFF // bits [25:0]

	inst.Op = OpB
	if op == 1 {
		inst.Op = OpBL
	}
	inst.Operands = []Operand{offset(imm26<<2, 28)}
}

// decodeCompareBranch decodes CBZ and CBNZ.
// Format: sf | 011010 | op | imm19 | Rt
func (d *Decoder) decodeCompareBranch(word uint32, inst *Instruction) {
	sf := (word >> 31) & 0x1       // bit 31
	op := (word >> 24) & 0x1       // bit 24: 0=CBZ, 1=CBNZ
	imm19 := (word >> 5) & 0x7FFFF // bits [23:5]
	rt := word & 0x1F              // bits [4:0]

	inst.Op = OpCBZ
	if op == 1 {
		inst.Op = OpCBNZ
	}
	inst.Operands = []Operand{GPR(rt, regSize(sf)), offset(imm19<<2, 21)}
}

// decodeTestBranch decodes TBZ and TBNZ.
// Format: b5 | 011011 | op | b40 | imm14 | Rt
func (d *Decoder) decodeTestBranch(word uint32, inst *Instruction) {
	b5 := (word >> 31) & 0x1      // bit 31
	op := (word >> 24) & 0x1      // bit 24: 0=TBZ, 1=TBNZ
	b40 := (word >> 19) & 0x1F    // bits [23:19]
	imm14 := (word >> 5) & 0x3FFF // bits [18:5]
	rt := word & 0x1F             // bits [4:0]

	inst.Op = OpTBZ
	if op == 1 {
		inst.Op = OpTBNZ
	}
	inst.Operands = []Operand{
		GPR(rt, regSize(b5)),
		imm8(b5<<5 | b40),
		offset(imm14<<2, 16),
	}
}
