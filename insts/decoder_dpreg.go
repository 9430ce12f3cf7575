package insts

// decodeDataProcessingReg decodes the data processing (register) class.
// op0 is bit 30, op1 bit 28, op2 bits [24:21] and op3 bits [15:10].
func (d *Decoder) decodeDataProcessingReg(word uint32, inst *Instruction) error {
	op0 := (word >> 30) & 0x1  // bit 30
	op1 := (word >> 28) & 0x1  // bit 28
	op2 := (word >> 21) & 0xF  // bits [24:21]
	op3 := (word >> 10) & 0x3F // bits [15:10]

	if op1 == 0 {
		switch {
		case op2&0b1000 == 0:
			return d.decodeLogicalReg(word, inst)
		case op2&0b0001 == 0:
			return d.decodeAddSubShifted(word, inst)
		default:
			return d.decodeAddSubExtended(word, inst)
		}
	}

	switch {
	case op2 == 0b0110 && op0 == 0:
		return d.decodeDataProc2(word, inst)
	case op2 == 0b0110:
		return d.decodeDataProc1(word, inst)
	case op2 == 0b0000 && op3 == 0:
		d.decodeCarry(word, inst)
		return nil
	case op2 == 0b0000:
		// RMIF, SETF8/16
		return nil
	case op2 == 0b0010:
		return d.decodeCondCompare(word, inst)
	case op2 == 0b0100:
		return d.decodeCondSelect(word, inst)
	case op2&0b1000 != 0:
		return d.decodeDataProc3(word, inst)
	default:
		return unallocated("data-processing register")
	}
}

// logicalRegOps is indexed by opc:N.
var logicalRegOps = [8]Op{OpAND, OpBIC, OpORR, OpORN, OpEOR, OpEON, OpAND, OpBIC}

// decodeLogicalReg decodes logical (shifted register) instructions.
// Format: sf | opc | 01010 | shift | N | Rm | imm6 | Rn | Rd
func (d *Decoder) decodeLogicalReg(word uint32, inst *Instruction) error {
	sf := (word >> 31) & 0x1    // bit 31
	opc := (word >> 29) & 0x3   // bits [30:29]
	shift := (word >> 22) & 0x3 // bits [23:22]
	n := (word >> 21) & 0x1     // bit 21: invert Rm
	rm := (word >> 16) & 0x1F   // bits [20:16]
	imm6 := (word >> 10) & 0x3F // bits [15:10]
	rn := (word >> 5) & 0x1F    // bits [9:5]
	rd := word & 0x1F           // bits [4:0]

	if sf == 0 && imm6 >= 32 {
		return unallocated("logical register")
	}

	size := regSize(sf)

	inst.Op = logicalRegOps[opc<<1|n]
	inst.SetFlags = opc == 0b11 // ANDS, BICS
	inst.Operands = []Operand{
		GPR(rd, size),
		GPR(rn, size),
		GPR(rm, size),
		registerShift(shift, imm6),
	}

	return nil
}

// registerShift returns the shift applied to a shifted-register operand.
// LSL #0 is no shift.
func registerShift(shift, amount uint32) Shift {
	if shift == 0 && amount == 0 {
		return Shift{}
	}
	return Shift{Type: ShiftLSL + ShiftType(shift), Count: uint8(amount)}
}

// decodeAddSubShifted decodes ADD/ADDS/SUB/SUBS (shifted register).
// Format: sf | op | S | 01011 | shift | 0 | Rm | imm6 | Rn | Rd
func (d *Decoder) decodeAddSubShifted(word uint32, inst *Instruction) error {
	sf := (word >> 31) & 0x1    // bit 31
	op := (word >> 30) & 0x1    // bit 30: 0=ADD, 1=SUB
	s := (word >> 29) & 0x1     // bit 29
	shift := (word >> 22) & 0x3 // bits [23:22]
	rm := (word >> 16) & 0x1F   // bits [20:16]
	imm6 := (word >> 10) & 0x3F // bits [15:10]
	rn := (word >> 5) & 0x1F    // bits [9:5]
	rd := word & 0x1F           // bits [4:0]

	if shift == 0b11 || (sf == 0 && imm6 >= 32) {
		return unallocated("add/subtract shifted register")
	}

	size := regSize(sf)

	inst.Op = OpADD
	if op == 1 {
		inst.Op = OpSUB
	}
	inst.SetFlags = s == 1
	inst.Operands = []Operand{
		GPR(rd, size),
		GPR(rn, size),
		GPR(rm, size),
		registerShift(shift, imm6),
	}

	return nil
}

// decodeAddSubExtended decodes ADD/ADDS/SUB/SUBS (extended register).
// Format: sf | op | S | 01011 | opt | 1 | Rm | option | imm3 | Rn | Rd
func (d *Decoder) decodeAddSubExtended(word uint32, inst *Instruction) error {
	sf := (word >> 31) & 0x1     // bit 31
	op := (word >> 30) & 0x1     // bit 30: 0=ADD, 1=SUB
	s := (word >> 29) & 0x1      // bit 29
	opt := (word >> 22) & 0x3    // bits [23:22]
	rm := (word >> 16) & 0x1F    // bits [20:16]
	option := (word >> 13) & 0x7 // bits [15:13]
	imm3 := (word >> 10) & 0x7   // bits [12:10]
	rn := (word >> 5) & 0x1F     // bits [9:5]
	rd := word & 0x1F            // bits [4:0]

	if opt != 0 || imm3 > 4 {
		return unallocated("add/subtract extended register")
	}

	size := regSize(sf)

	inst.Op = OpADDExt
	if op == 1 {
		inst.Op = OpSUBExt
	}
	inst.SetFlags = s == 1

	dst := GPROrSP(rd, size)
	if inst.SetFlags {
		dst = GPR(rd, size)
	}

	// Xm only for UXTX/SXTX in the 64-bit form
	msize := uint8(32)
	if sf == 1 && option&0b011 == 0b011 {
		msize = 64
	}

	inst.Operands = []Operand{
		dst,
		GPROrSP(rn, size),
		GPR(rm, msize),
		Extend{Type: ExtendUXTB + ExtendType(option), Count: uint8(imm3)},
	}

	return nil
}

// decodeCarry decodes ADC/ADCS/SBC/SBCS.
// Format: sf | op | S | 11010000 | Rm | 000000 | Rn | Rd
func (d *Decoder) decodeCarry(word uint32, inst *Instruction) {
	sf := (word >> 31) & 0x1  // bit 31
	op := (word >> 30) & 0x1  // bit 30: 0=ADC, 1=SBC
	s := (word >> 29) & 0x1   // bit 29
	rm := (word >> 16) & 0x1F // bits [20:16]
	rn := (word >> 5) & 0x1F  // bits [9:5]
	rd := word & 0x1F         // bits [4:0]

	size := regSize(sf)

	inst.Op = OpADC
	if op == 1 {
		inst.Op = OpSBC
	}
	inst.SetFlags = s == 1
	inst.Operands = []Operand{GPR(rd, size), GPR(rn, size), GPR(rm, size)}
}

// decodeCondCompare decodes CCMN/CCMP (register and immediate).
// Format: sf | op | 1 | 11010010 | Rm/imm5 | cond | imm | o2 | Rn | o3 | nzcv
func (d *Decoder) decodeCondCompare(word uint32, inst *Instruction) error {
	sf := (word >> 31) & 0x1    // bit 31
	op := (word >> 30) & 0x1    // bit 30: 0=CCMN, 1=CCMP
	s := (word >> 29) & 0x1     // bit 29
	rm := (word >> 16) & 0x1F   // bits [20:16]
	cond := (word >> 12) & 0xF  // bits [15:12]
	isImm := (word >> 11) & 0x1 // bit 11
	o2 := (word >> 10) & 0x1    // bit 10
	rn := (word >> 5) & 0x1F    // bits [9:5]
	o3 := (word >> 4) & 0x1     // bit 4
	nzcv := word & 0xF          // bits [3:0]

	if s == 0 || o2 == 1 || o3 == 1 {
		return unallocated("conditional compare")
	}

	size := regSize(sf)

	inst.Op = OpCCMN
	if op == 1 {
		inst.Op = OpCCMP
	}
	inst.Cond = Cond(cond)

	var second Operand = GPR(rm, size)
	if isImm == 1 {
		second = imm8(rm)
	}
	inst.Operands = []Operand{GPR(rn, size), second, imm8(nzcv)}

	return nil
}

// decodeCondSelect decodes CSEL/CSINC/CSINV/CSNEG.
// Format: sf | op | S | 11010100 | Rm | cond | op2 | Rn | Rd
func (d *Decoder) decodeCondSelect(word uint32, inst *Instruction) error {
	sf := (word >> 31) & 0x1   // bit 31
	op := (word >> 30) & 0x1   // bit 30
	s := (word >> 29) & 0x1    // bit 29
	rm := (word >> 16) & 0x1F  // bits [20:16]
	cond := (word >> 12) & 0xF // bits [15:12]
	op2 := (word >> 10) & 0x3  // bits [11:10]
	rn := (word >> 5) & 0x1F   // bits [9:5]
	rd := word & 0x1F          // bits [4:0]

	if s == 1 || op2 >= 2 {
		return unallocated("conditional select")
	}

	size := regSize(sf)

	inst.Op = [4]Op{OpCSEL, OpCSINC, OpCSINV, OpCSNEG}[op<<1|op2]
	inst.Cond = Cond(cond)
	inst.Operands = []Operand{GPR(rd, size), GPR(rn, size), GPR(rm, size)}

	return nil
}

// decodeDataProc3 decodes the multiply-accumulate instructions.
// Format: sf | op54 | 11011 | op31 | Rm | o0 | Ra | Rn | Rd
func (d *Decoder) decodeDataProc3(word uint32, inst *Instruction) error {
	sf := (word >> 31) & 0x1   // bit 31
	op54 := (word >> 29) & 0x3 // bits [30:29]
	op31 := (word >> 21) & 0x7 // bits [23:21]
	rm := (word >> 16) & 0x1F  // bits [20:16]
	o0 := (word >> 15) & 0x1   // bit 15
	ra := (word >> 10) & 0x1F  // bits [14:10]
	rn := (word >> 5) & 0x1F   // bits [9:5]
	rd := word & 0x1F          // bits [4:0]

	if op54 != 0 || (sf == 0 && op31 != 0) {
		return unallocated("data-processing 3 source")
	}

	size := regSize(sf)

	switch op31<<1 | o0 {
	case 0b000_0:
		inst.Op = OpMADD
	case 0b000_1:
		inst.Op = OpMSUB
	case 0b001_0:
		inst.Op = OpSMADDL
	case 0b001_1:
		inst.Op = OpSMSUBL
	case 0b010_0:
		inst.Op = OpSMULH
	case 0b101_0:
		inst.Op = OpUMADDL
	case 0b101_1:
		inst.Op = OpUMSUBL
	case 0b110_0:
		inst.Op = OpUMULH
	default:
		return unallocated("data-processing 3 source")
	}

	switch inst.Op {
	case OpMADD, OpMSUB:
		inst.Operands = []Operand{GPR(rd, size), GPR(rn, size), GPR(rm, size), GPR(ra, size)}
	case OpSMULH, OpUMULH:
		inst.Operands = []Operand{GPR(rd, 64), GPR(rn, 64), GPR(rm, 64)}
	default:
		// widening: Xd = Xa +/- Wn * Wm
		inst.Operands = []Operand{GPR(rd, 64), GPR(rn, 32), GPR(rm, 32), GPR(ra, 64)}
	}

	return nil
}

// dataProc2Ops maps the 2-source opcode field to its instruction.
var dataProc2Ops = map[uint32]Op{
	0b000010: OpUDIV,
	0b000011: OpSDIV,
	0b001000: OpLSLV,
	0b001001: OpLSRV,
	0b001010: OpASRV,
	0b001011: OpRORV,
	0b001100: OpPACGA,
	0b010000: OpCRC32B,
	0b010001: OpCRC32H,
	0b010010: OpCRC32W,
	0b010011: OpCRC32X,
	0b010100: OpCRC32CB,
	0b010101: OpCRC32CH,
	0b010110: OpCRC32CW,
	0b010111: OpCRC32CX,
}

// decodeDataProc2 decodes the 2-source instructions.
// Format: sf | 0 | S | 11010110 | Rm | opcode | Rn | Rd
func (d *Decoder) decodeDataProc2(word uint32, inst *Instruction) error {
	sf := (word >> 31) & 0x1      // bit 31
	s := (word >> 29) & 0x1       // bit 29
	rm := (word >> 16) & 0x1F     // bits [20:16]
	opcode := (word >> 10) & 0x3F // bits [15:10]
	rn := (word >> 5) & 0x1F      // bits [9:5]
	rd := word & 0x1F             // bits [4:0]

	if sf == 1 && opcode == 0b000000 {
		// SUBP, SUBPS
		return nil
	}
	if s == 0 && sf == 1 && (opcode == 0b000100 || opcode == 0b000101) {
		// IRG, GMI
		return nil
	}

	op, ok := dataProc2Ops[opcode]
	if !ok || s == 1 {
		return unallocated("data-processing 2 source")
	}

	size := regSize(sf)

	switch op {
	case OpPACGA:
		if sf == 0 {
			return unallocated("data-processing 2 source")
		}
		inst.Operands = []Operand{GPR(rd, 64), GPR(rn, 64), GPROrSP(rm, 64)}
	case OpCRC32X, OpCRC32CX:
		if sf == 0 {
			return unallocated("data-processing 2 source")
		}
		inst.Operands = []Operand{GPR(rd, 32), GPR(rn, 32), GPR(rm, 64)}
	case OpCRC32B, OpCRC32H, OpCRC32W, OpCRC32CB, OpCRC32CH, OpCRC32CW:
		if sf == 1 {
			return unallocated("data-processing 2 source")
		}
		inst.Operands = []Operand{GPR(rd, 32), GPR(rn, 32), GPR(rm, 32)}
	default:
		inst.Operands = []Operand{GPR(rd, size), GPR(rn, size), GPR(rm, size)}
	}

	inst.Op = op

	return nil
}

// pacOps is indexed by the low three bits of the 1-source pointer
// authentication opcode.
var pacOps = [8]Op{OpPACIA, OpPACIB, OpPACDA, OpPACDB, OpAUTIA, OpAUTIB, OpAUTDA, OpAUTDB}

// decodeDataProc1 decodes the 1-source instructions.
// Format: sf | 1 | S | 11010110 | opcode2 | opcode | Rn | Rd
func (d *Decoder) decodeDataProc1(word uint32, inst *Instruction) error {
	sf := (word >> 31) & 0x1       // bit 31
	s := (word >> 29) & 0x1        // bit 29
	opcode2 := (word >> 16) & 0x1F // bits [20:16]
	opcode := (word >> 10) & 0x3F  // bits [15:10]
	rn := (word >> 5) & 0x1F       // bits [9:5]
	rd := word & 0x1F              // bits [4:0]

	if s == 1 {
		return unallocated("data-processing 1 source")
	}

	switch {
	case opcode2 == 0b00000:
		return d.decodeBitOps(sf, opcode, rn, rd, inst)
	case opcode2 == 0b00001 && sf == 1:
		return d.decodePointerAuth(opcode, rn, rd, inst)
	default:
		return unallocated("data-processing 1 source")
	}
}

// decodeBitOps decodes RBIT/REV16/REV32/REV/CLZ/CLS.
func (d *Decoder) decodeBitOps(sf, opcode, rn, rd uint32, inst *Instruction) error {
	switch {
	case opcode == 0b000000:
		inst.Op = OpRBIT
	case opcode == 0b000001:
		inst.Op = OpREV16
	case opcode == 0b000010 && sf == 0:
		inst.Op = OpREV
	case opcode == 0b000010:
		inst.Op = OpREV32
	case opcode == 0b000011 && sf == 1:
		inst.Op = OpREV
	case opcode == 0b000100:
		inst.Op = OpCLZ
	case opcode == 0b000101:
		inst.Op = OpCLS
	default:
		return unallocated("data-processing 1 source")
	}

	size := regSize(sf)
	inst.Operands = []Operand{GPR(rd, size), GPR(rn, size)}

	return nil
}

// decodePointerAuth decodes PAC*/AUT* and XPACI/XPACD. The zero-modifier
// forms require Rn == 11111 and carry XZR as their modifier operand.
func (d *Decoder) decodePointerAuth(opcode, rn, rd uint32, inst *Instruction) error {
	switch {
	case opcode < 0b001000:
		inst.Op = pacOps[opcode]
		inst.Operands = []Operand{GPR(rd, 64), GPROrSP(rn, 64)}
	case opcode < 0b010000 && rn == 0x1F:
		inst.Op = pacOps[opcode&0x7]
		inst.Operands = []Operand{GPR(rd, 64), Register{Name: RegXZR, Size: 64}}
	case opcode == 0b010000 && rn == 0x1F:
		inst.Op = OpXPACI
		inst.Operands = []Operand{GPR(rd, 64)}
	case opcode == 0b010001 && rn == 0x1F:
		inst.Op = OpXPACD
		inst.Operands = []Operand{GPR(rd, 64)}
	default:
		return unallocated("data-processing 1 source")
	}

	return nil
}
