package insts

import "math/bits"

// decodeDataProcessingImm decodes the data processing (immediate) class.
// op1 is bits [25:23].
func (d *Decoder) decodeDataProcessingImm(word uint32, inst *Instruction) error {
	op1 := (word >> 23) & 0x7 // bits [25:23]

	switch op1 {
	case 0b000, 0b001:
		d.decodePCRel(word, inst)
		return nil
	case 0b010:
		d.decodeAddSubImm(word, inst)
		return nil
	case 0b011:
		// Add/subtract (immediate, with tags)
		return nil
	case 0b100:
		return d.decodeLogicalImm(word, inst)
	case 0b101:
		return d.decodeMoveWide(word, inst)
	case 0b110:
		return d.decodeBitfield(word, inst)
	default:
		return d.decodeExtract(word, inst)
	}
}

// decodePCRel decodes ADR and ADRP.
// Format: op | immlo | 10000 | immhi | Rd
func (d *Decoder) decodePCRel(word uint32, inst *Instruction) {
	op := (word >> 31) & 0x1       // bit 31: 0=ADR, 1=ADRP
	immlo := (word >> 29) & 0x3    // bits [30:29]
	immhi := (word >> 5) & 0x7FFFF // bits [23:5]
	rd := word & 0x1F              // bits [4:0]

	imm := offset(immhi<<2|immlo, 21)

	inst.Op = OpADR
	if op == 1 {
		inst.Op = OpADRP
		imm.Value <<= 12
	}

	inst.Operands = []Operand{GPR(rd, 64), imm}
}

// decodeAddSubImm decodes ADD/ADDS/SUB/SUBS (immediate).
// Format: sf | op | S | 100010 | sh | imm12 | Rn | Rd
func (d *Decoder) decodeAddSubImm(word uint32, inst *Instruction) {
	sf := (word >> 31) & 0x1      // bit 31: 1=64-bit, 0=32-bit
	op := (word >> 30) & 0x1      // bit 30: 0=ADD, 1=SUB
	s := (word >> 29) & 0x1       // bit 29: 1=set flags
	sh := (word >> 22) & 0x1      // bit 22: LSL #12
	imm12 := (word >> 10) & 0xFFF // bits [21:10]
	rn := (word >> 5) & 0x1F      // bits [9:5]
	rd := word & 0x1F             // bits [4:0]

	size := regSize(sf)

	inst.Op = OpADDImm
	if op == 1 {
		inst.Op = OpSUBImm
	}
	inst.SetFlags = s == 1

	dst := GPROrSP(rd, size)
	if inst.SetFlags {
		dst = GPR(rd, size)
	}

	inst.Operands = []Operand{
		dst,
		GPROrSP(rn, size),
		Immediate{Value: uint64(imm12), Size: size},
		lslShift(sh * 12),
	}
}

// decodeLogicalImm decodes AND/ORR/EOR/ANDS (immediate).
// Format: sf | opc | 100100 | N | immr | imms | Rn | Rd
func (d *Decoder) decodeLogicalImm(word uint32, inst *Instruction) error {
	sf := (word >> 31) & 0x1    // bit 31
	opc := (word >> 29) & 0x3   // bits [30:29]
	n := (word >> 22) & 0x1     // bit 22
	immr := (word >> 16) & 0x3F // bits [21:16]
	imms := (word >> 10) & 0x3F // bits [15:10]
	rn := (word >> 5) & 0x1F    // bits [9:5]
	rd := word & 0x1F           // bits [4:0]

	if sf == 0 && n == 1 {
		return unallocated("logical immediate")
	}

	size := regSize(sf)

	mask, ok := decodeBitMasks(n, imms, immr, uint(size))
	if !ok {
		return unallocated("logical immediate")
	}

	dst := GPROrSP(rd, size)

	switch opc {
	case 0b00:
		inst.Op = OpANDImm
	case 0b01:
		inst.Op = OpORRImm
	case 0b10:
		inst.Op = OpEORImm
	case 0b11:
		inst.Op = OpANDImm
		inst.SetFlags = true // ANDS
		dst = GPR(rd, size)
	}

	inst.Operands = []Operand{
		dst,
		GPR(rn, size),
		Immediate{Value: mask, Size: size},
	}

	return nil
}

// decodeBitMasks expands the N:immr:imms bitmask immediate to datasize bits.
// It reports false for the reserved patterns: an element size below 2 bits
// and an element of all ones.
func decodeBitMasks(n, imms, immr uint32, datasize uint) (uint64, bool) {
	combined := n<<6 | (^imms & 0x3F)
	if combined == 0 {
		return 0, false
	}

	length := bits.Len32(combined) - 1
	if length < 1 {
		return 0, false
	}

	esize := uint(1) << length
	levels := uint32(esize - 1)
	s := uint(imms & levels)
	r := uint(immr & levels)

	if s == uint(levels) {
		return 0, false
	}

	welem := uint64(1)<<(s+1) - 1

	elem := welem
	if r != 0 {
		elem = welem>>r | welem<<(esize-r)
	}
	if esize < 64 {
		elem &= uint64(1)<<esize - 1
	}

	for esize < datasize {
		elem |= elem << esize
		esize *= 2
	}

	return elem, true
}

// decodeMoveWide decodes MOVN/MOVZ/MOVK.
// Format: sf | opc | 100101 | hw | imm16 | Rd
func (d *Decoder) decodeMoveWide(word uint32, inst *Instruction) error {
	sf := (word >> 31) & 0x1      // bit 31
	opc := (word >> 29) & 0x3     // bits [30:29]
	hw := (word >> 21) & 0x3      // bits [22:21]
	imm16 := (word >> 5) & 0xFFFF // bits [20:5]
	rd := word & 0x1F             // bits [4:0]

	if opc == 0b01 || (sf == 0 && hw >= 2) {
		return unallocated("move wide")
	}

	switch opc {
	case 0b00:
		inst.Op = OpMOVN
	case 0b10:
		inst.Op = OpMOVZ
	case 0b11:
		inst.Op = OpMOVK
	}

	size := regSize(sf)
	inst.Operands = []Operand{
		GPR(rd, size),
		Immediate{Value: uint64(imm16), Size: size},
		lslShift(hw * 16),
	}

	return nil
}

// decodeBitfield decodes BFM/SBFM/UBFM.
// Format: sf | opc | 100110 | N | immr | imms | Rn | Rd
func (d *Decoder) decodeBitfield(word uint32, inst *Instruction) error {
	sf := (word >> 31) & 0x1    // bit 31
	opc := (word >> 29) & 0x3   // bits [30:29]
	n := (word >> 22) & 0x1     // bit 22
	immr := (word >> 16) & 0x3F // bits [21:16]
	imms := (word >> 10) & 0x3F // bits [15:10]
	rn := (word >> 5) & 0x1F    // bits [9:5]
	rd := word & 0x1F           // bits [4:0]

	if opc == 0b11 || n != sf {
		return unallocated("bitfield")
	}
	if sf == 0 && (immr&0x20 != 0 || imms&0x20 != 0) {
		return unallocated("bitfield")
	}

	switch opc {
	case 0b00:
		inst.Op = OpSBFM
	case 0b01:
		inst.Op = OpBFM
	case 0b10:
		inst.Op = OpUBFM
	}

	size := regSize(sf)
	inst.Operands = []Operand{
		GPR(rd, size),
		GPR(rn, size),
		imm8(immr),
		imm8(imms),
	}

	return nil
}

// decodeExtract decodes EXTR.
// Format: sf | op21 | 100111 | N | o0 | Rm | imms | Rn | Rd
func (d *Decoder) decodeExtract(word uint32, inst *Instruction) error {
	sf := (word >> 31) & 0x1    // bit 31
	op21 := (word >> 29) & 0x3  // bits [30:29]
	n := (word >> 22) & 0x1     // bit 22
	o0 := (word >> 21) & 0x1    // bit 21
	rm := (word >> 16) & 0x1F   // bits [20:16]
	imms := (word >> 10) & 0x3F // bits [15:10]
	rn := (word >> 5) & 0x1F    // bits [9:5]
	rd := word & 0x1F           // bits [4:0]

	if op21 != 0 || o0 != 0 || n != sf || (sf == 0 && imms >= 32) {
		return unallocated("extract")
	}

	size := regSize(sf)

	inst.Op = OpEXTR
	inst.Operands = []Operand{
		GPR(rd, size),
		GPR(rn, size),
		GPR(rm, size),
		imm8(imms),
	}

	return nil
}
