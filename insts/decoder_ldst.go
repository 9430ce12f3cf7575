package insts

// decodeLoadStore decodes the general-purpose register loads and stores.
// SIMD&FP transfers (V=1), atomics and the tag/pointer-auth loads decode as
// OpUnknown.
func (d *Decoder) decodeLoadStore(word uint32, inst *Instruction) error {
	v := (word >> 26) & 0x1 // bit 26: SIMD&FP register

	switch {
	case word&0xFF000000 == 0xDC000000:
		// opc=11 has no SIMD&FP literal load
		return unallocated("load literal")
	case word&0xFA000000 == 0xE8000000:
		// opc=11 pairs are reserved for both register files
		return unallocated("load/store pair")
	case v == 1:
		return nil
	}

	switch {
	case word&0x3F000000 == 0x08000000:
		d.decodeLoadStoreExclusive(word, inst)
		return nil
	case word&0x3B000000 == 0x18000000:
		d.decodeLoadLiteral(word, inst)
		return nil
	case word&0x3A000000 == 0x28000000:
		return d.decodeLoadStorePair(word, inst)
	case word&0x3B000000 == 0x39000000:
		return d.decodeLoadStoreUnsigned(word, inst)
	case word&0x3B200000 == 0x38000000:
		return d.decodeLoadStoreImm9(word, inst)
	case word&0x3B200C00 == 0x38200800:
		return d.decodeLoadStoreRegOffset(word, inst)
	default:
		return nil
	}
}

// exclusiveOps is indexed by o2:L:o1:o0. Zero entries are compare-and-swap.
var exclusiveOps = [16]Op{
	0b0000: OpSTXR, 0b0001: OpSTLXR, 0b0010: OpSTXP, 0b0011: OpSTLXP,
	0b0100: OpLDXR, 0b0101: OpLDAXR, 0b0110: OpLDXP, 0b0111: OpLDAXP,
	0b1000: OpSTLLR, 0b1001: OpSTLR,
	0b1100: OpLDLAR, 0b1101: OpLDAR,
}

// decodeLoadStoreExclusive decodes the exclusive and load-acquire /
// store-release forms.
// Format: size | 001000 | o2 | L | o1 | Rs | o0 | Rt2 | Rn | Rt
func (d *Decoder) decodeLoadStoreExclusive(word uint32, inst *Instruction) {
	size := (word >> 30) & 0x3 // bits [31:30]
	o2 := (word >> 23) & 0x1   // bit 23
	l := (word >> 22) & 0x1    // bit 22
	o1 := (word >> 21) & 0x1   // bit 21: pair
	rs := (word >> 16) & 0x1F  // bits [20:16]
	o0 := (word >> 15) & 0x1   // bit 15: acquire/release
	rt2 := (word >> 10) & 0x1F // bits [14:10]
	rn := (word >> 5) & 0x1F   // bits [9:5]
	rt := word & 0x1F          // bits [4:0]

	op := exclusiveOps[o2<<3|l<<2|o1<<1|o0]
	pair := o1 == 1
	if op == OpUnknown || (pair && size < 0b10) {
		// CAS, CASP
		return
	}

	rsize := uint8(32)
	if size == 0b11 {
		rsize = 64
	}

	addr := ImmediateOffset{
		Base:   GPROrSP(rn, 64),
		Offset: Immediate{Size: 64},
		Size:   8 << size,
	}

	inst.Op = op

	var ops []Operand
	if l == 0 && o2 == 0 {
		// status register
		ops = append(ops, GPR(rs, 32))
	}
	ops = append(ops, GPR(rt, rsize))
	if pair {
		ops = append(ops, GPR(rt2, rsize))
	}
	inst.Operands = append(ops, addr)
}

// decodeLoadLiteral decodes LDR/LDRSW/PRFM (literal).
// Format: opc | 011 | V | 00 | imm19 | Rt
func (d *Decoder) decodeLoadLiteral(word uint32, inst *Instruction) {
	opc := (word >> 30) & 0x3      // bits [31:30]
	imm19 := (word >> 5) & 0x7FFFF // bits [23:5]
	rt := word & 0x1F              // bits [4:0]

	label := offset(imm19<<2, 21)

	switch opc {
	case 0b00:
		inst.Op = OpLDRLit
		inst.Operands = []Operand{GPR(rt, 32), label}
	case 0b01:
		inst.Op = OpLDRLit
		inst.Operands = []Operand{GPR(rt, 64), label}
	case 0b10:
		inst.Op = OpLDRSWLit
		inst.Operands = []Operand{GPR(rt, 64), label}
	case 0b11:
		inst.Op = OpPRFMLit
		inst.Operands = []Operand{imm8(rt), label}
	}
}

// decodeLoadStorePair decodes LDP/LDPSW/LDNP/STP/STNP.
// Format: opc | 101 | V | mode | L | imm7 | Rt2 | Rn | Rt
func (d *Decoder) decodeLoadStorePair(word uint32, inst *Instruction) error {
	opc := (word >> 30) & 0x3   // bits [31:30]
	mode := (word >> 23) & 0x3  // bits [24:23]: 00=no-allocate, 01=post, 10=offset, 11=pre
	l := (word >> 22) & 0x1     // bit 22
	imm7 := (word >> 15) & 0x7F // bits [21:15]
	rt2 := (word >> 10) & 0x1F  // bits [14:10]
	rn := (word >> 5) & 0x1F    // bits [9:5]
	rt := word & 0x1F           // bits [4:0]

	if opc == 0b11 {
		return unallocated("load/store pair")
	}

	nonTemporal := mode == 0b00

	switch {
	case opc == 0b01 && l == 0:
		// STGP
		return nil
	case opc == 0b01 && nonTemporal:
		return unallocated("load/store pair")
	case opc == 0b01:
		inst.Op = OpLDPSW
	case nonTemporal && l == 1:
		inst.Op = OpLDNP
	case nonTemporal:
		inst.Op = OpSTNP
	case l == 1:
		inst.Op = OpLDP
	default:
		inst.Op = OpSTP
	}

	scale := 2 + uint(opc>>1)
	rsize := uint8(32)
	if opc != 0b00 {
		rsize = 64
	}

	imm := offset(imm7, 7)
	imm.Value <<= scale

	inst.Operands = []Operand{
		GPR(rt, rsize),
		GPR(rt2, rsize),
		ImmediateOffset{
			Base:      GPROrSP(rn, 64),
			Offset:    imm,
			Writeback: mode == 0b01 || mode == 0b11,
			PostIndex: mode == 0b01,
			Size:      8 << scale,
		},
	}

	return nil
}

// ldstKind classifies a single-register transfer by its size:opc fields.
type ldstKind uint8

const (
	ldstStore ldstKind = iota
	ldstLoad
	ldstLoadSigned
	ldstPrefetch
)

// classifyLoadStore returns the transfer kind and the register width for
// size:opc, or false for the unallocated combinations.
func classifyLoadStore(size, opc uint32) (ldstKind, uint8, bool) {
	rsize := uint8(32)
	if size == 0b11 {
		rsize = 64
	}

	switch {
	case opc == 0b00:
		return ldstStore, rsize, true
	case opc == 0b01:
		return ldstLoad, rsize, true
	case opc == 0b10 && size == 0b11:
		return ldstPrefetch, 0, true
	case opc == 0b10:
		return ldstLoadSigned, 64, true
	case size < 0b10:
		return ldstLoadSigned, 32, true
	default:
		return 0, 0, false
	}
}

// ldstOps is indexed by addressing form and transfer kind. Zero entries are
// unallocated.
var ldstOps = [3][4]Op{
	{OpSTR, OpLDR, OpLDRS, OpPRFM},       // register, unsigned offset, pre/post-index
	{OpSTUR, OpLDUR, OpLDURS, OpPRFUM},   // unscaled
	{OpSTTR, OpLDTR, OpLDTRS, OpUnknown}, // unprivileged
}

const (
	ldstFormIndexed = iota
	ldstFormUnscaled
	ldstFormUnprivileged
)

// setLoadStore fills inst with the transfer register (or prefetch operation)
// followed by addr.
func setLoadStore(inst *Instruction, form int, size, opc, rt uint32, addr Operand) error {
	kind, rsize, ok := classifyLoadStore(size, opc)
	if !ok {
		return unallocated("load/store register")
	}

	op := ldstOps[form][kind]
	if op == OpUnknown {
		return unallocated("load/store register")
	}

	inst.Op = op
	if kind == ldstPrefetch {
		inst.Operands = []Operand{imm8(rt), addr}
	} else {
		inst.Operands = []Operand{GPR(rt, rsize), addr}
	}

	return nil
}

// decodeLoadStoreUnsigned decodes the scaled unsigned 12-bit offset form.
// Format: size | 111 | V | 01 | opc | imm12 | Rn | Rt
func (d *Decoder) decodeLoadStoreUnsigned(word uint32, inst *Instruction) error {
	size := (word >> 30) & 0x3    // bits [31:30]
	opc := (word >> 22) & 0x3     // bits [23:22]
	imm12 := (word >> 10) & 0xFFF // bits [21:10]
	rn := (word >> 5) & 0x1F      // bits [9:5]
	rt := word & 0x1F             // bits [4:0]

	addr := ImmediateOffset{
		Base:   GPROrSP(rn, 64),
		Offset: Immediate{Value: uint64(imm12) << size, Size: 64},
		Size:   8 << size,
	}

	return setLoadStore(inst, ldstFormIndexed, size, opc, rt, addr)
}

// decodeLoadStoreImm9 decodes the unscaled, post-index, unprivileged and
// pre-index forms.
// Format: size | 111 | V | 00 | opc | 0 | imm9 | mode | Rn | Rt
func (d *Decoder) decodeLoadStoreImm9(word uint32, inst *Instruction) error {
	size := (word >> 30) & 0x3   // bits [31:30]
	opc := (word >> 22) & 0x3    // bits [23:22]
	imm9 := (word >> 12) & 0x1FF // bits [20:12]
	mode := (word >> 10) & 0x3   // bits [11:10]: 00=unscaled, 01=post, 10=unprivileged, 11=pre
	rn := (word >> 5) & 0x1F     // bits [9:5]
	rt := word & 0x1F            // bits [4:0]

	addr := ImmediateOffset{
		Base:      GPROrSP(rn, 64),
		Offset:    offset(imm9, 9),
		Writeback: mode == 0b01 || mode == 0b11,
		PostIndex: mode == 0b01,
		Size:      8 << size,
	}

	form := ldstFormIndexed
	switch mode {
	case 0b00:
		form = ldstFormUnscaled
	case 0b10:
		form = ldstFormUnprivileged
	default:
		if size == 0b11 && opc == 0b10 {
			// no prefetch with writeback
			return unallocated("load/store register")
		}
	}

	return setLoadStore(inst, form, size, opc, rt, addr)
}

// decodeLoadStoreRegOffset decodes the register offset form.
// Format: size | 111 | V | 00 | opc | 1 | Rm | option | S | 10 | Rn | Rt
func (d *Decoder) decodeLoadStoreRegOffset(word uint32, inst *Instruction) error {
	size := (word >> 30) & 0x3   // bits [31:30]
	opc := (word >> 22) & 0x3    // bits [23:22]
	rm := (word >> 16) & 0x1F    // bits [20:16]
	option := (word >> 13) & 0x7 // bits [15:13]
	s := (word >> 12) & 0x1      // bit 12: scale offset
	rn := (word >> 5) & 0x1F     // bits [9:5]
	rt := word & 0x1F            // bits [4:0]

	if option&0b010 == 0 {
		return unallocated("load/store register offset")
	}

	ext := Extend{Type: ExtendUXTB + ExtendType(option)}
	if option == 0b011 {
		ext.Type = ExtendLSL
	}
	if s == 1 {
		ext.Count = uint8(size)
		ext.Explicit = true
	}

	addr := RegisterOffset{
		Base:   GPROrSP(rn, 64),
		Offset: GPR(rm, regSize(option&0x1)),
		Extend: ext,
		Size:   8 << size,
	}

	return setLoadStore(inst, ldstFormIndexed, size, opc, rt, addr)
}
