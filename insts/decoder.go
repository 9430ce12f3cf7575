package insts

import "errors"

// Instruction represents a decoded ARM64 instruction.
type Instruction struct {
	Op       Op        // Operation code
	Operands []Operand // Destination first, then sources, as written in assembly
	Cond     Cond      // Condition code for conditional families
	SetFlags bool      // true if instruction sets condition flags (S suffix)
	Address  uint64    // Address the word was decoded at
}

// Format returns the encoding family of the instruction.
func (inst *Instruction) Format() Format {
	return inst.Op.Format()
}

// Decoder decodes ARM64 machine code into instructions.
//
// A Decoder holds no state; one value may be shared by any number of
// goroutines.
type Decoder struct{}

// NewDecoder creates a new ARM64 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit ARM64 instruction word located at addr.
//
// Reserved and unallocated words return a *DecodeError wrapping
// ErrUnallocated. Allocated encodings the decoder does not model (SIMD and
// floating point, SVE, atomics, ...) return an Instruction with Op ==
// OpUnknown and a nil error.
func (d *Decoder) Decode(word uint32, addr uint64) (Instruction, error) {
	inst := Instruction{Op: OpUnknown, Address: addr}

	// A64 encoding index: op0 is bits [28:25]
	op0 := (word >> 25) & 0xF

	var err error

	switch {
	case op0 == 0b0000 || op0 == 0b0001 || op0 == 0b0011:
		err = unallocated("reserved")
	case op0 == 0b0010:
		// SVE
	case op0&0b1110 == 0b1000:
		err = d.decodeDataProcessingImm(word, &inst)
	case op0&0b1110 == 0b1010:
		err = d.decodeBranchSystem(word, &inst)
	case op0&0b0101 == 0b0100:
		err = d.decodeLoadStore(word, &inst)
	case op0&0b0111 == 0b0101:
		err = d.decodeDataProcessingReg(word, &inst)
	default:
		// SIMD and floating point (x111)
	}

	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Word = word
			de.Addr = addr
		}
		return Instruction{Op: OpUnknown, Address: addr}, err
	}

	return inst, nil
}

// regSize returns the register width selected by an sf bit.
func regSize(sf uint32) uint8 {
	if sf == 1 {
		return 64
	}
	return 32
}

// signExtend sign-extends the low width bits of v to 64 bits.
func signExtend(v uint32, width uint) uint64 {
	shift := 64 - width
	return uint64(int64(uint64(v)<<shift) >> shift)
}

// offset returns a relative offset as a 64-bit signed immediate.
func offset(v uint32, width uint) Immediate {
	return Immediate{Value: signExtend(v, width), Size: 64}
}

func imm8(v uint32) Immediate {
	return Immediate{Value: uint64(v), Size: 8}
}

// lslShift returns an LSL by count, or no shift when count is zero.
func lslShift(count uint32) Shift {
	if count == 0 {
		return Shift{}
	}
	return Shift{Type: ShiftLSL, Count: uint8(count)}
}
