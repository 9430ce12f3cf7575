// Package insts provides AArch64 instruction definitions and decoding.
//
// This package decodes 32-bit A64 machine-code words into a structured
// Instruction: an opcode, an ordered operand list (destination first) and the
// condition/flag-setting attributes of the conditional and flag-setting
// families. It covers the general-purpose integer instruction set:
//   - Data Processing (Immediate): ADR/ADRP, ADD/SUB, logical, move wide,
//     bitfield, extract
//   - Branches, exception generation and system instructions
//   - Loads and stores: exclusive, literal, pair, single register
//   - Data Processing (Register): shifted/extended/carry arithmetic,
//     logical, conditional compare/select, 1/2/3-source
//
// Floating-point, SIMD and SVE encodings decode to OpUnknown. Unallocated
// encodings are rejected with an error wrapping ErrUnallocated.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst, err := decoder.Decode(0x91002820, 0x1000) // ADD X0, X1, #10
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Op: %v, Format: %v, Operands: %d\n",
//		inst.Op, inst.Op.Format(), len(inst.Operands))
package insts
