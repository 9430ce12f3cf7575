package disasm

import (
	"fmt"
	"strings"

	"github.com/sarchlab/a64dis/insts"
)

// Markers written in place of elements the printer cannot render.
const (
	UnsupportedInsn = "<unsupported_insn>"
	UnsupportedReg  = "<unsupported_reg>"
	UnsupportedOpnd = "<unsupported_opnd>"
)

func sizeMask(size uint8) uint64 {
	if size == 0 || size >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<size - 1
}

// FormatImmediate renders an immediate as unsigned hex, masked to its size.
func FormatImmediate(imm insts.Immediate) string {
	return fmt.Sprintf("#0x%x", imm.Value&sizeMask(imm.Size))
}

// FormatSignedImmediate renders an immediate as signed hex. The sign is bit
// Size-1 of the value.
func FormatSignedImmediate(imm insts.Immediate) string {
	mask := sizeMask(imm.Size)
	v := imm.Value & mask

	if v&^(mask>>1) != 0 {
		return fmt.Sprintf("#-0x%x", -v&mask)
	}
	return fmt.Sprintf("#0x%x", v)
}

// decimal renders a small field as "#n".
func decimal(imm insts.Immediate) string {
	return fmt.Sprintf("#%d", imm.Value&sizeMask(imm.Size))
}

// FormatRegister renders a register by its declared size.
func FormatRegister(r insts.Register) string {
	if r.Size != 32 && r.Size != 64 {
		return UnsupportedReg
	}
	wide := r.Size == 64

	switch {
	case r.Name <= insts.RegX30 && wide:
		return fmt.Sprintf("x%d", r.Name)
	case r.Name <= insts.RegX30:
		return fmt.Sprintf("w%d", r.Name)
	case r.Name == insts.RegXZR && wide:
		return "xzr"
	case r.Name == insts.RegXZR:
		return "wzr"
	case r.Name == insts.RegSP && wide:
		return "sp"
	case r.Name == insts.RegSP:
		return "wsp"
	case r.Name == insts.RegPC:
		return "pc"
	default:
		return UnsupportedReg
	}
}

// FormatSystemRegister renders a named system register, or the generic
// S<op0>_<op1>_C<n>_C<m>_<op2> form.
func FormatSystemRegister(r insts.SystemRegister) string {
	if r.Name != insts.SysRegUnknown {
		return r.Name.String()
	}
	return fmt.Sprintf("S%d_%d_C%d_C%d_%d", r.Op0, r.Op1, r.CRn, r.CRm, r.Op2)
}

var shiftNames = [...]string{
	insts.ShiftLSL: "lsl",
	insts.ShiftLSR: "lsr",
	insts.ShiftASR: "asr",
	insts.ShiftROR: "ror",
}

// FormatShift renders a shift suffix without its leading separator. No
// shift renders as "".
func FormatShift(s insts.Shift) string {
	if s.Type == insts.ShiftNone || int(s.Type) >= len(shiftNames) {
		return ""
	}
	return fmt.Sprintf("%s #%d", shiftNames[s.Type], s.Count)
}

var extendNames = [...]string{
	insts.ExtendUXTB: "uxtb",
	insts.ExtendUXTH: "uxth",
	insts.ExtendUXTW: "uxtw",
	insts.ExtendUXTX: "uxtx",
	insts.ExtendSXTB: "sxtb",
	insts.ExtendSXTH: "sxth",
	insts.ExtendSXTW: "sxtw",
	insts.ExtendSXTX: "sxtx",
	insts.ExtendLSL:  "lsl",
}

// FormatExtend renders an extend suffix without its leading separator. No
// extend and an implicit LSL #0 render as "".
func FormatExtend(e insts.Extend) string {
	if e.Type == insts.ExtendNone || int(e.Type) >= len(extendNames) {
		return ""
	}
	if e.Explicit {
		return fmt.Sprintf("%s #%d", extendNames[e.Type], e.Count)
	}
	if e.Type == insts.ExtendLSL && e.Count == 0 {
		return ""
	}
	if e.Count == 0 {
		return extendNames[e.Type]
	}
	return fmt.Sprintf("%s #%d", extendNames[e.Type], e.Count)
}

// FormatImmediateOffset renders a base-plus-immediate address. A zero offset
// is omitted unless the address writes back.
func FormatImmediateOffset(a insts.ImmediateOffset) string {
	base := FormatRegister(a.Base)
	off := FormatSignedImmediate(a.Offset)

	if a.PostIndex {
		return "[" + base + "], " + off
	}

	var b strings.Builder
	b.WriteString("[" + base)
	if a.Offset.Value&sizeMask(a.Offset.Size) != 0 || a.Writeback {
		b.WriteString(", " + off)
		if s := FormatShift(a.Shift); s != "" {
			b.WriteString(", " + s)
		}
	}
	b.WriteString("]")
	if a.Writeback {
		b.WriteString("!")
	}
	return b.String()
}

// FormatRegisterOffset renders a base-plus-register address.
func FormatRegisterOffset(a insts.RegisterOffset) string {
	base := FormatRegister(a.Base)
	off := join(FormatRegister(a.Offset), FormatExtend(a.Extend))

	if a.PostIndex {
		return "[" + base + "], " + off
	}

	s := "[" + base + ", " + off + "]"
	if a.Writeback {
		s += "!"
	}
	return s
}

// FormatOperand renders any operand in its default form.
func FormatOperand(op insts.Operand) string {
	switch o := op.(type) {
	case insts.Immediate:
		return FormatImmediate(o)
	case insts.Register:
		return FormatRegister(o)
	case insts.SystemRegister:
		return FormatSystemRegister(o)
	case insts.Shift:
		return FormatShift(o)
	case insts.Extend:
		return FormatExtend(o)
	case insts.ImmediateOffset:
		return FormatImmediateOffset(o)
	case insts.RegisterOffset:
		return FormatRegisterOffset(o)
	default:
		return UnsupportedOpnd
	}
}

var (
	prefetchTypes   = [4]string{"pld", "pli", "pst", ""}
	prefetchTargets = [4]string{"l1", "l2", "l3", ""}
	prefetchPolicy  = [2]string{"keep", "strm"}
)

// FormatPrefetchOp renders the 5-bit prfop field, e.g. "pldl1keep".
// Reserved types and targets render as "#n".
func FormatPrefetchOp(imm insts.Immediate) string {
	v := imm.Value & 0x1F
	typ := prefetchTypes[v>>3]
	target := prefetchTargets[(v>>1)&0x3]

	if typ == "" || target == "" {
		return fmt.Sprintf("#%d", v)
	}
	return typ + target + prefetchPolicy[v&0x1]
}

var (
	barrierDomains = [4]string{"osh", "nsh", "ish", ""}
	barrierTypes   = [4]string{"", "ld", "st", ""}
)

// FormatBarrierOption renders the 4-bit CRm barrier option, e.g. "ishst".
// An access type of 00 is reserved and renders as "#n".
func FormatBarrierOption(imm insts.Immediate) string {
	v := imm.Value & 0xF
	domain := v >> 2
	types := v & 0x3

	switch {
	case types == 0:
		return fmt.Sprintf("#%d", v)
	case domain == 3 && types == 3:
		return "sy"
	default:
		return barrierDomains[domain] + barrierTypes[types]
	}
}

// join joins the non-empty parts with ", ".
func join(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p)
	}
	return b.String()
}

// line renders a mnemonic followed by its operand list.
func line(mnemonic string, operands ...string) string {
	if ops := join(operands...); ops != "" {
		return mnemonic + " " + ops
	}
	return mnemonic
}
