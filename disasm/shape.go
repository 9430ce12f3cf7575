package disasm

import (
	"strings"

	"github.com/sarchlab/a64dis/insts"
)

// kind is the operand variant a handler expects at a position.
type kind uint8

const (
	kImm kind = iota
	kReg
	kSysReg
	kShift
	kExtend
	kAddr     // ImmediateOffset or RegisterOffset
	kImmOff   // ImmediateOffset only
	kRegOrImm // Register or Immediate
)

var kindNames = [...]string{
	kImm:      "Immediate",
	kReg:      "Register",
	kSysReg:   "SystemRegister",
	kShift:    "Shift",
	kExtend:   "Extend",
	kAddr:     "Address",
	kImmOff:   "ImmediateOffset",
	kRegOrImm: "Register|Immediate",
}

func (k kind) String() string {
	return kindNames[k]
}

func (k kind) accepts(op insts.Operand) bool {
	switch op.(type) {
	case insts.Immediate:
		return k == kImm || k == kRegOrImm
	case insts.Register:
		return k == kReg || k == kRegOrImm
	case insts.SystemRegister:
		return k == kSysReg
	case insts.Shift:
		return k == kShift
	case insts.Extend:
		return k == kExtend
	case insts.ImmediateOffset:
		return k == kAddr || k == kImmOff
	case insts.RegisterOffset:
		return k == kAddr
	default:
		return false
	}
}

// shape is the operand layout an opcode's handler reads.
type shape []kind

func (s shape) String() string {
	names := make([]string, len(s))
	for i, k := range s {
		names[i] = k.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// fits reports whether the operands match the shape. A mismatch means the
// decoder and printer disagree about the opcode.
func (s shape) fits(inst insts.Instruction) bool {
	ok := len(inst.Operands) == len(s)
	for i := 0; ok && i < len(s); i++ {
		ok = s[i].accepts(inst.Operands[i])
	}

	if !ok {
		contractViolation(inst, s)
	}
	return ok
}

// fallback prints the canonical mnemonic and every operand, with a marker in
// place of each operand that does not match the shape.
func (s shape) fallback(inst insts.Instruction) string {
	n := max(len(s), len(inst.Operands))
	parts := make([]string, n)

	for i := range parts {
		if i < len(s) && i < len(inst.Operands) && s[i].accepts(inst.Operands[i]) {
			parts[i] = FormatOperand(inst.Operands[i])
		} else {
			parts[i] = UnsupportedOpnd
		}
	}

	return line(canonical(inst), parts...)
}

// canonical returns the non-alias mnemonic, with "s" for flag-setting forms.
func canonical(inst insts.Instruction) string {
	name := inst.Op.String()
	if inst.Op == insts.OpBCond {
		return name + "." + inst.Cond.String()
	}
	if inst.SetFlags {
		name += "s"
	}
	return name
}
