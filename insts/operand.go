package insts

// Operand is one of Immediate, Register, SystemRegister, Shift, Extend,
// ImmediateOffset or RegisterOffset. The set is closed: consumers switch on
// the concrete type.
type Operand interface {
	isOperand()
}

// Immediate is an immediate value. Value holds the raw encoding widened to 64
// bits; Size is the bit width the value is interpreted at. Signed fields are
// sign-extended by the decoder, so their sign is recovered from bit Size-1.
type Immediate struct {
	Value uint64
	Size  uint8
}

// RegName identifies a general-purpose register, the zero register, the stack
// pointer or the program counter.
type RegName uint8

// Register names. X0 through X30 are numbered consecutively from RegX0.
const (
	RegX0  RegName = 0
	RegX29 RegName = 29
	RegX30 RegName = 30
	RegXZR RegName = 31
	RegSP  RegName = 32
	RegPC  RegName = 33
)

// Register is a register operand. Size is 32 for the W view and 64 for the
// X view.
type Register struct {
	Name RegName
	Size uint8
}

// GPR returns register n of the given size, where n == 31 is the zero
// register.
func GPR(n uint32, size uint8) Register {
	return Register{Name: RegName(n & 0x1F), Size: size}
}

// GPROrSP returns register n of the given size, where n == 31 is the stack
// pointer.
func GPROrSP(n uint32, size uint8) Register {
	if n&0x1F == 31 {
		return Register{Name: RegSP, Size: size}
	}
	return GPR(n, size)
}

// SystemRegister names a system register or PSTATE field. The raw encoding
// fields are kept so unnamed registers can still be printed.
type SystemRegister struct {
	Name SysRegName
	Op0  uint8
	Op1  uint8
	CRn  uint8
	CRm  uint8
	Op2  uint8
}

// ShiftType represents a shift type for register operands.
type ShiftType uint8

// Shift types.
const (
	ShiftNone ShiftType = iota
	ShiftLSL            // Logical shift left
	ShiftLSR            // Logical shift right
	ShiftASR            // Arithmetic shift right
	ShiftROR            // Rotate right
)

// Shift is a shift applied to the preceding operand.
type Shift struct {
	Type  ShiftType
	Count uint8
}

// ExtendType represents a register extension.
type ExtendType uint8

// Extend types. UXTB through SXTX follow the architectural option encoding.
const (
	ExtendNone ExtendType = iota
	ExtendUXTB
	ExtendUXTH
	ExtendUXTW
	ExtendUXTX
	ExtendSXTB
	ExtendSXTH
	ExtendSXTW
	ExtendSXTX
	ExtendLSL
)

// Extend is an extension applied to the preceding register operand.
// Explicit marks an amount that was encoded and prints even when zero.
type Extend struct {
	Type     ExtendType
	Count    uint8
	Explicit bool
}

// ImmediateOffset is a base-plus-immediate memory address. Size is the width
// in bits of the memory access.
type ImmediateOffset struct {
	Base      Register
	Offset    Immediate
	Shift     Shift
	Writeback bool
	PostIndex bool
	Size      uint8
}

// RegisterOffset is a base-plus-register memory address. Size is the width in
// bits of the memory access.
type RegisterOffset struct {
	Base      Register
	Offset    Register
	Extend    Extend
	Writeback bool
	PostIndex bool
	Size      uint8
}

func (Immediate) isOperand()       {}
func (Register) isOperand()        {}
func (SystemRegister) isOperand()  {}
func (Shift) isOperand()           {}
func (Extend) isOperand()          {}
func (ImmediateOffset) isOperand() {}
func (RegisterOffset) isOperand()  {}

// Cond represents an ARM64 condition code.
type Cond uint8

// ARM64 condition codes.
const (
	CondEQ Cond = 0b0000 // Equal (Z == 1)
	CondNE Cond = 0b0001 // Not Equal (Z == 0)
	CondCS Cond = 0b0010 // Carry Set / Unsigned higher or same (C == 1)
	CondCC Cond = 0b0011 // Carry Clear / Unsigned lower (C == 0)
	CondMI Cond = 0b0100 // Minus / Negative (N == 1)
	CondPL Cond = 0b0101 // Plus / Positive or zero (N == 0)
	CondVS Cond = 0b0110 // Overflow (V == 1)
	CondVC Cond = 0b0111 // No overflow (V == 0)
	CondHI Cond = 0b1000 // Unsigned higher (C == 1 && Z == 0)
	CondLS Cond = 0b1001 // Unsigned lower or same (C == 0 || Z == 1)
	CondGE Cond = 0b1010 // Signed greater than or equal (N == V)
	CondLT Cond = 0b1011 // Signed less than (N != V)
	CondGT Cond = 0b1100 // Signed greater than (Z == 0 && N == V)
	CondLE Cond = 0b1101 // Signed less than or equal (Z == 1 || N != V)
	CondAL Cond = 0b1110 // Always (unconditional)
	CondNV Cond = 0b1111 // Always (unconditional, reserved)
)

// NV is a distinct encoding of "always" and shares AL's name.
var condNames = [16]string{
	"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc",
	"hi", "ls", "ge", "lt", "gt", "le", "al", "al",
}

func (c Cond) String() string {
	return condNames[c&0xF]
}

// Invert returns the condition with the opposite sense.
func (c Cond) Invert() Cond {
	return c ^ 1
}

// Always reports whether the condition is AL or NV.
func (c Cond) Always() bool {
	return c&0b1110 == 0b1110
}
