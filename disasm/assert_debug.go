//go:build a64debug

package disasm

import (
	"fmt"

	"github.com/sarchlab/a64dis/insts"
)

// contractViolation panics: the decoder produced operands the printer does
// not expect for the opcode.
func contractViolation(inst insts.Instruction, want shape) {
	panic(fmt.Sprintf("disasm: %v operands %#v do not match %v", inst.Op, inst.Operands, want))
}
