//go:build !a64debug

package disasm

import "github.com/sarchlab/a64dis/insts"

// contractViolation is a no-op in release builds; the printer falls back to
// marker output.
func contractViolation(insts.Instruction, shape) {}
