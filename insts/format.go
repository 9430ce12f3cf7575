package insts

import "fmt"

// Format represents an instruction encoding family. Every opcode belongs to
// exactly one format.
type Format uint8

// Instruction formats, in opcode order.
const (
	FormatUnknown            Format = iota
	FormatPCRel                     // PC-relative addressing
	FormatDPImm                     // Add/subtract (immediate)
	FormatLogicalImm                // Logical (immediate)
	FormatMoveWide                  // Move wide (immediate)
	FormatBitfield                  // Bitfield
	FormatExtract                   // Extract
	FormatBranchCond                // Conditional branch
	FormatException                 // Exception generation
	FormatSystem                    // Hints, barriers, PSTATE, system registers
	FormatBranchReg                 // Unconditional branch (register)
	FormatBranch                    // Unconditional branch (immediate)
	FormatCompareBranch             // Compare and branch
	FormatTestBranch                // Test and branch
	FormatLoadStoreExclusive        // Load/store exclusive and ordered
	FormatLoadLiteral               // Load register (literal)
	FormatLoadStorePair             // Load/store register pair
	FormatLoadStore                 // Load/store register
	FormatDataProc2                 // Data processing (2 source)
	FormatDataProc1                 // Data processing (1 source)
	FormatLogicalReg                // Logical (shifted register)
	FormatDPReg                     // Add/subtract (shifted register)
	FormatDPExt                     // Add/subtract (extended register)
	FormatCarry                     // Add/subtract (with carry)
	FormatCondCompare               // Conditional compare
	FormatCondSelect                // Conditional select
	FormatDataProc3                 // Data processing (3 source)

	formatCount
)

var formatNames = [formatCount]string{
	FormatUnknown:            "Unknown",
	FormatPCRel:              "PCRel",
	FormatDPImm:              "DPImm",
	FormatLogicalImm:         "LogicalImm",
	FormatMoveWide:           "MoveWide",
	FormatBitfield:           "Bitfield",
	FormatExtract:            "Extract",
	FormatBranchCond:         "BranchCond",
	FormatException:          "Exception",
	FormatSystem:             "System",
	FormatBranchReg:          "BranchReg",
	FormatBranch:             "Branch",
	FormatCompareBranch:      "CompareBranch",
	FormatTestBranch:         "TestBranch",
	FormatLoadStoreExclusive: "LoadStoreExclusive",
	FormatLoadLiteral:        "LoadLiteral",
	FormatLoadStorePair:      "LoadStorePair",
	FormatLoadStore:          "LoadStore",
	FormatDataProc2:          "DataProc2",
	FormatDataProc1:          "DataProc1",
	FormatLogicalReg:         "LogicalReg",
	FormatDPReg:              "DPReg",
	FormatDPExt:              "DPExt",
	FormatCarry:              "Carry",
	FormatCondCompare:        "CondCompare",
	FormatCondSelect:         "CondSelect",
	FormatDataProc3:          "DataProc3",
}

func (f Format) String() string {
	if f < formatCount {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

type formatBound struct {
	last   Op
	format Format
}

// formatBounds lists the last opcode of every family, in ascending opcode
// order. Op.Format walks it with one comparison per family.
var formatBounds = [...]formatBound{
	{OpUnknown, FormatUnknown},
	{OpADRP, FormatPCRel},
	{OpSUBImm, FormatDPImm},
	{OpEORImm, FormatLogicalImm},
	{OpMOVZ, FormatMoveWide},
	{OpUBFM, FormatBitfield},
	{OpEXTR, FormatExtract},
	{OpBCond, FormatBranchCond},
	{OpSVC, FormatException},
	{OpYIELD, FormatSystem},
	{OpRETAB, FormatBranchReg},
	{OpBL, FormatBranch},
	{OpCBZ, FormatCompareBranch},
	{OpTBZ, FormatTestBranch},
	{OpSTXR, FormatLoadStoreExclusive},
	{OpPRFMLit, FormatLoadLiteral},
	{OpSTP, FormatLoadStorePair},
	{OpSTUR, FormatLoadStore},
	{OpUDIV, FormatDataProc2},
	{OpXPACI, FormatDataProc1},
	{OpORR, FormatLogicalReg},
	{OpSUB, FormatDPReg},
	{OpSUBExt, FormatDPExt},
	{OpSBC, FormatCarry},
	{OpCCMP, FormatCondCompare},
	{OpCSNEG, FormatCondSelect},
	{OpUMULH, FormatDataProc3},
}

func init() {
	if err := checkFormatBounds(); err != nil {
		panic(err)
	}
}

// checkFormatBounds verifies that the family ranges are sorted, contiguous,
// cover every opcode and name each format exactly once.
func checkFormatBounds() error {
	seen := make(map[Format]bool, len(formatBounds))

	for i, b := range formatBounds {
		if i > 0 && b.last <= formatBounds[i-1].last {
			return fmt.Errorf("insts: format bound %v (%v) is not above %v",
				b.format, b.last, formatBounds[i-1].last)
		}
		if seen[b.format] {
			return fmt.Errorf("insts: format %v has two ranges", b.format)
		}
		seen[b.format] = true
	}

	if last := formatBounds[len(formatBounds)-1].last; last != opCount-1 {
		return fmt.Errorf("insts: format bounds end at %v, opcodes end at Op(%d)",
			last, uint16(opCount-1))
	}

	if len(seen) != int(formatCount) {
		return fmt.Errorf("insts: %d formats have ranges, want %d", len(seen), formatCount)
	}

	return nil
}

// Format returns the encoding family the opcode belongs to. Opcodes outside
// every family map to FormatUnknown.
func (op Op) Format() Format {
	for _, b := range formatBounds {
		if op <= b.last {
			return b.format
		}
	}
	return FormatUnknown
}

// Ops returns the opcodes of a format in ascending order.
func (f Format) Ops() []Op {
	first := OpUnknown
	for _, b := range formatBounds {
		if b.format == f {
			ops := make([]Op, 0, b.last-first+1)
			for op := first; op <= b.last; op++ {
				ops = append(ops, op)
			}
			return ops
		}
		first = b.last + 1
	}
	return nil
}
