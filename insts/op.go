package insts

import "fmt"

// Op represents an AArch64 opcode.
//
// Opcodes of the same encoding family occupy one contiguous range, and the
// families are laid out in the order of formatBounds. New opcodes must be
// inserted inside their family's range.
type Op uint16

// AArch64 opcodes, grouped by encoding family.
const (
	OpUnknown Op = iota

	// PC-relative addressing
	OpADR
	OpADRP

	// Add/subtract (immediate)
	OpADDImm
	OpSUBImm

	// Logical (immediate)
	OpANDImm
	OpORRImm
	OpEORImm

	// Move wide (immediate)
	OpMOVN
	OpMOVK
	OpMOVZ

	// Bitfield
	OpBFM
	OpSBFM
	OpUBFM

	// Extract
	OpEXTR

	// Conditional branch (immediate)
	OpBCond

	// Exception generation
	OpBRK
	OpDCPS1
	OpDCPS2
	OpDCPS3
	OpHLT
	OpHVC
	OpSMC
	OpSVC

	// System: hints, barriers, PSTATE, SYS/SYSL, MSR/MRS
	OpAUTIA1716
	OpAUTIASP
	OpAUTIAZ
	OpAUTIB1716
	OpAUTIBSP
	OpAUTIBZ
	OpBTI
	OpCLREX
	OpCSDB
	OpDMB
	OpDSB
	OpESB
	OpHINT
	OpISB
	OpMRS
	OpMSRImm
	OpMSRReg
	OpNOP
	OpPACIA1716
	OpPACIASP
	OpPACIAZ
	OpPACIB1716
	OpPACIBSP
	OpPACIBZ
	OpPSBCSYNC
	OpSEV
	OpSEVL
	OpSYS
	OpSYSL
	OpWFE
	OpWFI
	OpXPACLRI
	OpYIELD

	// Unconditional branch (register)
	OpBLR
	OpBLRAA
	OpBLRAAZ
	OpBLRAB
	OpBLRABZ
	OpBR
	OpBRAA
	OpBRAAZ
	OpBRAB
	OpBRABZ
	OpDRPS
	OpERET
	OpERETAA
	OpERETAB
	OpRET
	OpRETAA
	OpRETAB

	// Unconditional branch (immediate)
	OpB
	OpBL

	// Compare and branch (immediate)
	OpCBNZ
	OpCBZ

	// Test and branch (immediate)
	OpTBNZ
	OpTBZ

	// Load/store exclusive and ordered
	OpLDAR
	OpLDAXP
	OpLDAXR
	OpLDLAR
	OpLDXP
	OpLDXR
	OpSTLLR
	OpSTLR
	OpSTLXP
	OpSTLXR
	OpSTXP
	OpSTXR

	// Load register (literal)
	OpLDRLit
	OpLDRSWLit
	OpPRFMLit

	// Load/store register pair
	OpLDNP
	OpLDP
	OpLDPSW
	OpSTNP
	OpSTP

	// Load/store register (single)
	OpLDR
	OpLDRS
	OpLDTR
	OpLDTRS
	OpLDUR
	OpLDURS
	OpPRFM
	OpPRFUM
	OpSTR
	OpSTTR
	OpSTUR

	// Data processing (2 source)
	OpASRV
	OpCRC32B
	OpCRC32CB
	OpCRC32CH
	OpCRC32CW
	OpCRC32CX
	OpCRC32H
	OpCRC32W
	OpCRC32X
	OpLSLV
	OpLSRV
	OpPACGA
	OpRORV
	OpSDIV
	OpUDIV

	// Data processing (1 source)
	OpAUTDA
	OpAUTDB
	OpAUTIA
	OpAUTIB
	OpCLS
	OpCLZ
	OpPACDA
	OpPACDB
	OpPACIA
	OpPACIB
	OpRBIT
	OpREV
	OpREV16
	OpREV32
	OpXPACD
	OpXPACI

	// Logical (shifted register)
	OpAND
	OpBIC
	OpEON
	OpEOR
	OpORN
	OpORR

	// Add/subtract (shifted register)
	OpADD
	OpSUB

	// Add/subtract (extended register)
	OpADDExt
	OpSUBExt

	// Add/subtract (with carry)
	OpADC
	OpSBC

	// Conditional compare (register and immediate)
	OpCCMN
	OpCCMP

	// Conditional select
	OpCSEL
	OpCSINC
	OpCSINV
	OpCSNEG

	// Data processing (3 source)
	OpMADD
	OpMSUB
	OpSMADDL
	OpSMSUBL
	OpSMULH
	OpUMADDL
	OpUMSUBL
	OpUMULH

	opCount
)

// opNames holds the canonical (non-alias) assembler mnemonic of each opcode.
var opNames = [opCount]string{
	OpUnknown: "unknown",

	OpADR:  "adr",
	OpADRP: "adrp",

	OpADDImm: "add",
	OpSUBImm: "sub",

	OpANDImm: "and",
	OpORRImm: "orr",
	OpEORImm: "eor",

	OpMOVN: "movn",
	OpMOVK: "movk",
	OpMOVZ: "movz",

	OpBFM:  "bfm",
	OpSBFM: "sbfm",
	OpUBFM: "ubfm",

	OpEXTR: "extr",

	OpBCond: "b",

	OpBRK:   "brk",
	OpDCPS1: "dcps1",
	OpDCPS2: "dcps2",
	OpDCPS3: "dcps3",
	OpHLT:   "hlt",
	OpHVC:   "hvc",
	OpSMC:   "smc",
	OpSVC:   "svc",

	OpAUTIA1716: "autia1716",
	OpAUTIASP:   "autiasp",
	OpAUTIAZ:    "autiaz",
	OpAUTIB1716: "autib1716",
	OpAUTIBSP:   "autibsp",
	OpAUTIBZ:    "autibz",
	OpBTI:       "bti",
	OpCLREX:     "clrex",
	OpCSDB:      "csdb",
	OpDMB:       "dmb",
	OpDSB:       "dsb",
	OpESB:       "esb",
	OpHINT:      "hint",
	OpISB:       "isb",
	OpMRS:       "mrs",
	OpMSRImm:    "msr",
	OpMSRReg:    "msr",
	OpNOP:       "nop",
	OpPACIA1716: "pacia1716",
	OpPACIASP:   "paciasp",
	OpPACIAZ:    "paciaz",
	OpPACIB1716: "pacib1716",
	OpPACIBSP:   "pacibsp",
	OpPACIBZ:    "pacibz",
	OpPSBCSYNC:  "psb csync",
	OpSEV:       "sev",
	OpSEVL:      "sevl",
	OpSYS:       "sys",
	OpSYSL:      "sysl",
	OpWFE:       "wfe",
	OpWFI:       "wfi",
	OpXPACLRI:   "xpaclri",
	OpYIELD:     "yield",

	OpBLR:    "blr",
	OpBLRAA:  "blraa",
	OpBLRAAZ: "blraaz",
	OpBLRAB:  "blrab",
	OpBLRABZ: "blrabz",
	OpBR:     "br",
	OpBRAA:   "braa",
	OpBRAAZ:  "braaz",
	OpBRAB:   "brab",
	OpBRABZ:  "brabz",
	OpDRPS:   "drps",
	OpERET:   "eret",
	OpERETAA: "eretaa",
	OpERETAB: "eretab",
	OpRET:    "ret",
	OpRETAA:  "retaa",
	OpRETAB:  "retab",

	OpB:  "b",
	OpBL: "bl",

	OpCBNZ: "cbnz",
	OpCBZ:  "cbz",

	OpTBNZ: "tbnz",
	OpTBZ:  "tbz",

	OpLDAR:  "ldar",
	OpLDAXP: "ldaxp",
	OpLDAXR: "ldaxr",
	OpLDLAR: "ldlar",
	OpLDXP:  "ldxp",
	OpLDXR:  "ldxr",
	OpSTLLR: "stllr",
	OpSTLR:  "stlr",
	OpSTLXP: "stlxp",
	OpSTLXR: "stlxr",
	OpSTXP:  "stxp",
	OpSTXR:  "stxr",

	OpLDRLit:   "ldr",
	OpLDRSWLit: "ldrsw",
	OpPRFMLit:  "prfm",

	OpLDNP:  "ldnp",
	OpLDP:   "ldp",
	OpLDPSW: "ldpsw",
	OpSTNP:  "stnp",
	OpSTP:   "stp",

	OpLDR:   "ldr",
	OpLDRS:  "ldrs",
	OpLDTR:  "ldtr",
	OpLDTRS: "ldtrs",
	OpLDUR:  "ldur",
	OpLDURS: "ldurs",
	OpPRFM:  "prfm",
	OpPRFUM: "prfum",
	OpSTR:   "str",
	OpSTTR:  "sttr",
	OpSTUR:  "stur",

	OpASRV:    "asr",
	OpCRC32B:  "crc32b",
	OpCRC32CB: "crc32cb",
	OpCRC32CH: "crc32ch",
	OpCRC32CW: "crc32cw",
	OpCRC32CX: "crc32cx",
	OpCRC32H:  "crc32h",
	OpCRC32W:  "crc32w",
	OpCRC32X:  "crc32x",
	OpLSLV:    "lsl",
	OpLSRV:    "lsr",
	OpPACGA:   "pacga",
	OpRORV:    "ror",
	OpSDIV:    "sdiv",
	OpUDIV:    "udiv",

	OpAUTDA: "autda",
	OpAUTDB: "autdb",
	OpAUTIA: "autia",
	OpAUTIB: "autib",
	OpCLS:   "cls",
	OpCLZ:   "clz",
	OpPACDA: "pacda",
	OpPACDB: "pacdb",
	OpPACIA: "pacia",
	OpPACIB: "pacib",
	OpRBIT:  "rbit",
	OpREV:   "rev",
	OpREV16: "rev16",
	OpREV32: "rev32",
	OpXPACD: "xpacd",
	OpXPACI: "xpaci",

	OpAND: "and",
	OpBIC: "bic",
	OpEON: "eon",
	OpEOR: "eor",
	OpORN: "orn",
	OpORR: "orr",

	OpADD: "add",
	OpSUB: "sub",

	OpADDExt: "add",
	OpSUBExt: "sub",

	OpADC: "adc",
	OpSBC: "sbc",

	OpCCMN: "ccmn",
	OpCCMP: "ccmp",

	OpCSEL:  "csel",
	OpCSINC: "csinc",
	OpCSINV: "csinv",
	OpCSNEG: "csneg",

	OpMADD:   "madd",
	OpMSUB:   "msub",
	OpSMADDL: "smaddl",
	OpSMSUBL: "smsubl",
	OpSMULH:  "smulh",
	OpUMADDL: "umaddl",
	OpUMSUBL: "umsubl",
	OpUMULH:  "umulh",
}

// String returns the canonical mnemonic of the opcode. Aliases are chosen by
// the printer, not here.
func (op Op) String() string {
	if op < opCount {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint16(op))
}
