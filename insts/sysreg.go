package insts

import "fmt"

// SysRegName identifies a named system register or PSTATE field.
type SysRegName uint8

// Named system registers and PSTATE fields.
const (
	SysRegUnknown SysRegName = iota

	// PSTATE fields written by MSR (immediate)
	SysRegSPSel
	SysRegDAIFSet
	SysRegDAIFClr
	SysRegUAO
	SysRegPAN
	SysRegDIT
	SysRegSSBS

	// System registers accessed by MRS/MSR (register)
	SysRegNZCV
	SysRegDAIF
	SysRegCurrentEL
	SysRegFPCR
	SysRegFPSR
	SysRegTPIDREL0
	SysRegTPIDRROEL0
	SysRegTPIDREL1
	SysRegCTREL0
	SysRegDCZIDEL0
	SysRegMIDREL1
	SysRegMPIDREL1
	SysRegCNTFRQEL0
	SysRegCNTPCTEL0
	SysRegCNTVCTEL0
	SysRegSPEL0
	SysRegELREL1
	SysRegSPSREL1
	SysRegVBAREL1
	SysRegSCTLREL1
	SysRegTTBR0EL1
	SysRegTTBR1EL1
	SysRegTCREL1
	SysRegESREL1
	SysRegFAREL1
	SysRegMAIREL1

	sysRegCount
)

var sysRegNames = [sysRegCount]string{
	SysRegUnknown: "",

	SysRegSPSel:   "SPSel",
	SysRegDAIFSet: "DAIFSet",
	SysRegDAIFClr: "DAIFClr",
	SysRegUAO:     "UAO",
	SysRegPAN:     "PAN",
	SysRegDIT:     "DIT",
	SysRegSSBS:    "SSBS",

	SysRegNZCV:       "NZCV",
	SysRegDAIF:       "DAIF",
	SysRegCurrentEL:  "CurrentEL",
	SysRegFPCR:       "FPCR",
	SysRegFPSR:       "FPSR",
	SysRegTPIDREL0:   "TPIDR_EL0",
	SysRegTPIDRROEL0: "TPIDRRO_EL0",
	SysRegTPIDREL1:   "TPIDR_EL1",
	SysRegCTREL0:     "CTR_EL0",
	SysRegDCZIDEL0:   "DCZID_EL0",
	SysRegMIDREL1:    "MIDR_EL1",
	SysRegMPIDREL1:   "MPIDR_EL1",
	SysRegCNTFRQEL0:  "CNTFRQ_EL0",
	SysRegCNTPCTEL0:  "CNTPCT_EL0",
	SysRegCNTVCTEL0:  "CNTVCT_EL0",
	SysRegSPEL0:      "SP_EL0",
	SysRegELREL1:     "ELR_EL1",
	SysRegSPSREL1:    "SPSR_EL1",
	SysRegVBAREL1:    "VBAR_EL1",
	SysRegSCTLREL1:   "SCTLR_EL1",
	SysRegTTBR0EL1:   "TTBR0_EL1",
	SysRegTTBR1EL1:   "TTBR1_EL1",
	SysRegTCREL1:     "TCR_EL1",
	SysRegESREL1:     "ESR_EL1",
	SysRegFAREL1:     "FAR_EL1",
	SysRegMAIREL1:    "MAIR_EL1",
}

// String returns the architectural name, or "" for SysRegUnknown.
func (n SysRegName) String() string {
	if n < sysRegCount {
		return sysRegNames[n]
	}
	return fmt.Sprintf("SysRegName(%d)", uint8(n))
}

// sysRegKey packs op0:op1:CRn:CRm:op2 into the 16-bit MRS/MSR encoding.
func sysRegKey(op0, op1, crn, crm, op2 uint32) uint16 {
	return uint16(op0<<14 | op1<<11 | crn<<7 | crm<<3 | op2)
}

var sysRegs = map[uint16]SysRegName{
	sysRegKey(3, 0, 4, 2, 0):  SysRegSPSel,
	sysRegKey(3, 0, 4, 2, 3):  SysRegPAN,
	sysRegKey(3, 0, 4, 2, 4):  SysRegUAO,
	sysRegKey(3, 3, 4, 2, 5):  SysRegDIT,
	sysRegKey(3, 3, 4, 2, 6):  SysRegSSBS,
	sysRegKey(3, 3, 4, 2, 0):  SysRegNZCV,
	sysRegKey(3, 3, 4, 2, 1):  SysRegDAIF,
	sysRegKey(3, 0, 4, 2, 2):  SysRegCurrentEL,
	sysRegKey(3, 3, 4, 4, 0):  SysRegFPCR,
	sysRegKey(3, 3, 4, 4, 1):  SysRegFPSR,
	sysRegKey(3, 3, 13, 0, 2): SysRegTPIDREL0,
	sysRegKey(3, 3, 13, 0, 3): SysRegTPIDRROEL0,
	sysRegKey(3, 0, 13, 0, 4): SysRegTPIDREL1,
	sysRegKey(3, 3, 0, 0, 1):  SysRegCTREL0,
	sysRegKey(3, 3, 0, 0, 7):  SysRegDCZIDEL0,
	sysRegKey(3, 0, 0, 0, 0):  SysRegMIDREL1,
	sysRegKey(3, 0, 0, 0, 5):  SysRegMPIDREL1,
	sysRegKey(3, 3, 14, 0, 0): SysRegCNTFRQEL0,
	sysRegKey(3, 3, 14, 0, 1): SysRegCNTPCTEL0,
	sysRegKey(3, 3, 14, 0, 2): SysRegCNTVCTEL0,
	sysRegKey(3, 0, 4, 1, 0):  SysRegSPEL0,
	sysRegKey(3, 0, 4, 0, 1):  SysRegELREL1,
	sysRegKey(3, 0, 4, 0, 0):  SysRegSPSREL1,
	sysRegKey(3, 0, 12, 0, 0): SysRegVBAREL1,
	sysRegKey(3, 0, 1, 0, 0):  SysRegSCTLREL1,
	sysRegKey(3, 0, 2, 0, 0):  SysRegTTBR0EL1,
	sysRegKey(3, 0, 2, 0, 1):  SysRegTTBR1EL1,
	sysRegKey(3, 0, 2, 0, 2):  SysRegTCREL1,
	sysRegKey(3, 0, 5, 2, 0):  SysRegESREL1,
	sysRegKey(3, 0, 6, 0, 0):  SysRegFAREL1,
	sysRegKey(3, 0, 10, 2, 0): SysRegMAIREL1,
}

// pstateFields maps op1:op2 of MSR (immediate) to the PSTATE field written.
var pstateFields = map[uint32]SysRegName{
	0b000_011: SysRegUAO,
	0b000_100: SysRegPAN,
	0b000_101: SysRegSPSel,
	0b011_001: SysRegSSBS,
	0b011_010: SysRegDIT,
	0b011_110: SysRegDAIFSet,
	0b011_111: SysRegDAIFClr,
}
