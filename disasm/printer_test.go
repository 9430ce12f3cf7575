package disasm_test

import (
	"bytes"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64dis/disasm"
	"github.com/sarchlab/a64dis/insts"
)

func x(n insts.RegName) insts.Register { return insts.Register{Name: n, Size: 64} }

var xzr = insts.Register{Name: insts.RegXZR, Size: 64}

var _ = Describe("Printer", func() {
	expectText := func(word uint32, want string) {
		text, err := disasm.Disassemble(word, 0x1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal(want))
	}

	DescribeTable("data processing (immediate)", expectText,
		Entry("add to sp is mov", uint32(0x910003E0), "mov x0, sp"),
		Entry("add into sp is mov", uint32(0x9100003F), "mov sp, x1"),
		Entry("add with nonzero immediate", uint32(0x91004020), "add x0, x1, #0x10"),
		Entry("add with shifted immediate", uint32(0x91400420), "add x0, x1, #0x1, lsl #12"),
		Entry("subs to xzr is cmp", uint32(0xF100403F), "cmp x1, #0x10"),
		Entry("adds to wzr is cmn", uint32(0x31000C5F), "cmn w2, #0x3"),
		Entry("subs to a register", uint32(0xF1001020), "subs x0, x1, #0x4"),
		Entry("ands to xzr is tst", uint32(0xF2401C3F), "tst x1, #0xff"),
		Entry("ands to a register", uint32(0x72000C20), "ands w0, w1, #0xf"),
		Entry("orr from a register", uint32(0xB2401C20), "orr x0, x1, #0xff"),
		Entry("orr from xzr is mov", uint32(0xB200F3E0), "mov x0, #0x5555555555555555"),
		Entry("orr of a movz value stays orr", uint32(0xB2403FE0), "orr x0, xzr, #0xffff"),
		Entry("orr of a shifted movz value stays orr", uint32(0xB2603FE0), "orr x0, xzr, #0xffff00000000"),
		Entry("orr of a movn value stays orr", uint32(0xB270EFE0), "orr x0, xzr, #0xffffffffffff0fff"),
		Entry("orr of a 32-bit movz value stays orr", uint32(0x32103FE0), "orr w0, wzr, #0xffff0000"),
		Entry("adr", uint32(0x10FFFFE0), "adr x0, #-0x4"),
		Entry("adrp", uint32(0xB0000001), "adrp x1, #0x1000"),
		Entry("extr with rn = rm is ror", uint32(0x93C11420), "ror x0, x1, #5"),
		Entry("extr", uint32(0x93C21420), "extr x0, x1, x2, #5"),
		Entry("extr with a wide lsb", uint32(0x93C2FC20), "extr x0, x1, x2, #63"),
	)

	DescribeTable("move wide", expectText,
		Entry("movz", uint32(0xD29FE000), "mov x0, #0xff00"),
		Entry("movz with shift", uint32(0xD2A00020), "mov x0, #0x10000"),
		Entry("movz of a shifted zero", uint32(0xD2A00000), "movz x0, #0x0, lsl #16"),
		Entry("movn masks to 32 bits", uint32(0x12800000), "mov w0, #0xffffffff"),
		Entry("movn of 0xffff in 32 bits", uint32(0x129FFFE0), "movn w0, #0xffff"),
		Entry("movn in 64 bits", uint32(0x92800020), "mov x0, #0xfffffffffffffffe"),
		Entry("movk", uint32(0xF2C00240), "movk x0, #0x12, lsl #32"),
	)

	DescribeTable("bitfield", expectText,
		Entry("asr", uint32(0x9343FC20), "asr x0, x1, #0x3"),
		Entry("sbfiz", uint32(0x937C1C20), "sbfiz x0, x1, #0x4, #0x8"),
		Entry("sxtb", uint32(0x93401C20), "sxtb x0, w1"),
		Entry("sxth", uint32(0x13003C20), "sxth w0, w1"),
		Entry("sxtw", uint32(0x93407C20), "sxtw x0, w1"),
		Entry("sbfx", uint32(0x93442C20), "sbfx x0, x1, #0x4, #0x8"),
		Entry("lsl", uint32(0xD37CEC20), "lsl x0, x1, #0x4"),
		Entry("lsr", uint32(0x53037C20), "lsr w0, w1, #0x3"),
		Entry("ubfiz", uint32(0x531E1020), "ubfiz w0, w1, #0x2, #0x5"),
		Entry("uxtb", uint32(0x53001C20), "uxtb w0, w1"),
		Entry("uxth", uint32(0x53003C20), "uxth w0, w1"),
		Entry("no uxtb in 64 bits", uint32(0xD3401C20), "ubfx x0, x1, #0x0, #0x8"),
		Entry("ubfx", uint32(0xD3442C20), "ubfx x0, x1, #0x4, #0x8"),
		Entry("bfc", uint32(0xB37C1FE0), "bfc x0, #0x4, #0x8"),
		Entry("bfi", uint32(0xB37C1C20), "bfi x0, x1, #0x4, #0x8"),
		Entry("bfxil", uint32(0xB3442C20), "bfxil x0, x1, #0x4, #0x8"),
	)

	DescribeTable("branches and exceptions", expectText,
		Entry("b.cond forward", uint32(0x54000040), "b.eq #0x8"),
		Entry("b.cond backward", uint32(0x54FFFFC1), "b.ne #-0x8"),
		Entry("b", uint32(0x14000040), "b #0x100"),
		Entry("bl backward", uint32(0x97FFFFFF), "bl #-0x4"),
		Entry("cbz", uint32(0x34000080), "cbz w0, #0x10"),
		Entry("cbnz", uint32(0xB5FFFF81), "cbnz x1, #-0x10"),
		Entry("tbz on a high bit", uint32(0xB6080040), "tbz x0, #33, #0x8"),
		Entry("tbnz", uint32(0x371FFFE1), "tbnz w1, #3, #-0x4"),
		Entry("svc", uint32(0xD4000201), "svc #16"),
		Entry("brk", uint32(0xD4200020), "brk #1"),
		Entry("hlt", uint32(0xD4400400), "hlt #32"),
		Entry("svc with a full immediate", uint32(0xD41FFFE1), "svc #65535"),
		Entry("hvc", uint32(0xD4000022), "hvc #1"),
		Entry("smc", uint32(0xD4000143), "smc #10"),
		Entry("dcps1 without immediate", uint32(0xD4A00001), "dcps1"),
		Entry("dcps2 with immediate", uint32(0xD4A000A2), "dcps2 #5"),
		Entry("ret to x30", uint32(0xD65F03C0), "ret"),
		Entry("ret to another register", uint32(0xD65F0020), "ret x1"),
		Entry("br", uint32(0xD61F0040), "br x2"),
		Entry("blr", uint32(0xD63F0060), "blr x3"),
		Entry("braa with sp modifier", uint32(0xD71F083F), "braa x1, sp"),
		Entry("blrab", uint32(0xD73F0C43), "blrab x2, x3"),
		Entry("braaz", uint32(0xD61F089F), "braaz x4"),
		Entry("retaa", uint32(0xD65F0BFF), "retaa"),
		Entry("eret", uint32(0xD69F03E0), "eret"),
	)

	DescribeTable("system", expectText,
		Entry("nop", uint32(0xD503201F), "nop"),
		Entry("yield", uint32(0xD503203F), "yield"),
		Entry("unnamed hint", uint32(0xD50320DF), "hint #0x6"),
		Entry("bti c", uint32(0xD503245F), "bti c"),
		Entry("bti", uint32(0xD503241F), "bti"),
		Entry("psb csync", uint32(0xD503223F), "psb csync"),
		Entry("paciasp", uint32(0xD503233F), "paciasp"),
		Entry("dsb ish", uint32(0xD5033B9F), "dsb ish"),
		Entry("dsb sy", uint32(0xD5033F9F), "dsb sy"),
		Entry("dsb oshld", uint32(0xD503319F), "dsb oshld"),
		Entry("dsb reserved option", uint32(0xD503389F), "dsb #8"),
		Entry("ssbb", uint32(0xD503309F), "ssbb"),
		Entry("pssbb", uint32(0xD503349F), "pssbb"),
		Entry("dmb ishld", uint32(0xD50339BF), "dmb ishld"),
		Entry("isb", uint32(0xD5033FDF), "isb"),
		Entry("isb with option", uint32(0xD50333DF), "isb #3"),
		Entry("clrex", uint32(0xD5033F5F), "clrex"),
		Entry("clrex with option", uint32(0xD503355F), "clrex #5"),
		Entry("msr DAIFSet", uint32(0xD50342DF), "msr DAIFSet, #2"),
		Entry("msr SPSel", uint32(0xD50041BF), "msr SPSel, #1"),
		Entry("mrs NZCV", uint32(0xD53B4200), "mrs x0, NZCV"),
		Entry("msr TPIDR_EL0", uint32(0xD51BD041), "msr TPIDR_EL0, x1"),
		Entry("mrs unnamed register", uint32(0xD538F202), "mrs x2, S3_0_C15_C2_0"),
		Entry("dc zva", uint32(0xD50B7420), "dc zva, x0"),
		Entry("ic iallu", uint32(0xD508751F), "ic iallu"),
		Entry("ic iallu with a register", uint32(0xD5087500), "sys #0, C7, C5, #0, x0"),
		Entry("ic ivau", uint32(0xD50B7521), "ic ivau, x1"),
		Entry("tlbi vmalle1is", uint32(0xD508831F), "tlbi vmalle1is"),
		Entry("tlbi vae1", uint32(0xD5088722), "tlbi vae1, x2"),
		Entry("range tlbi", uint32(0xD5088620), "tlbi rvae1, x0"),
		Entry("inner-shareable range tlbi", uint32(0xD50882E0), "tlbi rvaale1is, x0"),
		Entry("outer-shareable range tlbi", uint32(0xD50885A0), "tlbi rvale1os, x0"),
		Entry("stage 2 range tlbi", uint32(0xD50C8460), "tlbi ripas2e1os, x0"),
		Entry("el3 range tlbi", uint32(0xD50E86A0), "tlbi rvale3, x0"),
		Entry("at s1e1r", uint32(0xD5087803), "at s1e1r, x3"),
		Entry("sys without alias", uint32(0xD509239F), "sys #1, C2, C3, #4"),
		Entry("sysl", uint32(0xD5292380), "sysl x0, #1, C2, C3, #4"),
	)

	DescribeTable("loads and stores", expectText,
		Entry("ldr without offset", uint32(0xF9400020), "ldr x0, [x1]"),
		Entry("ldr from sp", uint32(0xB9400BE0), "ldr w0, [sp, #0x8]"),
		Entry("ldrb", uint32(0x39400420), "ldrb w0, [x1, #0x1]"),
		Entry("ldrsh", uint32(0x79800420), "ldrsh x0, [x1, #0x2]"),
		Entry("ldrsw", uint32(0xB9800420), "ldrsw x0, [x1, #0x4]"),
		Entry("strh", uint32(0x79000062), "strh w2, [x3]"),
		Entry("pre-index", uint32(0xF8410C20), "ldr x0, [x1, #0x10]!"),
		Entry("pre-index negative", uint32(0xF81F0FE0), "str x0, [sp, #-0x10]!"),
		Entry("post-index", uint32(0xF8408420), "ldr x0, [x1], #0x8"),
		Entry("ldur", uint32(0xF85F8020), "ldur x0, [x1, #-0x8]"),
		Entry("sturb", uint32(0x38003020), "sturb w0, [x1, #0x3]"),
		Entry("ldtr", uint32(0xF8408820), "ldtr x0, [x1, #0x8]"),
		Entry("ldtrsb", uint32(0x38C00820), "ldtrsb w0, [x1]"),
		Entry("register offset", uint32(0xF8626820), "ldr x0, [x1, x2]"),
		Entry("scaled register offset", uint32(0xF8627820), "ldr x0, [x1, x2, lsl #3]"),
		Entry("extended register offset", uint32(0x38624820), "ldrb w0, [x1, w2, uxtw]"),
		Entry("scaled sign-extended offset", uint32(0xB8A2D820), "ldrsw x0, [x1, w2, sxtw #2]"),
		Entry("byte offset with an encoded lsl #0", uint32(0x38627820), "ldrb w0, [x1, x2, lsl #0]"),
		Entry("byte offset with an encoded uxtw #0", uint32(0x38625820), "ldrb w0, [x1, w2, uxtw #0]"),
		Entry("byte offset with an encoded sxtx #0", uint32(0x3862F820), "ldrb w0, [x1, x2, sxtx #0]"),
		Entry("byte offset without a scale", uint32(0x38626820), "ldrb w0, [x1, x2]"),
		Entry("prfm", uint32(0xF9800000), "prfm pldl1keep, [x0]"),
		Entry("prfm with offset", uint32(0xF9800433), "prfm pstl2strm, [x1, #0x8]"),
		Entry("prfum", uint32(0xF89FF00C), "prfum plil3keep, [x0, #-0x1]"),
		Entry("prfm reserved operation", uint32(0xF9800018), "prfm #24, [x0]"),
		Entry("ldr literal", uint32(0x58000040), "ldr x0, #0x8"),
		Entry("ldr literal backward", uint32(0x18FFFFE1), "ldr w1, #-0x4"),
		Entry("ldrsw literal", uint32(0x98000082), "ldrsw x2, #0x10"),
		Entry("prfm literal", uint32(0xD8000041), "prfm pldl1strm, #0x8"),
		Entry("ldp", uint32(0xA94007E0), "ldp x0, x1, [sp]"),
		Entry("stp pre-index", uint32(0xA9BF7BFD), "stp x29, x30, [sp, #-0x10]!"),
		Entry("ldp post-index", uint32(0x28C10440), "ldp w0, w1, [x2], #0x8"),
		Entry("ldpsw", uint32(0x69410440), "ldpsw x0, x1, [x2, #0x8]"),
		Entry("ldnp", uint32(0xA8410440), "ldnp x0, x1, [x2, #0x10]"),
		Entry("stnp", uint32(0x28000440), "stnp w0, w1, [x2]"),
		Entry("ldxr", uint32(0xC85F7C20), "ldxr x0, [x1]"),
		Entry("stxr", uint32(0xC8027C20), "stxr w2, x0, [x1]"),
		Entry("ldaxrb", uint32(0x085FFC20), "ldaxrb w0, [x1]"),
		Entry("stlxrh", uint32(0x4802FC20), "stlxrh w2, w0, [x1]"),
		Entry("ldxp", uint32(0xC87F0440), "ldxp x0, x1, [x2]"),
		Entry("stlxp", uint32(0xC8238440), "stlxp w3, x0, x1, [x2]"),
		Entry("ldar", uint32(0x88DFFFE0), "ldar w0, [sp]"),
		Entry("stlr", uint32(0xC89FFC20), "stlr x0, [x1]"),
		Entry("ldlarb", uint32(0x08DF7C20), "ldlarb w0, [x1]"),
		Entry("stllrh", uint32(0x489F7C20), "stllrh w0, [x1]"),
	)

	DescribeTable("logical and arithmetic (register)", expectText,
		Entry("and", uint32(0x8A020020), "and x0, x1, x2"),
		Entry("ands with shift", uint32(0x6A020C20), "ands w0, w1, w2, lsl #3"),
		Entry("ands to xzr is tst", uint32(0xEAC2103F), "tst x1, x2, ror #4"),
		Entry("orr from xzr is mov", uint32(0xAA0203E0), "mov x0, x2"),
		Entry("shifted orr from xzr is not mov", uint32(0xAA0207E0), "orr x0, xzr, x2, lsl #1"),
		Entry("orn from wzr is mvn", uint32(0x2A2203E0), "mvn w0, w2"),
		Entry("orn", uint32(0xAA220020), "orn x0, x1, x2"),
		Entry("bics", uint32(0xEA220020), "bics x0, x1, x2"),
		Entry("eon with shift", uint32(0xCAA20820), "eon x0, x1, x2, asr #2"),
		Entry("add", uint32(0x8B020020), "add x0, x1, x2"),
		Entry("subs with shift", uint32(0xEB020820), "subs x0, x1, x2, lsl #2"),
		Entry("subs to xzr is cmp", uint32(0xEB02003F), "cmp x1, x2"),
		Entry("adds to wzr is cmn", uint32(0x2B420C3F), "cmn w1, w2, lsr #3"),
		Entry("sub from xzr is neg", uint32(0xCB0203E0), "neg x0, x2"),
		Entry("subs from wzr is negs", uint32(0x6B8207E0), "negs w0, w2, asr #1"),
		Entry("extended add from sp", uint32(0x8B2163E0), "add x0, sp, x1"),
		Entry("extended add with uxtw", uint32(0x8B224020), "add x0, x1, w2, uxtw"),
		Entry("extended add to sp with amount", uint32(0x8B226BFF), "add sp, sp, x2, lsl #2"),
		Entry("extended sub with sxtw", uint32(0xCB22C820), "sub x0, x1, w2, sxtw #2"),
		Entry("extended cmp from sp", uint32(0xEB2263FF), "cmp sp, x2"),
		Entry("extended cmn", uint32(0xAB22003F), "cmn x1, w2, uxtb"),
		Entry("32-bit adds from wsp", uint32(0x2B2243E0), "adds w0, wsp, w2"),
		Entry("32-bit add from wsp", uint32(0x0B2243E0), "add w0, wsp, w2"),
		Entry("adc", uint32(0x9A020020), "adc x0, x1, x2"),
		Entry("sbcs", uint32(0x7A020020), "sbcs w0, w1, w2"),
		Entry("sbc from xzr is ngc", uint32(0xDA0203E0), "ngc x0, x2"),
		Entry("sbcs from wzr is ngcs", uint32(0x7A0203E0), "ngcs w0, w2"),
		Entry("ccmp register", uint32(0xFA410004), "ccmp x0, x1, #4, eq"),
		Entry("ccmn immediate", uint32(0x3A45B800), "ccmn w0, #0x5, #0, lt"),
	)

	DescribeTable("conditional select", expectText,
		Entry("csel", uint32(0x9A821020), "csel x0, x1, x2, ne"),
		Entry("cset inverts the condition", uint32(0x1A9F17E0), "cset w0, eq"),
		Entry("cinc", uint32(0x9A81B420), "cinc x0, x1, ge"),
		Entry("csetm", uint32(0xDA9FA3E0), "csetm x0, lt"),
		Entry("cinv", uint32(0x5A819020), "cinv w0, w1, hi"),
		Entry("cneg", uint32(0xDA815420), "cneg x0, x1, mi"),
		Entry("no cinc for al", uint32(0x9A81E420), "csinc x0, x1, x1, al"),
		Entry("no cset for nv", uint32(0x9A9FF7E0), "csinc x0, xzr, xzr, al"),
		Entry("no alias for distinct sources", uint32(0x9A820420), "csinc x0, x1, x2, eq"),
	)

	DescribeTable("multiply and 1/2-source", expectText,
		Entry("madd", uint32(0x9B020C20), "madd x0, x1, x2, x3"),
		Entry("mul", uint32(0x1B027C20), "mul w0, w1, w2"),
		Entry("mneg", uint32(0x9B02FC20), "mneg x0, x1, x2"),
		Entry("smull", uint32(0x9B227C20), "smull x0, w1, w2"),
		Entry("smnegl", uint32(0x9B22FC20), "smnegl x0, w1, w2"),
		Entry("umull", uint32(0x9BA27C20), "umull x0, w1, w2"),
		Entry("umnegl", uint32(0x9BA2FC20), "umnegl x0, w1, w2"),
		Entry("umaddl", uint32(0x9BA20C20), "umaddl x0, w1, w2, x3"),
		Entry("smulh", uint32(0x9B427C20), "smulh x0, x1, x2"),
		Entry("udiv", uint32(0x1AC20820), "udiv w0, w1, w2"),
		Entry("lslv", uint32(0x9AC22020), "lsl x0, x1, x2"),
		Entry("crc32b", uint32(0x1AC24020), "crc32b w0, w1, w2"),
		Entry("crc32cx", uint32(0x9AC25C20), "crc32cx w0, w1, x2"),
		Entry("pacga", uint32(0x9ADF3020), "pacga x0, x1, sp"),
		Entry("rbit", uint32(0xDAC00020), "rbit x0, x1"),
		Entry("rev 32-bit", uint32(0x5AC00820), "rev w0, w1"),
		Entry("rev 64-bit", uint32(0xDAC00C20), "rev x0, x1"),
		Entry("rev32", uint32(0xDAC00820), "rev32 x0, x1"),
		Entry("rev16", uint32(0x5AC00420), "rev16 w0, w1"),
		Entry("clz", uint32(0xDAC01020), "clz x0, x1"),
		Entry("cls", uint32(0x5AC01420), "cls w0, w1"),
		Entry("pacia", uint32(0xDAC10020), "pacia x0, x1"),
		Entry("pacia with sp", uint32(0xDAC103E0), "pacia x0, sp"),
		Entry("paciza", uint32(0xDAC123E0), "paciza x0"),
		Entry("autdzb", uint32(0xDAC13FE3), "autdzb x3"),
		Entry("xpaci", uint32(0xDAC143E0), "xpaci x0"),
		Entry("xpacd", uint32(0xDAC147E1), "xpacd x1"),
	)

	Describe("Disassemble", func() {
		It("should return the decode error for unallocated words", func() {
			text, err := disasm.Disassemble(0x00000000, 0x2000)
			Expect(errors.Is(err, insts.ErrUnallocated)).To(BeTrue())
			Expect(text).To(BeEmpty())
		})

		It("should print unmodelled encodings as unsupported", func() {
			// FMUL S0, S1, S2
			text, err := disasm.Disassemble(0x1E220820, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal(disasm.UnsupportedInsn))
		})
	})

	Describe("Print", func() {
		It("should print the unknown opcode as unsupported", func() {
			Expect(disasm.Print(insts.Instruction{})).To(Equal(disasm.UnsupportedInsn))
			Expect(disasm.Print(insts.Instruction{Op: insts.Op(9999)})).To(Equal(disasm.UnsupportedInsn))
		})

		It("should print unknown register names as unsupported", func() {
			inst := insts.Instruction{
				Op:       insts.OpBR,
				Operands: []insts.Operand{insts.Register{Name: 40, Size: 64}},
			}
			Expect(disasm.Print(inst)).To(Equal("br " + disasm.UnsupportedReg))

			inst.Operands[0] = insts.Register{Name: 1, Size: 16}
			Expect(disasm.Print(inst)).To(Equal("br " + disasm.UnsupportedReg))
		})

		It("should not alias al or nv", func() {
			for _, cond := range []insts.Cond{insts.CondAL, insts.CondNV} {
				inst := insts.Instruction{
					Op:       insts.OpCSNEG,
					Cond:     cond,
					Operands: []insts.Operand{x(0), x(1), x(1)},
				}
				Expect(disasm.Print(inst)).To(Equal("csneg x0, x1, x1, al"))
			}
		})

		It("should be a pure function of the instruction", func() {
			decoder := insts.NewDecoder()
			for _, word := range []uint32{0x910003E0, 0x1A9F17E0, 0xA9BF7BFD, 0xD5087803} {
				inst, err := decoder.Decode(word, 0x1000)
				Expect(err).NotTo(HaveOccurred())

				first := disasm.Print(inst)
				Expect(disasm.Print(inst)).To(Equal(first))
				Expect(first).NotTo(HaveSuffix(" "))
				Expect(first).NotTo(ContainSubstring("\n"))
			}
		})

		It("should render every modelled word without markers", func() {
			decoder := insts.NewDecoder()
			printed := 0

			for i := uint32(0); i < 1<<18; i++ {
				word := i * 0x9E3779B9
				inst, err := decoder.Decode(word, 0x1000)
				if err != nil || inst.Op == insts.OpUnknown {
					continue
				}
				printed++

				text := disasm.Print(inst)
				Expect(text).NotTo(BeEmpty(), "word 0x%08x", word)
				Expect(text).NotTo(ContainSubstring("<unsupported"), "word 0x%08x", word)
				Expect(text).NotTo(ContainSubstring(", ,"), "word 0x%08x", word)
				Expect(text).To(Equal(strings.TrimSpace(text)), "word 0x%08x", word)
			}

			Expect(printed).To(BeNumerically(">", 1000))
		})

		It("should render every mul alias only for a zero addend", func() {
			inst := insts.Instruction{
				Op:       insts.OpMSUB,
				Operands: []insts.Operand{x(0), x(1), x(2), xzr},
			}
			Expect(disasm.Print(inst)).To(Equal("mneg x0, x1, x2"))

			inst.Operands[3] = x(3)
			Expect(disasm.Print(inst)).To(Equal("msub x0, x1, x2, x3"))
		})
	})

	Describe("Fprint", func() {
		It("should write the rendering without a newline", func() {
			var buf bytes.Buffer
			inst := insts.Instruction{Op: insts.OpNOP}

			Expect(disasm.Fprint(&buf, inst)).To(Succeed())
			Expect(buf.String()).To(Equal("nop"))
		})
	})
})
