package disasm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64dis/disasm"
	"github.com/sarchlab/a64dis/insts"
)

var _ = Describe("Operand formatting", func() {
	Describe("immediates", func() {
		It("should mask to the declared size", func() {
			Expect(disasm.FormatImmediate(insts.Immediate{Value: 0xFFFFFFF0, Size: 32})).To(Equal("#0xfffffff0"))
			Expect(disasm.FormatImmediate(insts.Immediate{Value: 0x1FF, Size: 8})).To(Equal("#0xff"))
			Expect(disasm.FormatImmediate(insts.Immediate{Value: 0, Size: 64})).To(Equal("#0x0"))
		})

		It("should take the sign from the top bit of the size", func() {
			Expect(disasm.FormatSignedImmediate(insts.Immediate{Value: 0xFFFFFFF0, Size: 32})).To(Equal("#-0x10"))
			Expect(disasm.FormatSignedImmediate(insts.Immediate{Value: 0x80, Size: 8})).To(Equal("#-0x80"))
			Expect(disasm.FormatSignedImmediate(insts.Immediate{Value: 0xF0, Size: 8})).To(Equal("#-0x10"))
			Expect(disasm.FormatSignedImmediate(insts.Immediate{Value: 0x7F, Size: 8})).To(Equal("#0x7f"))
			Expect(disasm.FormatSignedImmediate(insts.Immediate{Value: ^uint64(7), Size: 64})).To(Equal("#-0x8"))
		})
	})

	DescribeTable("registers",
		func(r insts.Register, want string) {
			Expect(disasm.FormatRegister(r)).To(Equal(want))
		},
		Entry("x0", insts.Register{Name: 0, Size: 64}, "x0"),
		Entry("w30", insts.Register{Name: insts.RegX30, Size: 32}, "w30"),
		Entry("xzr", insts.Register{Name: insts.RegXZR, Size: 64}, "xzr"),
		Entry("wzr", insts.Register{Name: insts.RegXZR, Size: 32}, "wzr"),
		Entry("sp", insts.Register{Name: insts.RegSP, Size: 64}, "sp"),
		Entry("wsp", insts.Register{Name: insts.RegSP, Size: 32}, "wsp"),
		Entry("pc", insts.Register{Name: insts.RegPC, Size: 64}, "pc"),
		Entry("unknown name", insts.Register{Name: 99, Size: 64}, disasm.UnsupportedReg),
		Entry("unknown size", insts.Register{Name: 3, Size: 8}, disasm.UnsupportedReg),
	)

	It("should print unnamed system registers by their fields", func() {
		r := insts.SystemRegister{Op0: 3, Op1: 0, CRn: 15, CRm: 2, Op2: 0}
		Expect(disasm.FormatSystemRegister(r)).To(Equal("S3_0_C15_C2_0"))

		r.Name = insts.SysRegNZCV
		Expect(disasm.FormatSystemRegister(r)).To(Equal("NZCV"))
	})

	It("should print shifts and extends without a separator", func() {
		Expect(disasm.FormatShift(insts.Shift{})).To(BeEmpty())
		Expect(disasm.FormatShift(insts.Shift{Type: insts.ShiftLSL, Count: 12})).To(Equal("lsl #12"))
		Expect(disasm.FormatShift(insts.Shift{Type: insts.ShiftROR, Count: 3})).To(Equal("ror #3"))

		Expect(disasm.FormatExtend(insts.Extend{})).To(BeEmpty())
		Expect(disasm.FormatExtend(insts.Extend{Type: insts.ExtendLSL})).To(BeEmpty())
		Expect(disasm.FormatExtend(insts.Extend{Type: insts.ExtendLSL, Count: 2})).To(Equal("lsl #2"))
		Expect(disasm.FormatExtend(insts.Extend{Type: insts.ExtendUXTW})).To(Equal("uxtw"))
		Expect(disasm.FormatExtend(insts.Extend{Type: insts.ExtendSXTX, Count: 3})).To(Equal("sxtx #3"))
	})

	Describe("addresses", func() {
		base := insts.Register{Name: 1, Size: 64}

		DescribeTable("immediate offsets",
			func(a insts.ImmediateOffset, want string) {
				Expect(disasm.FormatImmediateOffset(a)).To(Equal(want))
			},
			Entry("base only", insts.ImmediateOffset{Base: base, Offset: insts.Immediate{Size: 64}}, "[x1]"),
			Entry("offset", insts.ImmediateOffset{Base: base, Offset: insts.Immediate{Value: 8, Size: 64}}, "[x1, #0x8]"),
			Entry("pre-index keeps a zero offset",
				insts.ImmediateOffset{Base: base, Offset: insts.Immediate{Size: 64}, Writeback: true}, "[x1, #0x0]!"),
			Entry("post-index keeps a zero offset",
				insts.ImmediateOffset{Base: base, Offset: insts.Immediate{Size: 64}, Writeback: true, PostIndex: true},
				"[x1], #0x0"),
			Entry("negative post-index",
				insts.ImmediateOffset{Base: base, Offset: insts.Immediate{Value: ^uint64(7), Size: 64}, Writeback: true, PostIndex: true},
				"[x1], #-0x8"),
		)

		It("should print register offsets with their extend", func() {
			a := insts.RegisterOffset{
				Base:   base,
				Offset: insts.Register{Name: 2, Size: 64},
				Extend: insts.Extend{Type: insts.ExtendLSL, Count: 3},
			}
			Expect(disasm.FormatRegisterOffset(a)).To(Equal("[x1, x2, lsl #3]"))

			a.Offset.Size = 32
			a.Extend = insts.Extend{Type: insts.ExtendSXTW}
			Expect(disasm.FormatRegisterOffset(a)).To(Equal("[x1, w2, sxtw]"))

			a.Offset.Size = 64
			a.Extend = insts.Extend{Type: insts.ExtendLSL, Explicit: true}
			Expect(disasm.FormatRegisterOffset(a)).To(Equal("[x1, x2, lsl #0]"))
		})
	})

	DescribeTable("prefetch operations",
		func(v uint64, want string) {
			Expect(disasm.FormatPrefetchOp(insts.Immediate{Value: v, Size: 8})).To(Equal(want))
		},
		Entry("pldl1keep", uint64(0), "pldl1keep"),
		Entry("plil1strm", uint64(0b01001), "plil1strm"),
		Entry("pstl3strm", uint64(0b10101), "pstl3strm"),
		Entry("reserved target", uint64(0b00110), "#6"),
		Entry("reserved type", uint64(0b11000), "#24"),
	)

	DescribeTable("barrier options",
		func(v uint64, want string) {
			Expect(disasm.FormatBarrierOption(insts.Immediate{Value: v, Size: 8})).To(Equal(want))
		},
		Entry("sy", uint64(15), "sy"),
		Entry("st", uint64(14), "st"),
		Entry("ld", uint64(13), "ld"),
		Entry("ish", uint64(11), "ish"),
		Entry("ishst", uint64(10), "ishst"),
		Entry("ishld", uint64(9), "ishld"),
		Entry("nsh", uint64(7), "nsh"),
		Entry("nshst", uint64(6), "nshst"),
		Entry("nshld", uint64(5), "nshld"),
		Entry("osh", uint64(3), "osh"),
		Entry("oshst", uint64(2), "oshst"),
		Entry("oshld", uint64(1), "oshld"),
		Entry("reserved 0", uint64(0), "#0"),
		Entry("reserved 12", uint64(12), "#12"),
	)

	It("should print every operand kind through FormatOperand", func() {
		Expect(disasm.FormatOperand(insts.Immediate{Value: 1, Size: 8})).To(Equal("#0x1"))
		Expect(disasm.FormatOperand(insts.Register{Name: insts.RegSP, Size: 64})).To(Equal("sp"))
		Expect(disasm.FormatOperand(insts.Shift{Type: insts.ShiftASR, Count: 1})).To(Equal("asr #1"))
		Expect(disasm.FormatOperand(nil)).To(Equal(disasm.UnsupportedOpnd))
	})
})
