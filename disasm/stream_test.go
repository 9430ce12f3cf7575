package disasm_test

import (
	"context"
	"encoding/binary"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/a64dis/disasm"
	"github.com/sarchlab/a64dis/insts"
)

func encode(words ...uint32) []byte {
	data := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(data[4*i:], w)
	}
	return data
}

var _ = Describe("Stream", func() {
	It("should disassemble words in address order", func() {
		data := encode(0xD503201F, 0x910003E0, 0x00000000, 0xD65F03C0)

		lines, err := disasm.Stream(context.Background(), data, 0x4000, disasm.Options{Jobs: 2, ChunkWords: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(HaveLen(4))

		Expect(lines[0].Addr).To(Equal(uint64(0x4000)))
		Expect(lines[0].Text).To(Equal("nop"))
		Expect(lines[1].Text).To(Equal("mov x0, sp"))
		Expect(lines[1].Inst.Address).To(Equal(uint64(0x4004)))
		Expect(lines[3].Addr).To(Equal(uint64(0x400C)))
		Expect(lines[3].Text).To(Equal("ret"))
	})

	It("should continue past unallocated words", func() {
		lines, err := disasm.Stream(context.Background(), encode(0x00000000, 0xD503201F), 0, disasm.Options{})
		Expect(err).NotTo(HaveOccurred())

		Expect(lines[0].Text).To(Equal(".inst 0x00000000"))
		Expect(errors.Is(lines[0].Err, insts.ErrUnallocated)).To(BeTrue())
		Expect(lines[1].Text).To(Equal("nop"))
		Expect(lines[1].Err).NotTo(HaveOccurred())
	})

	It("should report a trailing partial word as bytes", func() {
		data := append(encode(0xD503201F), 0xAB, 0x01)

		lines, err := disasm.Stream(context.Background(), data, 0x100, disasm.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(HaveLen(2))
		Expect(lines[1].Addr).To(Equal(uint64(0x104)))
		Expect(lines[1].Text).To(Equal(".byte 0xab, 0x01"))
		Expect(lines[1].Err).NotTo(HaveOccurred())
	})

	It("should return nothing for empty input", func() {
		lines, err := disasm.Stream(context.Background(), nil, 0, disasm.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(BeEmpty())
	})

	It("should agree with sequential disassembly across chunk sizes", func() {
		words := make([]uint32, 0, 300)
		for i := 0; i < 100; i++ {
			words = append(words, 0x91004020, 0xA9BF7BFD, 0x1A9F17E0)
		}
		data := encode(words...)

		want, err := disasm.Stream(context.Background(), data, 0, disasm.Options{Jobs: 1, ChunkWords: len(words)})
		Expect(err).NotTo(HaveOccurred())

		for _, chunk := range []int{1, 7, 64} {
			got, err := disasm.Stream(context.Background(), data, 0, disasm.Options{Jobs: 4, ChunkWords: chunk})
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		}
	})

	It("should stop on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := disasm.Stream(ctx, encode(0xD503201F), 0, disasm.Options{})
		Expect(err).To(MatchError(context.Canceled))
	})
})
