package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/sarchlab/a64dis/loader"
)

func words(ws ...uint32) []byte {
	data := make([]byte, 4*len(ws))
	for i, w := range ws {
		binary.LittleEndian.PutUint32(data[4*i:], w)
	}
	return data
}

var _ = Describe("a64dis", func() {
	var (
		gs     *globalState
		stdout *bytes.Buffer
	)

	BeforeEach(func() {
		stdout = &bytes.Buffer{}
		logger := log.New()
		logger.SetOutput(io.Discard)

		gs = &globalState{
			ctx:    context.Background(),
			fs:     afero.NewMemMapFs(),
			stdout: stdout,
			logger: logger,
		}
	})

	run := func(args ...string) error {
		return execute(gs, args)
	}

	output := func() []string {
		return strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	}

	Describe("flat binaries", func() {
		BeforeEach(func() {
			// nop; mov x0, sp; <unallocated>; ret
			data := words(0xD503201F, 0x910003E0, 0x00000000, 0xD65F03C0)
			Expect(afero.WriteFile(gs.fs, "/code.bin", data, 0o644)).To(Succeed())
		})

		It("should print one line per word", func() {
			Expect(run("--raw", "--base", "0x1000", "/code.bin")).To(Succeed())
			Expect(output()).To(Equal([]string{
				"1000:  d503201f  nop",
				"1004:  910003e0  mov x0, sp",
				"1008:  00000000  .inst 0x00000000",
				"100c:  d65f03c0  ret",
			}))
		})

		It("should honour offset and size", func() {
			Expect(run("--raw", "--offset", "4", "--size", "8", "/code.bin")).To(Succeed())
			Expect(output()).To(Equal([]string{
				"4:  910003e0  mov x0, sp",
				"8:  00000000  .inst 0x00000000",
			}))
		})

		It("should print nothing when the offset is past the end", func() {
			Expect(run("--raw", "--offset", "64", "/code.bin")).To(Succeed())
			Expect(stdout.String()).To(BeEmpty())
		})

		It("should append the reference rendering", func() {
			Expect(run("--raw", "--size", "4", "--compare", "/code.bin")).To(Succeed())
			Expect(output()).To(Equal([]string{"0:  d503201f  nop  ; ref: nop"}))
		})

		It("should dump decoded instructions", func() {
			Expect(run("--raw", "--size", "4", "--dump", "/code.bin")).To(Succeed())
			Expect(stdout.String()).To(HavePrefix("0:  d503201f  nop\n"))
			Expect(stdout.String()).To(ContainSubstring("Address"))
		})

		It("should print trailing bytes", func() {
			data := append(words(0xD503201F), 0xAB, 0x01)
			Expect(afero.WriteFile(gs.fs, "/tail.bin", data, 0o644)).To(Succeed())

			Expect(run("--raw", "/tail.bin")).To(Succeed())
			Expect(output()).To(Equal([]string{
				"0:  d503201f  nop",
				"4:            .byte 0xab, 0x01",
			}))
		})
	})

	It("should fail for a missing file", func() {
		Expect(run("--raw", "/missing.bin")).To(MatchError(ContainSubstring("failed to open")))
	})

	It("should fail for a file that is not ELF", func() {
		Expect(afero.WriteFile(gs.fs, "/a.out", []byte("text"), 0o644)).To(Succeed())
		Expect(run("/a.out")).To(MatchError(ContainSubstring("ELF")))
	})

	It("should require exactly one file", func() {
		Expect(run()).To(HaveOccurred())
		Expect(run("a", "b")).To(HaveOccurred())
	})

	Describe("words", func() {
		It("should disassemble words from the command line", func() {
			Expect(run("words", "--addr", "0x2000", "d503201f", "0x54000040", "0")).To(Succeed())
			Expect(output()).To(Equal([]string{
				"2000:  d503201f  nop",
				"2004:  54000040  b.eq #0x8",
				"2008:  00000000  .inst 0x00000000",
			}))
		})

		It("should reject words that are not hex", func() {
			Expect(run("words", "xyz")).To(MatchError(ContainSubstring("invalid word")))
			Expect(run("words", "123456789")).To(HaveOccurred())
		})

		It("should accept the persistent flags", func() {
			Expect(run("words", "--compare", "d65f03c0")).To(Succeed())
			Expect(output()).To(Equal([]string{"0:  d65f03c0  ret  ; ref: ret"}))
		})
	})

	Describe("logging", func() {
		var logs *bytes.Buffer

		BeforeEach(func() {
			logs = &bytes.Buffer{}
			gs.logger.SetOutput(logs)
			gs.logger.SetLevel(log.InfoLevel)
		})

		It("should log unallocated words when verbose", func() {
			Expect(run("-v", "words", "--addr", "0x40", "0")).To(Succeed())
			Expect(logs.String()).To(ContainSubstring("unallocated word"))
			Expect(logs.String()).To(ContainSubstring("word=0x00000000"))
			Expect(logs.String()).To(ContainSubstring("addr=0x40"))
		})

		It("should stay quiet by default", func() {
			Expect(run("words", "0")).To(Succeed())
			Expect(logs.String()).To(BeEmpty())
		})
	})

	It("should flush the CPU profile when the command fails", func() {
		Expect(run("--cpuprofile", "/cpu.prof", "--raw", "/missing.bin")).NotTo(Succeed())

		info, err := gs.fs.Stat("/cpu.prof")
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Size()).To(BeNumerically(">", 0))
	})

	It("should write the heap profile when the command fails", func() {
		Expect(run("--memprofile", "/heap.prof", "--raw", "/missing.bin")).NotTo(Succeed())

		info, err := gs.fs.Stat("/heap.prof")
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Size()).To(BeNumerically(">", 0))
	})

	It("should write a heap profile", func() {
		Expect(run("--memprofile", "/heap.prof", "words", "d503201f")).To(Succeed())

		info, err := gs.fs.Stat("/heap.prof")
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Size()).To(BeNumerically(">", 0))
	})

	Describe("window", func() {
		seg := loader.Segment{VirtAddr: 0x100, Data: words(1, 2, 3, 4)}

		It("should return the whole segment by default", func() {
			data, addr := window(seg, 0, 0)
			Expect(data).To(HaveLen(16))
			Expect(addr).To(Equal(uint64(0x100)))
		})

		It("should clamp the size to the segment", func() {
			data, addr := window(seg, 8, 100)
			Expect(data).To(Equal(words(3, 4)))
			Expect(addr).To(Equal(uint64(0x108)))
		})
	})
})
