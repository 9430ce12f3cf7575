// Package main checks the disassembler against the arm64asm reference.
// The curated words must agree on the mnemonic; a random sample is reported
// for information only, since the two disagree on some alias choices.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/sarchlab/a64dis/disasm"
	"github.com/sarchlab/a64dis/disasm/xcheck"
	"github.com/sarchlab/a64dis/insts"
)

// checkCurated disassembles words whose rendering both sides agree on.
func checkCurated() bool {
	testCases := []uint32{
		0x91000400, // add x0, x0, #0x1
		0xF1000440, // subs x0, x2, #0x1
		0x54000041, // b.ne #0x8
		0xD503201F, // nop
		0xF8408420, // ldr x0, [x1], #0x8
		0xF8008420, // str x0, [x1], #0x8
		0xD4000001, // svc #0
		0xD65F03C0, // ret
	}

	fmt.Println("Checking curated words...")

	ok := true
	for i, word := range testCases {
		ours, err := disasm.Disassemble(word, 0x1000)
		if err != nil {
			fmt.Printf("FAIL case %d: 0x%08x: %v\n", i, word, err)
			ok = false
			continue
		}

		ref, agree, err := xcheck.Compare(word, ours)
		if err != nil || !agree {
			fmt.Printf("FAIL case %d: 0x%08x: %q, reference %q (%v)\n", i, word, ours, ref, err)
			ok = false
			continue
		}

		fmt.Printf("ok   case %d: 0x%08x  %s\n", i, word, ours)
	}

	return ok
}

// sampleRandom reports how often mnemonics agree over random words that both
// sides decode.
func sampleRandom(n int, seed int64) {
	fmt.Printf("\nSampling %d random words (seed %d)...\n", n, seed)

	rng := rand.New(rand.NewSource(seed))

	var both, agreed, unsupported, onlyOurs, onlyRef int
	for i := 0; i < n; i++ {
		word := rng.Uint32()

		ours, err := disasm.Disassemble(word, 0)
		_, refErr := xcheck.Reference(word)

		switch {
		case errors.Is(err, insts.ErrUnallocated):
			if refErr == nil {
				onlyRef++
			}
			continue
		case refErr != nil:
			onlyOurs++
			continue
		case ours == disasm.UnsupportedInsn:
			unsupported++
			continue
		}

		both++
		if _, agree, _ := xcheck.Compare(word, ours); agree {
			agreed++
		}
	}

	fmt.Printf("Decoded by both: %d\n", both)
	if both > 0 {
		fmt.Printf("Mnemonic agreement: %d (%.1f%%)\n", agreed, 100*float64(agreed)/float64(both))
	}
	fmt.Printf("Unmodelled here: %d\n", unsupported)
	fmt.Printf("Unallocated here only: %d\n", onlyRef)
	fmt.Printf("Unallocated in reference only: %d\n", onlyOurs)
}

func main() {
	fmt.Println("a64dis Accuracy Validation")
	fmt.Println("==========================")

	passed := checkCurated()
	sampleRandom(100000, 1)

	fmt.Println("\n==========================")
	if passed {
		fmt.Println("ALL CURATED WORDS AGREE")
		os.Exit(0)
	}
	fmt.Println("CURATED WORDS DISAGREE")
	os.Exit(1)
}
