// Measure decode and print allocations and throughput over a fixed word mix.
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sarchlab/a64dis/disasm"
	"github.com/sarchlab/a64dis/insts"
)

// mix covers the common integer families.
var mix = []uint32{
	0x91002820, // add x0, x1, #0xa
	0xF100403F, // cmp x1, #0x10
	0x8B020020, // add x0, x1, x2
	0xAA0103E0, // mov x0, x1
	0xD2800540, // mov x0, #0x2a
	0x54000041, // b.ne #0x8
	0x94000010, // bl
	0xF9400420, // ldr x0, [x1, #0x8]
	0xA9BF7BFD, // stp x29, x30, [sp, #-0x10]!
	0x9B027C20, // mul x0, x1, x2
	0x9A9F17E0, // cset x0, eq
	0xD65F03C0, // ret
}

func main() {
	decoder := insts.NewDecoder()

	// Warm up
	for i := 0; i < 1000; i++ {
		for j, word := range mix {
			inst, _ := decoder.Decode(word, uint64(j)*4)
			_ = disasm.Print(inst)
		}
	}

	decodeAllocs, decodeBytes, decodeTime := measure(func() {
		for j, word := range mix {
			_, _ = decoder.Decode(word, uint64(j)*4)
		}
	})
	printAllocs, printBytes, printTime := measure(func() {
		for j, word := range mix {
			inst, _ := decoder.Decode(word, uint64(j)*4)
			_ = disasm.Print(inst)
		}
	})

	total := float64(iterations * len(mix))

	fmt.Printf("Decoder Validation Results:\n")
	fmt.Printf("===========================\n")
	fmt.Printf("Words per pass: %d, passes: %d\n", len(mix), iterations)
	fmt.Printf("\nDecode only\n")
	fmt.Printf("  Time elapsed: %v\n", decodeTime)
	fmt.Printf("  Decodes per second: %.0f\n", total/decodeTime.Seconds())
	fmt.Printf("  Allocations per decode: %.3f\n", float64(decodeAllocs)/total)
	fmt.Printf("  Bytes per decode: %.1f\n", float64(decodeBytes)/total)
	fmt.Printf("\nDecode and print\n")
	fmt.Printf("  Time elapsed: %v\n", printTime)
	fmt.Printf("  Words per second: %.0f\n", total/printTime.Seconds())
	fmt.Printf("  Allocations per word: %.3f\n", float64(printAllocs)/total)
	fmt.Printf("  Bytes per word: %.1f\n", float64(printBytes)/total)

	if decodeAllocs == 0 {
		fmt.Printf("\nOK: decoding does not allocate\n")
	} else {
		fmt.Printf("\nWARNING: decoding allocates %.3f times per word\n", float64(decodeAllocs)/total)
	}
}

const iterations = 100000

func measure(pass func()) (allocs, bytes uint64, elapsed time.Duration) {
	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		pass()
	}
	elapsed = time.Since(start)

	runtime.ReadMemStats(&m2)
	return m2.Mallocs - m1.Mallocs, m2.TotalAlloc - m1.TotalAlloc, elapsed
}
