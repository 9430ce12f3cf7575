package disasm

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/a64dis/insts"
)

// Options configures Stream.
type Options struct {
	// Jobs bounds the number of chunks disassembled at once. Zero means
	// GOMAXPROCS.
	Jobs int

	// ChunkWords is the number of words per chunk. Zero means 4096.
	ChunkWords int
}

const defaultChunkWords = 4096

// Line is the disassembly of one word of a code region.
type Line struct {
	Addr uint64
	Word uint32
	Text string
	Inst insts.Instruction

	// Err is the decode error for unallocated words.
	Err error
}

// Stream disassembles a little-endian code region starting at base. Chunks
// are processed concurrently and the lines are returned in address order.
// Unallocated words do not stop the stream; they yield a ".inst" line with
// Err set. A trailing partial word yields a ".byte" line.
func Stream(ctx context.Context, data []byte, base uint64, opts Options) ([]Line, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	chunk := opts.ChunkWords
	if chunk <= 0 {
		chunk = defaultChunkWords
	}

	words := len(data) / 4
	tail := data[words*4:]

	lines := make([]Line, words, words+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for start := 0; start < words; start += chunk {
		start := start
		end := min(start+chunk, words)

		if err := gctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			d := insts.NewDecoder()
			for i := start; i < end; i++ {
				addr := base + uint64(i)*4
				word := binary.LittleEndian.Uint32(data[i*4:])
				lines[i] = disassembleWord(d, word, addr)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(tail) > 0 {
		lines = append(lines, Line{
			Addr: base + uint64(words)*4,
			Text: byteDirective(tail),
		})
	}

	return lines, nil
}

func disassembleWord(d *insts.Decoder, word uint32, addr uint64) Line {
	l := Line{Addr: addr, Word: word}

	inst, err := d.Decode(word, addr)
	switch {
	case errors.Is(err, insts.ErrUnallocated):
		l.Text = fmt.Sprintf(".inst 0x%08x", word)
		l.Err = err
	case err != nil:
		l.Text = UnsupportedInsn
		l.Err = err
	default:
		l.Text = Print(inst)
	}
	l.Inst = inst

	return l
}

func byteDirective(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("0x%02x", v)
	}
	return ".byte " + strings.Join(parts, ", ")
}
