package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/a64dis/disasm"
	"github.com/sarchlab/a64dis/disasm/xcheck"
	"github.com/sarchlab/a64dis/loader"
)

// options holds the flags shared by the commands.
type options struct {
	raw     bool
	base    uint64
	offset  uint64
	size    uint64
	jobs    int
	compare bool
	dump    bool
	verbose bool

	profile profiler
}

var dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

// execute runs the command line args. The profiles are written even when the
// command fails.
func execute(gs *globalState, args []string) (err error) {
	opts := &options{}
	cmd := newRootCmd(gs, opts)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(gs.stdout)

	defer func() {
		err = errors.Join(err, opts.profile.stop(gs.fs))
	}()

	return cmd.Execute()
}

func newRootCmd(gs *globalState, opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "a64dis [flags] <file>",
		Short: "Disassemble AArch64 machine code",
		Long: `Disassemble the executable segments of an AArch64 ELF file, or a flat
binary with --raw. Each word prints as

  <addr>:  <word>  <text>`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if opts.verbose {
				gs.logger.SetLevel(log.DebugLevel)
			}
			return opts.profile.start(gs.fs)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return disassembleFile(gs, opts, args[0])
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.raw, "raw", false, "treat the file as a flat binary instead of ELF")
	flags.Uint64Var(&opts.base, "base", 0, "load address of a flat binary")
	flags.Uint64Var(&opts.offset, "offset", 0, "bytes to skip at the start of each code segment")
	flags.Uint64Var(&opts.size, "size", 0, "bytes to disassemble per code segment (0 for all)")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "chunks to disassemble in parallel (0 for GOMAXPROCS)")

	pflags := rootCmd.PersistentFlags()
	pflags.BoolVar(&opts.compare, "compare", false, "append the arm64asm rendering of each word")
	pflags.BoolVar(&opts.dump, "dump", false, "dump each decoded instruction")
	pflags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	pflags.StringVar(&opts.profile.cpuPath, "cpuprofile", "", "write a CPU profile to `file`")
	pflags.StringVar(&opts.profile.memPath, "memprofile", "", "write a heap profile to `file`")

	rootCmd.AddCommand(newWordsCmd(gs, opts))

	return rootCmd
}

func disassembleFile(gs *globalState, opts *options, path string) error {
	var (
		prog *loader.Program
		err  error
	)
	if opts.raw {
		prog, err = loader.LoadRaw(gs.fs, path, opts.base)
	} else {
		prog, err = loader.Load(gs.fs, path)
	}
	if err != nil {
		return err
	}

	segs := prog.Executable()
	gs.logger.WithFields(log.Fields{
		"path":     path,
		"entry":    fmt.Sprintf("0x%x", prog.EntryPoint),
		"segments": len(segs),
	}).Debug("loaded program")

	for _, seg := range segs {
		data, addr := window(seg, opts.offset, opts.size)

		lines, err := disasm.Stream(gs.ctx, data, addr, disasm.Options{Jobs: opts.jobs})
		if err != nil {
			return fmt.Errorf("disassembling segment at 0x%x: %w", seg.VirtAddr, err)
		}

		unallocated := 0
		for _, l := range lines {
			if l.Err != nil {
				unallocated++
				logUnallocated(gs.logger, l)
			}
			if err := writeLine(gs.stdout, opts, l); err != nil {
				return err
			}
		}

		gs.logger.WithFields(log.Fields{
			"addr":        fmt.Sprintf("0x%x", addr),
			"words":       len(data) / 4,
			"unallocated": unallocated,
		}).Debug("disassembled segment")
	}

	return nil
}

// window returns the part of a segment selected by offset and size, and its
// address.
func window(seg loader.Segment, offset, size uint64) ([]byte, uint64) {
	data := seg.Data
	if offset >= uint64(len(data)) {
		return nil, seg.VirtAddr + offset
	}
	data = data[offset:]
	if size != 0 && size < uint64(len(data)) {
		data = data[:size]
	}
	return data, seg.VirtAddr + offset
}

// writeLine prints one disassembled line with the optional reference
// rendering and instruction dump.
func writeLine(w io.Writer, opts *options, l disasm.Line) error {
	if strings.HasPrefix(l.Text, ".byte") {
		_, err := fmt.Fprintf(w, "%x:  %8s  %s\n", l.Addr, "", l.Text)
		return err
	}

	text := fmt.Sprintf("%x:  %08x  %s", l.Addr, l.Word, l.Text)
	if opts.compare {
		text += reference(l.Word, l.Text)
	}
	if _, err := fmt.Fprintln(w, text); err != nil {
		return err
	}

	if opts.dump && l.Err == nil {
		dumper.Fdump(w, l.Inst)
	}
	return nil
}

func logUnallocated(logger *log.Logger, l disasm.Line) {
	logger.WithFields(log.Fields{
		"word": fmt.Sprintf("0x%08x", l.Word),
		"addr": fmt.Sprintf("0x%x", l.Addr),
	}).WithError(l.Err).Debug("unallocated word")
}

// reference renders the "; ref:" suffix. A "!" marks a mnemonic mismatch.
func reference(word uint32, text string) string {
	ref, agree, err := xcheck.Compare(word, text)
	switch {
	case err != nil:
		return "  ; ref: ?"
	case agree:
		return "  ; ref: " + ref
	default:
		return "  ; ref: " + ref + " !"
	}
}
