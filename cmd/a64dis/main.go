// Package main provides a64dis, an AArch64 disassembler for ELF executables
// and flat binaries.
package main

import (
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// globalState carries the process-wide handles the commands use, so tests
// can substitute an in-memory filesystem and buffers.
type globalState struct {
	ctx    context.Context
	fs     afero.Fs
	stdout io.Writer
	logger *log.Logger
}

func newGlobalState(ctx context.Context) *globalState {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(log.InfoLevel)

	return &globalState{
		ctx:    ctx,
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		logger: logger,
	}
}

func main() {
	gs := newGlobalState(context.Background())

	if err := execute(gs, os.Args[1:]); err != nil {
		gs.logger.WithError(err).Error("a64dis failed")
		os.Exit(1)
	}
}
