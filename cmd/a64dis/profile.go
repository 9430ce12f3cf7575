package main

import (
	"fmt"
	"runtime/pprof"

	"github.com/spf13/afero"
)

// profiler writes CPU and heap profiles of a run.
type profiler struct {
	cpuPath string
	memPath string

	cpuFile afero.File
}

func (p *profiler) start(fs afero.Fs) error {
	if p.cpuPath == "" {
		return nil
	}

	f, err := fs.Create(p.cpuPath)
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("starting CPU profile: %w", err)
	}
	p.cpuFile = f

	return nil
}

func (p *profiler) stop(fs afero.Fs) error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		_ = p.cpuFile.Close()
		p.cpuFile = nil
	}

	if p.memPath == "" {
		return nil
	}

	f, err := fs.Create(p.memPath)
	if err != nil {
		return fmt.Errorf("creating memory profile: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("writing memory profile: %w", err)
	}
	return nil
}
