// Package ios resolves a benchmarked file down to the physical disk(s)
// underneath it and snapshots the kernel's per-disk counters, so that a timed
// run can be bracketed with before/after readings of the block layer.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lufia/iostat"
)

// e.g. disk1s5 => disk1
var wholeDisk = regexp.MustCompile(`^disk\d+`)

// ResolveTarget maps the file at `path` (or, if the file does not exist yet,
// its parent directory) to the filesystem it lives on and the whole disk
// backing that filesystem.
func ResolveTarget(path string) (*Target, error) {
	if _, err := os.Stat(path); err != nil {
		path = filepath.Dir(path)
	}
	getFSCommand := fmt.Sprintf("df -P '%s' | awk 'END{print $1}'", path)
	outputBytes, err := exec.Command("sh", "-c", getFSCommand).Output()
	if err != nil || len(outputBytes) == 0 {
		return nil, fmt.Errorf("failed to retrieve FS info from path %q, err: %v", path, err)
	}
	fs := strings.TrimSpace(string(outputBytes))
	disk := wholeDisk.FindString(trimDev(fs))
	if disk == "" {
		return nil, fmt.Errorf("no disks matching filesystem %q", fs)
	}
	return &Target{Fs: fs, Disks: []string{disk}}, nil
}

// Snapshot reads the current counters of every disk backing the target.
// Darwin reports bytes and busy times only; completion and merge counts
// stay zero.
func (t *Target) Snapshot() AllBlockStats {
	driveStats, err := iostat.ReadDriveStats()
	if err != nil {
		return AllBlockStats{}
	}
	all := make(AllBlockStats, len(t.Disks))
	for _, driveStat := range driveStats {
		if !t.hasDisk(driveStat.Name) {
			continue
		}
		readMs := driveStat.TotalReadTime.Milliseconds()
		writeMs := driveStat.TotalWriteTime.Milliseconds()
		all[driveStat.Name] = BlockStats{
			ReadSectors:  driveStat.BytesRead / SectorSize,
			ReadMs:       readMs,
			WriteSectors: driveStat.BytesWritten / SectorSize,
			WriteMs:      writeMs,
			IOMs:         readMs + writeMs,
		}
	}
	return all
}
