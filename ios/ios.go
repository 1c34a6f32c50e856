// Package ios resolves a benchmarked file down to the physical disk(s)
// underneath it and snapshots the kernel's per-disk counters, so that a timed
// run can be bracketed with before/after readings of the block layer.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import (
	"fmt"
	"strings"
)

// Based on:
// - https://www.kernel.org/doc/Documentation/iostats.txt
// - https://www.kernel.org/doc/Documentation/block/stat.txt
type (
	// BlockStats is a single reading of one disk's counters.
	BlockStats struct {
		ReadComplete  int64 `json:"read_complete"`  // 1 - # of reads completed
		ReadMerged    int64 `json:"read_merged"`    // 2 - # of reads merged
		ReadSectors   int64 `json:"read_sectors"`   // 3 - # of sectors read
		ReadMs        int64 `json:"read_ms"`        // 4 - # ms spent reading
		WriteComplete int64 `json:"write_complete"` // 5 - # writes completed
		WriteMerged   int64 `json:"write_merged"`   // 6 - # writes merged
		WriteSectors  int64 `json:"write_sectors"`  // 7 - # of sectors written
		WriteMs       int64 `json:"write_ms"`       // 8 - # of milliseconds spent writing
		IOPending     int64 `json:"io_pending"`     // 9 - # of I/Os currently in progress
		IOMs          int64 `json:"io_ms"`          // 10 - # of milliseconds spent doing I/Os
		IOMsWeighted  int64 `json:"io_ms_weighted"` // 11 - weighted # of milliseconds spent doing I/Os
		// 12 - 15: discard I/Os, discard merges, discard sectors, discard ticks
		// 16, 17:  flash I/Os, flash ticks, as per https://github.com/sysstat/sysstat/blob/master/iostat.c
	}

	// AllBlockStats is one reading across all disks backing a target.
	AllBlockStats map[string]BlockStats

	// Target is the storage underneath a benchmarked file: the filesystem
	// the file lives on and the physical disk(s) backing that filesystem.
	Target struct {
		Fs     string   // e.g. /dev/sda1
		FsType string   // e.g. ext4
		Disks  []string // e.g. [sda]
	}
)

// The "sectors" in question are the standard UNIX 512-byte sectors, not any
// device- or filesystem-specific block size
// (from https://www.kernel.org/doc/Documentation/block/stat.txt)
const SectorSize = int64(512)

func (bs *BlockStats) ReadBytes() int64  { return bs.ReadSectors * SectorSize }
func (bs *BlockStats) WriteBytes() int64 { return bs.WriteSectors * SectorSize }

// Sub returns the counter deltas between two readings of the same disk.
// IOPending is a level, not a counter, and carries over as is.
func (bs BlockStats) Sub(prev BlockStats) BlockStats {
	return BlockStats{
		ReadComplete:  bs.ReadComplete - prev.ReadComplete,
		ReadMerged:    bs.ReadMerged - prev.ReadMerged,
		ReadSectors:   bs.ReadSectors - prev.ReadSectors,
		ReadMs:        bs.ReadMs - prev.ReadMs,
		WriteComplete: bs.WriteComplete - prev.WriteComplete,
		WriteMerged:   bs.WriteMerged - prev.WriteMerged,
		WriteSectors:  bs.WriteSectors - prev.WriteSectors,
		WriteMs:       bs.WriteMs - prev.WriteMs,
		IOPending:     bs.IOPending,
		IOMs:          bs.IOMs - prev.IOMs,
		IOMsWeighted:  bs.IOMsWeighted - prev.IOMsWeighted,
	}
}

// Delta subtracts an earlier reading from the current one, disk by disk.
// A disk missing from the earlier reading yields its raw counters.
func (all AllBlockStats) Delta(prev AllBlockStats) AllBlockStats {
	deltas := make(AllBlockStats, len(all))
	for disk, curr := range all {
		deltas[disk] = curr.Sub(prev[disk])
	}
	return deltas
}

func (t *Target) String() string {
	if t.FsType == "" {
		return fmt.Sprintf("%s: disks %v", t.Fs, t.Disks)
	}
	return fmt.Sprintf("%s (%s): disks %v", t.Fs, t.FsType, t.Disks)
}

func (t *Target) hasDisk(disk string) bool {
	for _, d := range t.Disks {
		if d == disk {
			return true
		}
	}
	return false
}

func trimDev(fs string) string { return strings.TrimPrefix(fs, "/dev/") }
