// Package diskbench measures the latency and bandwidth of pread(2)-ing and
// pwrite(2)-ing a target file in various chunk sizes.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package diskbench

import (
	"io"
	"os"

	"github.com/syang0/DiskIOBenchmark/cmn/cos"
	"github.com/syang0/DiskIOBenchmark/cmn/mono"
	"golang.org/x/sys/unix"
)

type writeRes struct {
	Size      int64   `json:"size"`
	Count     int     `json:"count"`
	Bandwidth float64 `json:"bandwidth_mbps"`
	WriteSec  float64 `json:"write_sec"`
	SyncSec   float64 `json:"sync_sec"`
}

// benchmarkWrite sweeps transfer sizes from 1<<minexp to 1<<maxexp. For each
// size the target file is created anew, written count times back to back at
// advancing offsets with an fsync after every write, and removed. The write
// and the fsync are timed separately.
func benchmarkWrite(w io.Writer, p *params) []writeRes {
	buffer := newAlignedBuf(p.maxSize(), p.align)
	fillDeterministic(buffer, p.seed)

	if !p.jsonFormat {
		printWriteHeader(w, p)
	}
	results := make([]writeRes, 0, p.maxExp-p.minExp+1)
	for e := p.minExp; e <= p.maxExp; e++ {
		var (
			size  = int64(1) << e
			count = p.repCount(size)
		)
		fh, err := openBench(p.filePath, os.O_WRONLY|os.O_CREATE, p.access)
		if err != nil {
			cos.Exitf("failed to open %s: %v", p.filePath, err)
		}
		var (
			fd         = int(fh.Fd())
			filePos    int64
			writeTicks int64
			syncTicks  int64
		)
		for i := 0; i < count; i++ {
			started := mono.NanoTime()
			written, err := unix.Pwrite(fd, buffer[:size], filePos)
			syncStarted := mono.NanoTime()
			if err != nil || written != int(size) {
				cos.Exitf("failed to write %d bytes to %s at offset %d (wrote %d): %v",
					size, p.filePath, filePos, written, err)
			}
			filePos += size

			err = unix.Fsync(fd)
			stopped := mono.NanoTime()
			if err != nil {
				cos.Exitf("failed to fsync %s: %v", p.filePath, err)
			}
			writeTicks += syncStarted - started
			syncTicks += stopped - syncStarted
		}
		fh.Close()
		os.Remove(p.filePath)

		res := writeRes{
			Size:      size,
			Count:     count,
			Bandwidth: bandwidthMBps(size, writeTicks+syncTicks, count),
			WriteSec:  perOpSeconds(writeTicks, count),
			SyncSec:   perOpSeconds(syncTicks, count),
		}
		results = append(results, res)
		if !p.jsonFormat {
			printWriteRow(w, res)
		}
	}
	if !p.jsonFormat {
		printTrailer(w)
	}
	return results
}

// perOpSeconds converts accumulated ticks into seconds per single operation.
func perOpSeconds(ticks int64, count int) float64 {
	return mono.ToSeconds(ticks) / float64(count)
}

// bandwidthMBps is the SI megabytes-per-second rate of moving `size` bytes
// in the average operation time.
func bandwidthMBps(size, ticks int64, count int) float64 {
	sec := perOpSeconds(ticks, count)
	if sec == 0 {
		return 0
	}
	return float64(size) / sec / 1e6
}
