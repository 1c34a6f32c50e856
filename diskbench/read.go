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

type readRes struct {
	Size      int64   `json:"size"`
	Count     int     `json:"count"`
	Bandwidth float64 `json:"bandwidth_mbps"`
	ReadSec   float64 `json:"read_sec"`
}

// benchmarkRead prepopulates the target file with a single sequential write,
// then sweeps transfer sizes from 1<<minexp to 1<<maxexp reading each size
// count times at sector-aligned offsets strided evenly across the file.
//
// Unless validating, reads land in the same buffer that seeded the file
// (the prepopulated image is never needed again). With -validate on, reads
// go to a dedicated buffer and every read is checksummed against the intact
// image.
func benchmarkRead(w io.Writer, p *params) []readRes {
	var (
		totalSize = p.totalReadSize()
		image     = newAlignedBuf(totalSize, p.align)
		readBuf   = image
	)
	fillDeterministic(image, p.seed)
	if p.validate {
		readBuf = newAlignedBuf(p.maxSize(), p.align)
	}

	if !p.jsonFormat {
		printReadHeader(w, p)
	}
	fh, err := openBench(p.filePath, os.O_RDWR|os.O_CREATE, p.access)
	if err != nil {
		cos.Exitf("failed to open %s: %v", p.filePath, err)
	}
	fd := int(fh.Fd())

	written, err := unix.Write(fd, image)
	if err != nil || written != len(image) {
		cos.Exitf("failed to prepopulate %s with %d bytes (wrote %d): %v",
			p.filePath, totalSize, written, err)
	}
	if err := unix.Fsync(fd); err != nil {
		cos.Exitf("failed to fsync %s: %v", p.filePath, err)
	}

	results := make([]readRes, 0, p.maxExp-p.minExp+1)
	for e := p.minExp; e <= p.maxExp; e++ {
		var (
			size      = int64(1) << e
			count     = p.repCount(size)
			stride    = totalSize / int64(count)
			readTicks int64
		)
		for i := 0; i < count; i++ {
			// seek to a different sector-aligned position before every read
			filePos := cos.FloorAlignI64(int64(i)*stride, p.align)

			started := mono.NanoTime()
			n, err := unix.Pread(fd, readBuf[:size], filePos)
			stopped := mono.NanoTime()
			if err != nil || n != int(size) {
				cos.Exitf("expected to read %d bytes from %s at offset %d, got %d: %v",
					size, p.filePath, filePos, n, err)
			}
			readTicks += stopped - started

			if p.validate && !equalChecksum(readBuf[:size], image[filePos:filePos+size]) {
				cos.Exitf("corrupted read: %d bytes at offset %d of %s do not match the written content",
					size, filePos, p.filePath)
			}
		}

		res := readRes{
			Size:      size,
			Count:     count,
			Bandwidth: bandwidthMBps(size, readTicks, count),
			ReadSec:   perOpSeconds(readTicks, count),
		}
		results = append(results, res)
		if !p.jsonFormat {
			printReadRow(w, res)
		}
	}
	fh.Close()
	os.Remove(p.filePath)

	if !p.jsonFormat {
		printTrailer(w)
	}
	return results
}
