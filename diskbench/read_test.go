// Package diskbench measures the latency and bandwidth of pread(2)-ing and
// pwrite(2)-ing a target file in various chunk sizes.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package diskbench

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/syang0/DiskIOBenchmark/cmn/cos"
	"github.com/syang0/DiskIOBenchmark/tools/tassert"
	"github.com/syang0/DiskIOBenchmark/tools/tlog"
)

func TestBenchmarkReadSweep(t *testing.T) {
	var (
		out bytes.Buffer
		p   = testParams(t, 9, 10)
	)
	p.validate = true // checksum every read against the written image
	results := benchmarkRead(&out, p)

	tassert.Fatalf(t, len(results) == 2, "expected 2 data points, got %d", len(results))
	for i, res := range results {
		size := int64(512) << i
		tassert.Errorf(t, res.Size == size, "data point %d: size %d, expected %d", i, res.Size, size)
		tassert.Errorf(t, res.Count == p.smallCount, "size %d: count %d, expected %d", res.Size, res.Count, p.smallCount)
		tassert.Errorf(t, res.ReadSec > 0, "size %d: non-positive timing %+v", res.Size, res)
		tassert.Errorf(t, res.Bandwidth > 0, "size %d: non-positive bandwidth", res.Size)
		tlog.Logfln("read %4d: %.3f MB/s", res.Size, res.Bandwidth)
	}

	_, err := os.Stat(p.filePath)
	tassert.Errorf(t, os.IsNotExist(err), "target file must be removed after the sweep")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	tassert.Fatalf(t, len(lines) == 5, "expected 3 header lines and 2 data rows, got:\n%s", out.String())
	tassert.Errorf(t, lines[0] == "# Benchmarking various read sizes to file "+p.filePath+".",
		"unexpected header: %q", lines[0])
	tassert.Errorf(t, strings.Contains(lines[2], "Read Size (bytes)"), "unexpected column header: %q", lines[2])
	for _, line := range lines[3:] {
		tassert.Errorf(t, len(strings.Fields(line)) == 3, "expected 3 columns, got %q", line)
	}
}

func TestBenchmarkReadLargeCount(t *testing.T) {
	p := testParams(t, 9, 10)
	p.threshold = 512 // at-threshold and above repeat largecount times
	results := benchmarkRead(io.Discard, p)

	tassert.Fatalf(t, len(results) == 2, "expected 2 data points, got %d", len(results))
	for _, res := range results {
		tassert.Errorf(t, res.Count == p.largeCount, "size %d: count %d, expected %d",
			res.Size, res.Count, p.largeCount)
	}
}

// Strided read offsets must stay block-aligned and within the prepopulated
// file for any sweep configuration.
func TestReadOffsetBounds(t *testing.T) {
	tests := []params{
		{minExp: 9, maxExp: 28, threshold: 1000000, smallCount: 100, largeCount: 3, align: diskBlockSize},
		{minExp: 9, maxExp: 10, threshold: 1000000, smallCount: 100, largeCount: 3, align: diskBlockSize},
		{minExp: 12, maxExp: 20, threshold: 64 * cos.KiB, smallCount: 7, largeCount: 2, align: diskBlockSize},
		{minExp: 9, maxExp: 30, threshold: 1 << 29, smallCount: 5, largeCount: 1, align: diskBlockSize},
		{minExp: 20, maxExp: 20, threshold: 1, smallCount: 11, largeCount: 11, align: 4 * cos.KiB},
	}
	for _, p := range tests {
		totalSize := p.totalReadSize()
		for e := p.minExp; e <= p.maxExp; e++ {
			var (
				size   = int64(1) << e
				count  = p.repCount(size)
				stride = totalSize / int64(count)
			)
			for i := 0; i < count; i++ {
				offset := cos.FloorAlignI64(int64(i)*stride, p.align)
				tassert.Fatalf(t, offset%p.align == 0,
					"size %d rep %d: offset %d is not %d-aligned", size, i, offset, p.align)
				tassert.Fatalf(t, offset+size <= totalSize,
					"size %d rep %d: offset %d reaches past the %d-byte file", size, i, offset, totalSize)
			}
		}
	}
}
