// Package diskbench measures the latency and bandwidth of pread(2)-ing and
// pwrite(2)-ing a target file in various chunk sizes.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package diskbench

import (
	"os"

	"github.com/syang0/DiskIOBenchmark/cmn/cos"
	"golang.org/x/sys/unix"
)

// openBench opens the benchmarked file with the selected access flags
// (with OS caching disabled when direct is set).
func openBench(path string, flag int, af accessFlags) (*os.File, error) {
	if af.direct {
		flag |= unix.O_DIRECT
	}
	if af.sync {
		flag |= unix.O_SYNC
	}
	if af.dsync {
		flag |= unix.O_DSYNC
	}
	return os.OpenFile(path, flag, cos.PermRWRWRW)
}
