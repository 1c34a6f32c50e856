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

// openBench opens the benchmarked file with the selected access flags.
// Darwin has no O_DIRECT; caching gets disabled on the open descriptor
// via F_NOCACHE instead.
func openBench(path string, flag int, af accessFlags) (*os.File, error) {
	if af.sync {
		flag |= unix.O_SYNC
	}
	if af.dsync {
		flag |= unix.O_DSYNC
	}
	fh, err := os.OpenFile(path, flag, cos.PermRWRWRW)
	if err != nil {
		return nil, err
	}
	if af.direct {
		if _, err := unix.FcntlInt(fh.Fd(), unix.F_NOCACHE, 1); err != nil {
			fh.Close()
			return nil, err
		}
	}
	return fh, nil
}
