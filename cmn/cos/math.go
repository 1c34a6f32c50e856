// Package cos provides common low-level types and utilities for the diskbench project
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import "github.com/syang0/DiskIOBenchmark/cmn/debug"

func IsPowerOfTwo(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// returns smallest number divisible by `align` that is greater or equal `val`
func CeilAlignI64(val, align int64) int64 {
	mod := val % align
	if mod != 0 {
		val += align - mod
	}
	return val
}

// returns largest number divisible by `align` that is smaller or equal `val`;
// `align` must be a power of two
func FloorAlignI64(val, align int64) int64 {
	debug.Assert(IsPowerOfTwo(align), align)
	return val &^ (align - 1)
}
