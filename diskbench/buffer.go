// Package diskbench measures the latency and bandwidth of pread(2)-ing and
// pwrite(2)-ing a target file in various chunk sizes.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package diskbench

import (
	"math/rand"
	"unsafe"

	"github.com/OneOfOne/xxhash"
	"github.com/syang0/DiskIOBenchmark/cmn/cos"
	"github.com/syang0/DiskIOBenchmark/cmn/debug"
)

// Direct I/O requires the buffer address, the transfer size, and the file
// offset to all be aligned to the logical sector size.
const diskBlockSize = int64(512)

// newAlignedBuf allocates a zeroed buffer of the given size whose base
// address is aligned to `align` (over-allocate, then slice at the first
// aligned offset).
func newAlignedBuf(size, align int64) []byte {
	debug.Assert(cos.IsPowerOfTwo(align), align)
	raw := make([]byte, size+align)
	addr := int64(uintptr(unsafe.Pointer(&raw[0])))
	shift := cos.CeilAlignI64(addr, align) - addr
	return raw[shift : shift+size : shift+size]
}

// fillDeterministic fills the buffer with content that is fully determined
// by the seed, so that a read back from disk can be checked against a
// regenerated image.
func fillDeterministic(buf []byte, seed int64) {
	rnd := rand.New(rand.NewSource(seed))
	rnd.Read(buf)
}

func equalChecksum(got, expected []byte) bool {
	return xxhash.Checksum64S(got, cos.MLCG32) == xxhash.Checksum64S(expected, cos.MLCG32)
}
