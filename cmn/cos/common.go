// Package cos provides common low-level types and utilities for the diskbench project
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"fmt"
	"os"
)

const MLCG32 = 1103515245 // xxhash seed

// POSIX perms
const (
	PermRWR    os.FileMode = 0o640
	PermRWRWRW os.FileMode = 0o666
)

//////////////////////////
// Abnormal Termination //
//////////////////////////

// Exitf writes formatted message to STDERR and exits with non-zero status code.
func Exitf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f, a...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}
