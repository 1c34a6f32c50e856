// The main package for the `diskbench` executable.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package main

import "github.com/syang0/DiskIOBenchmark/diskbench"

func main() {
	diskbench.Start()
}
