//go:build !debug

// Package debug provides assertions that are enabled only in debug builds
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package debug

func On() bool { return false }

func Assert(_ bool, _ ...any)            {}
func Assertf(_ bool, _ string, _ ...any) {}
func AssertNoErr(_ error)                {}
func AssertFunc(_ func() bool, _ ...any) {}
