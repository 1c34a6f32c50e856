// Package cos_test: unit tests
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos_test

import (
	"testing"

	"github.com/syang0/DiskIOBenchmark/cmn/cos"
	"github.com/syang0/DiskIOBenchmark/tools/tassert"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		size  string
		units string
		val   int64
	}{
		{"", "", 0},
		{"0", "", 0},
		{"512", "", 512},
		{"512b", "", 512},
		{"1000000", cos.UnitsSI, 1000000},
		// bare numbers are raw regardless of units
		{"1024", cos.UnitsIEC, 1024},
		{"1k", "", cos.KB},
		{"1kb", "", cos.KB},
		{"1MB", "", cos.MB},
		{"1mib", "", cos.MiB},
		{"1.5KiB", "", 1536},
		{"2g", "", 2 * cos.GB},
		{"1TiB", "", cos.TiB},
		// units arg take precedence over an SI suffix
		{"2K", cos.UnitsIEC, 2 * cos.KiB},
		{"2K", cos.UnitsSI, 2 * cos.KB},
		{" 4MB ", cos.UnitsSI, 4 * cos.MB},
	}
	for _, test := range tests {
		val, err := cos.ParseSize(test.size, test.units)
		tassert.Errorf(t, err == nil, "ParseSize(%q, %q) failed: %v", test.size, test.units, err)
		tassert.Errorf(t, val == test.val, "ParseSize(%q, %q) = %d, expected %d",
			test.size, test.units, val, test.val)
	}
}

func TestParseSizeErr(t *testing.T) {
	tests := []struct {
		size  string
		units string
	}{
		{"loremipsum", ""},
		{"3.14.15MB", ""},
		{"1MB", "banana"},
		// suffix vs units conflicts
		{"1KiB", cos.UnitsSI},
		{"1MB", cos.UnitsRaw},
	}
	for _, test := range tests {
		_, err := cos.ParseSize(test.size, test.units)
		tassert.Errorf(t, err != nil, "ParseSize(%q, %q) expected to fail", test.size, test.units)
	}
}

func TestToSizeIEC(t *testing.T) {
	tests := []struct {
		val    int64
		digits int
		s      string
	}{
		{0, 0, "0B"},
		{511, 0, "511B"},
		{cos.KiB, 0, "1KiB"},
		{1536, 1, "1.5KiB"},
		{cos.MiB, 2, "1.00MiB"},
		{768 * cos.MiB, 0, "768MiB"},
		{cos.GiB, 0, "1GiB"},
		{cos.TiB, 0, "1TiB"},
	}
	for _, test := range tests {
		s := cos.ToSizeIEC(test.val, test.digits)
		tassert.Errorf(t, s == test.s, "ToSizeIEC(%d, %d) = %q, expected %q",
			test.val, test.digits, s, test.s)
	}
}
