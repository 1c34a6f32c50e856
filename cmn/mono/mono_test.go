// Package mono_test contains standard vs monotonic clock benchmark
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package mono_test

import (
	"testing"
	"time"

	"github.com/syang0/DiskIOBenchmark/cmn/mono"
)

func TestSince(t *testing.T) {
	started := mono.NanoTime()
	time.Sleep(time.Millisecond)
	if elapsed := mono.Since(started); elapsed < time.Millisecond {
		t.Errorf("expected at least 1ms to pass, got %v", elapsed)
	}
}

func TestTicksPerSecond(t *testing.T) {
	// runtime.nanotime ticks in nanoseconds, so the measured rate must
	// come out at 1e9 give or take scheduling noise
	tps := mono.TicksPerSecond()
	if tps < 0.9e9 || tps > 1.1e9 {
		t.Errorf("calibrated %f ticks/sec, expected ~1e9", tps)
	}
	if again := mono.TicksPerSecond(); again != tps {
		t.Errorf("calibration must run once: %f vs %f", again, tps)
	}
}

func TestToSeconds(t *testing.T) {
	oneSec := int64(mono.TicksPerSecond())
	if s := mono.ToSeconds(oneSec); s < 0.999 || s > 1.001 {
		t.Errorf("ToSeconds(%d) = %f, expected ~1", oneSec, s)
	}
	if s := mono.ToSeconds(0); s != 0 {
		t.Errorf("ToSeconds(0) = %f", s)
	}
}

// go test -bench="Fast|Std"

func BenchmarkFast(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mono.Since(mono.NanoTime())
		}
	})
}

func BenchmarkStd(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mono.Since(time.Now().UnixNano())
		}
	})
}
