// Package mono provides low-level monotonic time
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package mono

import (
	"sync"
	"time"
)

// NanoTime ticks at (very nearly) one tick per nanosecond. Rather than
// hardcoding the frequency, measure it once against the wall clock and
// convert through the measured rate ever after.

const calibration = 100 * time.Millisecond

var (
	ticksPerSec float64
	calibrated  sync.Once
)

// TicksPerSecond returns the NanoTime frequency, measured on first use.
func TicksPerSecond() float64 {
	calibrated.Do(calibrate)
	return ticksPerSec
}

// ToSeconds converts a NanoTime delta into seconds.
func ToSeconds(ticks int64) float64 {
	return float64(ticks) / TicksPerSecond()
}

func calibrate() {
	var (
		wallStarted = time.Now()
		started     = NanoTime()
	)
	time.Sleep(calibration)
	var (
		ticks = NanoTime() - started
		wall  = time.Since(wallStarted)
	)
	ticksPerSec = float64(ticks) / wall.Seconds()
}
