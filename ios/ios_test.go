// Package ios resolves a benchmarked file down to the physical disk(s)
// underneath it and snapshots the kernel's per-disk counters.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BlockStats", func() {
	var before, after AllBlockStats

	BeforeEach(func() {
		before = AllBlockStats{
			"sda": BlockStats{
				ReadComplete: 100, ReadSectors: 800, ReadMs: 40,
				WriteComplete: 10, WriteSectors: 80, WriteMs: 5,
				IOPending: 2, IOMs: 45, IOMsWeighted: 50,
			},
		}
		after = AllBlockStats{
			"sda": BlockStats{
				ReadComplete: 150, ReadSectors: 1600, ReadMs: 70,
				WriteComplete: 30, WriteSectors: 240, WriteMs: 15,
				IOPending: 1, IOMs: 85, IOMsWeighted: 95,
			},
		}
	})

	It("should subtract counters disk by disk", func() {
		deltas := after.Delta(before)
		Expect(deltas).To(HaveLen(1))

		delta := deltas["sda"]
		Expect(delta.ReadComplete).To(Equal(int64(50)))
		Expect(delta.ReadSectors).To(Equal(int64(800)))
		Expect(delta.ReadMs).To(Equal(int64(30)))
		Expect(delta.WriteComplete).To(Equal(int64(20)))
		Expect(delta.WriteSectors).To(Equal(int64(160)))
		Expect(delta.WriteMs).To(Equal(int64(10)))
		Expect(delta.IOMs).To(Equal(int64(40)))
		Expect(delta.IOMsWeighted).To(Equal(int64(45)))
	})

	It("should carry IOPending over as a level, not a counter", func() {
		delta := after.Delta(before)["sda"]
		Expect(delta.IOPending).To(Equal(int64(1)))
	})

	It("should yield raw counters for a disk missing from the earlier reading", func() {
		after["sdb"] = BlockStats{ReadComplete: 7, ReadSectors: 56}
		deltas := after.Delta(before)
		Expect(deltas).To(HaveLen(2))
		Expect(deltas["sdb"].ReadComplete).To(Equal(int64(7)))
		Expect(deltas["sdb"].ReadSectors).To(Equal(int64(56)))
	})

	It("should convert sectors to bytes", func() {
		bs := before["sda"]
		Expect(bs.ReadBytes()).To(Equal(int64(800 * 512)))
		Expect(bs.WriteBytes()).To(Equal(int64(80 * 512)))
	})
})

var _ = Describe("Target", func() {
	It("should know its own disks", func() {
		target := Target{Fs: "/dev/sda1", FsType: "ext4", Disks: []string{"sda", "sdb"}}
		Expect(target.hasDisk("sda")).To(BeTrue())
		Expect(target.hasDisk("sdb")).To(BeTrue())
		Expect(target.hasDisk("sdc")).To(BeFalse())
	})

	It("should format with and without the filesystem type", func() {
		withType := Target{Fs: "/dev/sda1", FsType: "ext4", Disks: []string{"sda"}}
		Expect(withType.String()).To(Equal("/dev/sda1 (ext4): disks [sda]"))

		without := Target{Fs: "/dev/disk1s5", Disks: []string{"disk1"}}
		Expect(without.String()).To(Equal("/dev/disk1s5: disks [disk1]"))
	})
})
