// Package diskbench measures the latency and bandwidth of pread(2)-ing and
// pwrite(2)-ing a target file in various chunk sizes.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package diskbench

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/syang0/DiskIOBenchmark/cmn/cos"
	"github.com/syang0/DiskIOBenchmark/ios"
)

const examples = `1. Sweep write and read sizes from 512B to 256MiB against the default target with direct, synchronous I/O:
	# diskbench

2. Benchmark a specific mountpath through the page cache:
	# diskbench -ioflags none /mnt/ssd/benchmark.tmp

3. Narrow the sweep, repeat small sizes 10 times, and emit JSON:
	# diskbench -minexp 12 -maxexp 20 -smallcount 10 -json

4. Checksum-validate every read and report block-device counters of the disks underneath:
	# diskbench -validate -diskstats /data/benchmark.tmp

5. Push per-size latency and bandwidth to a StatsD server:
	# diskbench -statsdip localhost -statsdport 8125
`

func printUsage(f *flag.FlagSet) {
	fmt.Printf("diskbench v%s (build %s)\n", version, build)
	fmt.Println("\nAbout")
	fmt.Println("=====")
	fmt.Println("Disk benchmark that measures the latency and bandwidth of pread(2)-ing and")
	fmt.Println("pwrite(2)-ing a target file in various chunk sizes (powers of two).")
	fmt.Println("Usage: diskbench [options] [filepath]")

	fmt.Println("\nCommand-line options")
	fmt.Println("====================")
	f.PrintDefaults()
	fmt.Println()

	fmt.Println("Examples")
	fmt.Println("========")
	fmt.Print(examples)
}

func printWriteHeader(w io.Writer, p *params) {
	fmt.Fprintf(w, "# Benchmarking various write sizes to file %s\n", p.filePath)
	printThresholdLine(w, p)
	if p.comment != "" {
		fmt.Fprintf(w, "# Extra Comment: %s\n", p.comment)
	}
	fmt.Fprintf(w, "# %16s %16s %16s %16s\n",
		"Write Size (bytes)",
		"Bandwidth (MB/s)",
		"Write Time (sec)",
		"fsync Time (sec)")
}

func printReadHeader(w io.Writer, p *params) {
	fmt.Fprintf(w, "# Benchmarking various read sizes to file %s.\n", p.filePath)
	printThresholdLine(w, p)
	if p.comment != "" {
		fmt.Fprintf(w, "# Extra Comment: %s\n", p.comment)
	}
	fmt.Fprintf(w, "# %16s %16s %16s\n",
		"Read Size (bytes)",
		"Bandwidth (MB/s)",
		"Read Time (sec)")
}

func printThresholdLine(w io.Writer, p *params) {
	mb := float64(p.threshold) / 1e6
	fmt.Fprintf(w, "# Each result < %.2f MB is averaged %d times and everything >= %.2f MB %d times\n",
		mb, p.smallCount, mb, p.largeCount)
}

func printWriteRow(w io.Writer, res writeRes) {
	fmt.Fprintf(w, "%16s %16.3f %16.6f %16.3f\n",
		prettyNumber(res.Size), res.Bandwidth, res.WriteSec, res.SyncSec)
}

func printReadRow(w io.Writer, res readRes) {
	fmt.Fprintf(w, "%16s %16.3f %16.6f\n",
		prettyNumber(res.Size), res.Bandwidth, res.ReadSec)
}

func printTrailer(w io.Writer) { fmt.Fprintln(w) }

// printDiskDeltas reports what the kernel block layer saw underneath a
// single benchmark, one comment line per disk.
func printDiskDeltas(w io.Writer, deltas ios.AllBlockStats) {
	if len(deltas) == 0 {
		return
	}
	disks := make([]string, 0, len(deltas))
	for disk := range deltas {
		disks = append(disks, disk)
	}
	sort.Strings(disks)
	for _, disk := range disks {
		d := deltas[disk]
		fmt.Fprintf(w, "# disk %s: %s reads (%s, %s ms), %s writes (%s, %s ms)\n",
			disk,
			prettyNumber(d.ReadComplete), prettyBytes(d.ReadBytes()), prettyNumber(d.ReadMs),
			prettyNumber(d.WriteComplete), prettyBytes(d.WriteBytes()), prettyNumber(d.WriteMs))
	}
	fmt.Fprintln(w)
}

type jsonResults struct {
	Seed       int64  `json:"seed,string"`
	Path       string `json:"path"`
	IOFlags    string `json:"ioflags"`
	Comment    string `json:"comment,omitempty"`
	MinExp     int    `json:"minexp"`
	MaxExp     int    `json:"maxexp"`
	Threshold  int64  `json:"threshold"`
	SmallCount int    `json:"smallcount"`
	LargeCount int    `json:"largecount"`

	Write []writeRes `json:"write"`
	Read  []readRes  `json:"read"`

	WriteDiskStats ios.AllBlockStats `json:"write_disk_stats,omitempty"`
	ReadDiskStats  ios.AllBlockStats `json:"read_disk_stats,omitempty"`
}

func printResultsJSON(w io.Writer, p *params, wres []writeRes, rres []readRes, wdeltas, rdeltas ios.AllBlockStats) {
	results := jsonResults{
		Seed:       p.seed,
		Path:       p.filePath,
		IOFlags:    p.access.String(),
		Comment:    p.comment,
		MinExp:     p.minExp,
		MaxExp:     p.maxExp,
		Threshold:  p.threshold,
		SmallCount: p.smallCount,
		LargeCount: p.largeCount,

		Write: wres,
		Read:  rres,

		WriteDiskStats: wdeltas,
		ReadDiskStats:  rdeltas,
	}
	b, err := jsoniter.MarshalIndent(results, "", "    ")
	if err != nil {
		cos.Exitf("failed to marshal the results: %v", err)
	}
	fmt.Fprintln(w, string(b))
}

// prettyNumber converts a number to format like 1,234,567
func prettyNumber(n int64) string {
	if n < 1000 {
		return strconv.FormatInt(n, 10)
	}
	return fmt.Sprintf("%s,%03d", prettyNumber(n/1000), n%1000)
}

// prettyBytes converts number of bytes to something like 4.7GiB, 2.8KiB, etc
func prettyBytes(n int64) string {
	if n <= 0 {
		return "-"
	}
	return cos.ToSizeIEC(n, 1)
}
