// Package diskbench measures the latency and bandwidth of pread(2)-ing and
// pwrite(2)-ing a target file in various chunk sizes.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package diskbench

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/syang0/DiskIOBenchmark/cmn/cos"
)

const dfltFilePath = "/tmp/benchmark.tmp"

const (
	maxExpLimit = 30
	// direct I/O moves whole sectors, so transfers cannot go under one
	dfltDirectMinExp = 9
)

type (
	// accessFlags selects the open(2) semantics for the benchmarked file.
	accessFlags struct {
		sync   bool // O_SYNC
		dsync  bool // O_DSYNC
		direct bool // O_DIRECT (F_NOCACHE on darwin)
	}

	params struct {
		filePath string

		minExp int // smallest transfer size: 1 << minexp bytes
		maxExp int // largest transfer size: 1 << maxexp bytes

		threshold  int64 // sizes under it are averaged smallCount times, the rest largeCount times
		smallCount int
		largeCount int

		align int64 // buffer and offset alignment, as direct I/O requires

		access  accessFlags
		comment string
		seed    int64

		validate   bool
		diskStats  bool
		jsonFormat bool

		statsdIP   string
		statsdPort int

		ioFlagsStr   string
		thresholdStr string
	}
)

var (
	version = "1.0"
	build   string

	flagUsage   bool
	flagVersion bool
)

func parseCmdLine(args []string) (params, error) {
	var (
		p   params
		err error
	)

	f := flag.NewFlagSet(os.Args[0], flag.ExitOnError) // discard flags of imported packages

	f.BoolVar(&flagUsage, "usage", false, "Show command-line options, usage, and examples")
	f.BoolVar(&flagVersion, "version", false, "Show diskbench version")
	f.IntVar(&p.minExp, "minexp", 9, "Smallest transfer size as a power of two (1<<minexp bytes)")
	f.IntVar(&p.maxExp, "maxexp", 28, "Largest transfer size as a power of two (1<<maxexp bytes)")
	f.StringVar(&p.thresholdStr, "threshold", "1MB",
		"Transfer sizes under the threshold are averaged smallcount times, the rest largecount times (can contain standard multiplicative suffix K, MB, GiB, etc.)")
	f.IntVar(&p.smallCount, "smallcount", 100, "Number of repetitions for transfer sizes under the threshold")
	f.IntVar(&p.largeCount, "largecount", 3, "Number of repetitions for transfer sizes at or over the threshold")
	f.StringVar(&p.ioFlagsStr, "ioflags", "direct,sync",
		"Comma-separated open(2) flags for the benchmarked file: none | sync | dsync | direct")
	f.StringVar(&p.comment, "comment", "", "Extra comment to include in the benchmark printout (default: derived from ioflags)")
	f.Int64Var(&p.seed, "seed", 0, "Random seed to generate deterministic file contents (0 - use current time in nanoseconds)")
	f.BoolVar(&p.validate, "validate", false, "true: checksum-validate every read against the originally written content")
	f.BoolVar(&p.diskStats, "diskstats", false, "true: bracket each benchmark with kernel block-device counters of the underlying disk(s)")
	f.BoolVar(&p.jsonFormat, "json", false, "true: print the output in JSON")
	f.StringVar(&p.statsdIP, "statsdip", "", "StatsD IP address or hostname (empty - do not push metrics)")
	f.IntVar(&p.statsdPort, "statsdport", 8125, "StatsD UDP port")

	f.Parse(args)

	if flagUsage {
		printUsage(f)
		os.Exit(0)
	}
	if flagVersion {
		fmt.Printf("version %s, build %s\n", version, build)
		os.Exit(0)
	}

	switch f.NArg() {
	case 0:
		p.filePath = dfltFilePath
	case 1:
		p.filePath = f.Arg(0)
	default:
		printUsage(f)
		return params{}, fmt.Errorf("too many arguments: %v", f.Args()[1:])
	}

	if p.threshold, err = cos.ParseSize(p.thresholdStr, ""); err != nil {
		return params{}, fmt.Errorf("failed to parse threshold %s: %v", p.thresholdStr, err)
	}
	if p.access, err = parseIOFlags(p.ioFlagsStr); err != nil {
		return params{}, err
	}

	// sanity checks
	if p.minExp <= 0 || p.minExp > p.maxExp || p.maxExp > maxExpLimit {
		return params{}, fmt.Errorf("invalid option: exponent range [%d, %d] (expecting 0 < minexp <= maxexp <= %d)",
			p.minExp, p.maxExp, maxExpLimit)
	}
	if p.threshold <= 0 {
		return params{}, fmt.Errorf("invalid option: threshold %s", p.thresholdStr)
	}
	if p.smallCount < 1 || p.largeCount < 1 {
		return params{}, fmt.Errorf("invalid option: repetition counts (%d, %d)", p.smallCount, p.largeCount)
	}
	if p.access.direct && p.minExp < dfltDirectMinExp {
		return params{}, fmt.Errorf("invalid option: direct I/O requires minexp >= %d (got %d)",
			dfltDirectMinExp, p.minExp)
	}
	if p.statsdIP != "" && (p.statsdPort < 1 || p.statsdPort > 65535) {
		return params{}, fmt.Errorf("invalid option: statsd port %d", p.statsdPort)
	}

	p.align = diskBlockSize
	if p.seed == 0 {
		p.seed = time.Now().UnixNano()
	}
	if p.comment == "" {
		p.comment = p.access.comment()
	}
	return p, nil
}

func parseIOFlags(s string) (af accessFlags, err error) {
	for _, token := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(token)) {
		case "", "none":
		case "sync":
			af.sync = true
		case "dsync":
			af.dsync = true
		case "direct":
			af.direct = true
		default:
			return accessFlags{}, fmt.Errorf("invalid option: unknown ioflags token %q (expecting none, sync, dsync, or direct)", token)
		}
	}
	return af, nil
}

func (af accessFlags) String() string {
	var tokens []string
	if af.direct {
		tokens = append(tokens, "O_DIRECT")
	}
	if af.sync {
		tokens = append(tokens, "O_SYNC")
	}
	if af.dsync {
		tokens = append(tokens, "O_DSYNC")
	}
	return strings.Join(tokens, "|")
}

func (af accessFlags) comment() string {
	if af == (accessFlags{}) {
		return "Without any special args"
	}
	return "With " + af.String()
}

// repCount returns how many times a single data point of the given transfer
// size gets repeated and averaged.
func (p *params) repCount(size int64) int {
	if size < p.threshold {
		return p.smallCount
	}
	return p.largeCount
}

// maxSize is the largest transfer size of the sweep.
func (p *params) maxSize() int64 { return int64(1) << p.maxExp }

// totalReadSize is the size the target file gets prepopulated to before the
// read benchmark. It must fit count strided reads of every swept size; the
// 1MiB x smallCount floor keeps the strides wide even for tiny sweeps.
func (p *params) totalReadSize() int64 {
	total := int64(cos.MiB) * int64(p.smallCount)
	for e := p.minExp; e <= p.maxExp; e++ {
		size := int64(1) << e
		if t := size * int64(p.repCount(size)); t > total {
			total = t
		}
	}
	return total
}
