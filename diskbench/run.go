// Package diskbench measures the latency and bandwidth of pread(2)-ing and
// pwrite(2)-ing a target file in various chunk sizes.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package diskbench

import (
	"fmt"
	"os"
	"strconv"

	"github.com/syang0/DiskIOBenchmark/cmn/cos"
	"github.com/syang0/DiskIOBenchmark/ios"
	"github.com/syang0/DiskIOBenchmark/stats/statsd"
)

var (
	runParams params
	statsdC   statsd.Client
)

// Start parses the command line and runs the write benchmark followed by
// the read benchmark against the configured target file.
func Start() {
	var err error
	runParams, err = parseCmdLine(os.Args[1:])
	if err != nil {
		cos.Exitf("%s", err)
	}

	if runParams.statsdIP != "" {
		host, errH := os.Hostname()
		if errH != nil {
			host = "localhost"
		}
		if statsdC, err = statsd.New(runParams.statsdIP, runParams.statsdPort, "diskbench."+host); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to connect to StatsD server, proceeding anyway")
		}
		defer statsdC.Close()
	}

	var target *ios.Target
	if runParams.diskStats {
		if target, err = ios.ResolveTarget(runParams.filePath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resolve the disks under %s: %v\n", runParams.filePath, err)
		} else if !runParams.jsonFormat {
			fmt.Printf("# %s\n", target)
		}
	}

	out := os.Stdout

	before := snapshot(target)
	writeResults := benchmarkWrite(out, &runParams)
	wDeltas := diskDeltas(target, before)
	if !runParams.jsonFormat {
		printDiskDeltas(out, wDeltas)
	}
	pushWriteStats(statsdC, writeResults)

	before = snapshot(target)
	readResults := benchmarkRead(out, &runParams)
	rDeltas := diskDeltas(target, before)
	if !runParams.jsonFormat {
		printDiskDeltas(out, rDeltas)
	}
	pushReadStats(statsdC, readResults)

	if runParams.jsonFormat {
		printResultsJSON(out, &runParams, writeResults, readResults, wDeltas, rDeltas)
	}
}

func snapshot(target *ios.Target) ios.AllBlockStats {
	if target == nil {
		return nil
	}
	return target.Snapshot()
}

func diskDeltas(target *ios.Target, before ios.AllBlockStats) ios.AllBlockStats {
	if target == nil {
		return nil
	}
	return target.Snapshot().Delta(before)
}

func pushWriteStats(c statsd.Client, results []writeRes) {
	for _, res := range results {
		c.Send("write."+strconv.FormatInt(res.Size, 10),
			statsd.Metric{Type: statsd.Timer, Name: "latency", Value: (res.WriteSec + res.SyncSec) * 1000},
			statsd.Metric{Type: statsd.Gauge, Name: "bandwidth", Value: int64(res.Bandwidth * 1e6)})
	}
}

func pushReadStats(c statsd.Client, results []readRes) {
	for _, res := range results {
		c.Send("read."+strconv.FormatInt(res.Size, 10),
			statsd.Metric{Type: statsd.Timer, Name: "latency", Value: res.ReadSec * 1000},
			statsd.Metric{Type: statsd.Gauge, Name: "bandwidth", Value: int64(res.Bandwidth * 1e6)})
	}
}
