// Package ios resolves a benchmarked file down to the physical disk(s)
// underneath it and snapshots the kernel's per-disk counters, so that a timed
// run can be bracketed with before/after readings of the block layer.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package ios

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/syang0/DiskIOBenchmark/cmn/debug"

	jsoniter "github.com/json-iterator/go"
)

type (
	LsBlk struct {
		BlockDevices []BlockDevice `json:"blockdevices"`
	}
	BlockDevice struct {
		Name         string        `json:"name"`
		BlockDevices []BlockDevice `json:"children"`
	}
)

// ResolveTarget maps the file at `path` (or, if the file does not exist yet,
// its parent directory) to the filesystem it lives on and the physical disks
// backing that filesystem.
func ResolveTarget(path string) (*Target, error) {
	if _, err := os.Stat(path); err != nil {
		path = filepath.Dir(path)
	}
	fs, fsType, err := fqn2FsInfo(path)
	if err != nil {
		return nil, err
	}
	disks, err := fs2disks(fs)
	if err != nil {
		return nil, err
	}
	if len(disks) == 0 {
		return nil, fmt.Errorf("no disks matching filesystem %q", fs)
	}
	return &Target{Fs: fs, FsType: fsType, Disks: disks}, nil
}

// Snapshot reads the current counters of every disk backing the target.
// Disks that cannot be read (e.g. virtual devices without a sysfs node)
// are silently skipped.
func (t *Target) Snapshot() AllBlockStats {
	all := make(AllBlockStats, len(t.Disks))
	for _, disk := range t.Disks {
		var bs BlockStats
		if _read(sysfname(disk), &bs) {
			all[disk] = bs
		}
	}
	return all
}

func sysfname(disk string) string { return "/sys/class/block/" + disk + "/stat" }

func fqn2FsInfo(fqn string) (fs, fsType string, err error) {
	getFSCommand := fmt.Sprintf("df -PT '%s' | awk 'END{print $1,$2}'", fqn)
	outputBytes, err := exec.Command("sh", "-c", getFSCommand).Output()
	if err != nil || len(outputBytes) == 0 {
		return "", "", fmt.Errorf("failed to retrieve FS info from path %q, err: %v", fqn, err)
	}
	info := strings.Split(string(outputBytes), " ")
	if len(info) != 2 {
		return "", "", fmt.Errorf("failed to retrieve FS info from path %q, err: invalid format", fqn)
	}
	return strings.TrimSpace(info[0]), strings.TrimSpace(info[1]), nil
}

// fs2disks retrieves the disks associated with a filesystem by walking
// the lsblk device tree.
func fs2disks(fs string) ([]string, error) {
	outputBytes, err := exec.Command("lsblk", "-no", "name", "-J").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to lsblk: %v", err)
	}
	if len(outputBytes) == 0 {
		return nil, fmt.Errorf("failed to lsblk %q: empty output", fs)
	}
	return lsblkOutput2disks(outputBytes, fs)
}

func lsblkOutput2disks(lsblkOutputBytes []byte, fs string) ([]string, error) {
	var (
		lsBlkOutput LsBlk
		device      = trimDev(fs)
		set         = make(map[string]struct{})
	)
	if err := jsoniter.Unmarshal(lsblkOutputBytes, &lsBlkOutput); err != nil {
		return nil, fmt.Errorf("unable to unmarshal lsblk output [%s], err: %v", string(lsblkOutputBytes), err)
	}
	findDevDisks(lsBlkOutput.BlockDevices, device, set)

	disks := make([]string, 0, len(set))
	for disk := range set {
		disks = append(disks, disk)
	}
	sort.Strings(disks)
	return disks, nil
}

func findDevDisks(devList []BlockDevice, device string, disks map[string]struct{}) {
	for _, bd := range devList {
		if bd.Name == device {
			disks[bd.Name] = struct{}{}
			continue
		}
		if len(bd.BlockDevices) != 0 && childMatches(bd.BlockDevices, device) {
			disks[bd.Name] = struct{}{}
		}
	}
}

func childMatches(devList []BlockDevice, device string) bool {
	for _, dev := range devList {
		if dev.Name == device {
			return true
		}
		if len(dev.BlockDevices) != 0 && childMatches(dev.BlockDevices, device) {
			return true
		}
	}
	return false
}

// https://www.kernel.org/doc/Documentation/block/stat.txt
func _read(sysfn string, bs *BlockStats) bool {
	file, err := os.Open(sysfn)
	if err != nil {
		return false
	}
	scanner := bufio.NewScanner(file)
	scanner.Scan()
	fields := strings.Fields(scanner.Text())

	_ = file.Close()
	if len(fields) < 11 {
		return false
	}
	*bs = BlockStats{
		_exI64(fields[0]),
		_exI64(fields[1]),
		_exI64(fields[2]),
		_exI64(fields[3]),
		_exI64(fields[4]),
		_exI64(fields[5]),
		_exI64(fields[6]),
		_exI64(fields[7]),
		_exI64(fields[8]),
		_exI64(fields[9]),
		_exI64(fields[10]),
	}
	return true
}

func _exI64(field string) int64 {
	val, err := strconv.ParseInt(field, 10, 64)
	debug.AssertNoErr(err)
	return val
}
