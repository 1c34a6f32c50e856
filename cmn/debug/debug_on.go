//go:build debug

// Package debug provides assertions that are enabled only in debug builds
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package debug

import (
	"fmt"
	"os"
)

const prefix = "DEBUG PANIC: "

func On() bool { return true }

func Assert(cond bool, a ...any) {
	if !cond {
		_panic(a...)
	}
}

func Assertf(cond bool, f string, a ...any) {
	if !cond {
		_panic(fmt.Sprintf(f, a...))
	}
}

func AssertNoErr(err error) {
	if err != nil {
		_panic(err)
	}
}

func AssertFunc(f func() bool, a ...any) {
	if !f() {
		_panic(a...)
	}
}

func _panic(a ...any) {
	msg := prefix
	if len(a) > 0 {
		msg += fmt.Sprint(a...)
	} else {
		msg += "assertion failed"
	}
	os.Stderr.WriteString(msg + "\n")
	panic(msg)
}
