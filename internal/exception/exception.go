// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package exception provides a common fatal-exception reporting path shared
// by the architecture support package.
package exception

import "runtime"

// Throw reports the file and line of pc and panics. It is used by the
// machine-mode default exception handler when a trap reaches M-mode
// outside of the monitor's own resumable trap entry.
func Throw(pc uintptr) {
	fn := runtime.FuncForPC(pc)

	if fn != nil {
		file, line := fn.FileLine(pc)
		print("\t", file, ":", line, "\n")
	}

	panic("unhandled exception")
}
