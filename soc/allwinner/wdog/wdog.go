// Allwinner Watchdog Timer (WDOG) driver
// https://github.com/usbarmory/tamago
//
// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package wdog implements a minimal driver for the Allwinner D1 watchdog
// timer's system-reset trigger, the platform's only reset mechanism: a
// short watchdog interval armed in system-reset mode and then started,
// which the SoC has no way to cancel once the interval elapses.
//
// This package is only meant to be used with `GOOS=tamago GOARCH=riscv64`
// as supported by the TamaGo framework for bare metal Go on RISC-V SoCs,
// see https://github.com/usbarmory/tamago.
package wdog

import "github.com/orangecms/rustsbi-nezha/internal/reg"

// WDOG registers, relative to Base, and the key/mode bits the D1 watchdog
// requires to arm a reset, mirroring every Allwinner SoC generation's
// watchdog layout.
const (
	wdogCtrl = 0x10
	wdogCfg  = 0x14
	wdogMode = 0x18

	// scratch is a battery-backed RTC general-purpose register used to
	// carry the reset reason across the reset, the same role the SBI
	// system reset extension's reason code plays.
	scratch = 0x100

	ctrlKey     = 0xa57 << 1
	ctrlRestart = 1 << 0

	cfgSystemReset = 1 << 0
	modeEnable     = 1 << 0
)

// WDOG represents a Watchdog Timer instance.
type WDOG struct {
	// Base register.
	Base uint64
	// RTC is the base of the battery-backed scratch register bank used
	// to stash the reset reason; 0 disables this bookkeeping.
	RTC uint64
}

// Reset arms the watchdog in system-reset mode with its shortest interval
// and starts it, asserting a full system reset once the interval elapses.
// It records reason in the RTC scratch register, when configured, for the
// code that resumes after reset to read, then spins: the call never
// returns on a working watchdog.
func (hw *WDOG) Reset(reason uint32) {
	if hw.RTC != 0 {
		reg.Write(hw.RTC+scratch, reason)
	}

	reg.Write(hw.Base+wdogCfg, cfgSystemReset)
	reg.Write(hw.Base+wdogMode, modeEnable)
	reg.Write(hw.Base+wdogCtrl, ctrlKey|ctrlRestart)

	for {
	}
}
