// Allwinner D1 (T-HEAD Xuantie C906) "Nezha" board support
// https://github.com/usbarmory/tamago
//
// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package nezha provides the peripheral wiring for the Allwinner D1
// "Nezha" board: a single T-HEAD Xuantie C906 RV64 core, its CLINT timer
// block, its PLIC, and its watchdog reset controller, bound together into
// the hal collaborators the monitor package needs.
//
// This package is only meant to be used with `GOOS=tamago GOARCH=riscv64`
// as supported by the TamaGo framework for bare metal Go on RISC-V SoCs,
// see https://github.com/usbarmory/tamago.
package nezha

import (
	_ "unsafe"

	"github.com/orangecms/rustsbi-nezha/riscv64"
	"github.com/orangecms/rustsbi-nezha/soc/allwinner/wdog"
	"github.com/orangecms/rustsbi-nezha/soc/sifive/clint"
	"github.com/orangecms/rustsbi-nezha/soc/sifive/plic"
)

// Peripheral registers, as mapped on the D1's memory map.
const (
	CLINT_BASE = 0x14000000
	PLIC_BASE  = 0x10000000
	WDOG_BASE  = 0x017000A0
	RTC_BASE   = 0x07090000

	// RTCCLK is the CLINT timebase input, 24MHz on this SoC.
	RTCCLK = 24000000
)

// Peripheral instances.
var (
	// RV64 is the hart 0 core instance.
	RV64 = &riscv64.CPU{}

	// CLINT is the Core-Local Interruptor bound to hart 0.
	CLINT = &clint.CLINT{
		Base:   CLINT_BASE,
		RTCCLK: RTCCLK,
		HartID: 0,
	}

	// PLIC is the platform interrupt controller, bound to hart 0's
	// M-mode context (context 0 on this SoC's PLIC layout).
	PLIC = &plic.PLIC{
		Base:    PLIC_BASE,
		Context: 0,
	}

	// Reset is the platform's reset controller, satisfying hal.Resetter.
	Reset = &wdog.WDOG{
		Base: WDOG_BASE,
		RTC:  RTC_BASE,
	}
)

// Model returns the SoC model name.
func Model() string {
	return "D1"
}

// Init performs early hart 0 initialization: the machine-mode core state
// the monitor's Runtime depends on before its first resume.
func Init() {
	RV64.Init()
}

//go:linkname nanotime1 runtime/goos.Nanotime
func nanotime1() int64 {
	return CLINT.Nanotime()
}
