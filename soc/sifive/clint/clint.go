// SiFive Core-Local Interruptor (CLINT) driver
// https://github.com/usbarmory/tamago
//
// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package clint implements a driver for the SiFive Core-Local Interruptor
// (CLINT) block adopting the following reference specifications:
//   - FU540C00RM - SiFive FU540-C000 Manual - v1p4 2021/03/25
//
// This package is only meant to be used with `GOOS=tamago GOARCH=riscv64` as
// supported by the TamaGo framework for bare metal Go on RISC-V SoCs, see
// https://github.com/usbarmory/tamago.
package clint

import (
	"github.com/orangecms/rustsbi-nezha/internal/reg"
)

// CLINT register offsets, relative to Base. MSIP and MTIMECMP are banked
// per hart; MTIME is shared.
const (
	MSIP      = 0x0000
	MTIMECMP  = 0x4000
	MTIME     = 0xbff8
	hartBank  = 8
)

// CLINT represents a Core-Local Interruptor (CLINT) instance, satisfying
// hal.MTime for the hart it is bound to.
type CLINT struct {
	// Base register.
	Base uint64
	// RTCCLK is the CPU real time clock rate, in Hz.
	RTCCLK uint64
	// HartID selects which MSIP/MTIMECMP bank this instance programs.
	HartID uint64
	// TimerOffset is the difference, in nanoseconds, between the caller's
	// clock and the RTCCLK-derived one; Nanotime adds it and SetTimer
	// subtracts it.
	TimerOffset int64
}

// Mtime returns the number of cycles counted from the RTCCLK input.
func (hw *CLINT) Mtime() uint64 {
	return reg.Read64(hw.Base + MTIME)
}

// mtimecmp returns the address of this hart's timer-compare register.
func (hw *CLINT) mtimecmp() uint64 {
	return hw.Base + MTIMECMP + hartBank*hw.HartID
}

// SetTimer arms the next machine timer interrupt for this hart at
// nanosecond deadline t, measured against the same clock Nanotime reports.
// This is the platform action behind a supervisor's SBI set_timer call; it
// only programs MTIMECMP and does not change mie.MTIE.
func (hw *CLINT) SetTimer(t int64) {
	reg.Write64(hw.mtimecmp(), mulDiv(uint64(t-hw.TimerOffset), hw.RTCCLK, 1e9))
}
