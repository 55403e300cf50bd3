// SiFive Platform-Level Interrupt Controller (PLIC) driver
// https://github.com/usbarmory/tamago
//
// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package plic implements the claim/complete access pair for a
// SiFive-style Platform-Level Interrupt Controller, the source of the
// M-mode external interrupts the monitor up-calls into supervisor mode.
// Source enabling and priority/threshold initialization are a boot
// stub's concern, not this package's: see PLIC's doc comment.
//
// This package is only meant to be used with `GOOS=tamago GOARCH=riscv64`
// as supported by the TamaGo framework for bare metal Go on RISC-V SoCs,
// see https://github.com/usbarmory/tamago.
package plic

import "github.com/orangecms/rustsbi-nezha/internal/reg"

// PLIC register layout offsets, relative to Base, for a single target
// context (the one M-mode context this monitor claims interrupts on).
const (
	contextBase   = 0x200000
	contextStride = 0x1000
	claimOff      = 0x4
)

// PLIC represents a Platform-Level Interrupt Controller instance bound to
// one hart's M-mode interrupt context, satisfying hal.PLIC. Enabling
// sources and setting priorities/thresholds is initialization, performed
// once by the boot stub this repository does not own; this instance only
// ever claims and completes interrupts the boot stub already armed.
type PLIC struct {
	// Base register.
	Base uint64
	// Context selects the target (hart, privilege level) claim/complete
	// register bank this instance operates on.
	Context uint64
}

// Claim reads this context's claim register, returning the highest
// priority pending source ID, or 0 if none is pending.
func (hw *PLIC) Claim() uint32 {
	return reg.Read(hw.Base + contextBase + hw.Context*contextStride + claimOff)
}

// Complete signals that interrupt id has been serviced, allowing the PLIC
// to claim it again on a future assertion.
func (hw *PLIC) Complete(id uint32) {
	reg.Write(hw.Base+contextBase+hw.Context*contextStride+claimOff, id)
}
