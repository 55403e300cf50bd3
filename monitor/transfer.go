// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package monitor implements the M-mode trap dispatch loop running beneath
// a RISC-V supervisor payload: it resumes the supervisor, classifies every
// M-mode trap that hands control back, and either emulates it, answers it
// as an SBI call, forwards it as an interrupt, or injects it downward as a
// supervisor exception.
package monitor

import (
	"github.com/orangecms/rustsbi-nezha/internal/bits"
	"github.com/orangecms/rustsbi-nezha/riscv64"
)

// stvec mode field: bit 0 selects direct (0) or vectored (1) dispatch.
const stvecModeMask = 0x3
const stvecVectored = 1

// interruptBit marks the sign bit of scause/mcause that distinguishes an
// interrupt from an exception.
const interruptBit = uint64(1) << (riscv64.XLEN - 1)

// shouldTransferTrap reports whether the supervisor is prepared to receive
// cause as a downward-injected trap: it has configured stvec, and has not
// already asked the hardware to deliver the cause directly via medeleg.
func shouldTransferTrap(cause uint64) bool {
	if riscv64.ReadSTVEC() == 0 {
		return false
	}
	return riscv64.ReadMedeleg()&(1<<cause) == 0
}

// doTransferTrap reflects an exception or interrupt into supervisor mode,
// per the downward trap-injection protocol: scause/stval/sepc are set from
// the current fault, mstatus.SPP/SPIE/SIE are updated to reflect the
// interrupted privilege level and its enable bit, ctx.mepc is redirected
// to the supervisor trap vector, and mstatus.MPP is set to S so that the
// next resume drops into the supervisor's own handler.
func doTransferTrap(ctx *riscv64.SupervisorContext, cause, tval uint64, isInterrupt bool) {
	scause := cause
	if isInterrupt {
		scause |= interruptBit
	}

	riscv64.SetSCause(scause)
	riscv64.SetSTval(tval)
	riscv64.SetSEPC(ctx.Mepc)

	wasSupervisor := ctx.MPP() == riscv64.PrivS
	sie := bits.Get64(&ctx.Mstatus, riscv64.MSTATUS_SIE, 1) == 1

	mstatus := ctx.Mstatus
	bits.SetTo64(&mstatus, riscv64.MSTATUS_SPP, wasSupervisor)
	bits.SetTo64(&mstatus, riscv64.MSTATUS_SPIE, sie)
	bits.Clear64(&mstatus, riscv64.MSTATUS_SIE)
	bits.SetN64(&mstatus, riscv64.MSTATUS_MPP, 0x3, uint64(riscv64.PrivS))

	ctx.Mstatus = mstatus

	stvec := riscv64.ReadSTVEC()
	base := stvec &^ stvecModeMask
	if isInterrupt && stvec&stvecModeMask == stvecVectored {
		ctx.Mepc = base + 4*cause
	} else {
		ctx.Mepc = base
	}
}
