// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package monitor

import (
	"log"

	"github.com/orangecms/rustsbi-nezha/hal"
	"github.com/orangecms/rustsbi-nezha/riscv64"
	"github.com/orangecms/rustsbi-nezha/sbi"
)

// Monitor holds the per-hart state the dispatch loop threads through every
// trap: the resumable Runtime, the downstream SBI dispatch library, and
// the HAL collaborators emulation and forwarding need.
type Monitor struct {
	Runtime *riscv64.Runtime
	SBI     *sbi.Registry
	MTime   hal.MTime
	PLIC    hal.PLIC
	Reset   hal.Resetter
	HartID  uint64

	// Trace, when set, prints every dispatched trap before acting on it.
	// It is off by default: tracing every trap on a loaded system is not
	// something a production boot would want enabled.
	Trace bool
}

// ExecuteSupervisor is the monitor's entry point: construct the hart's
// Runtime at supervisor_mepc with a0/a1 preloaded (conventionally the hart
// ID and the DTB physical address), then resume it forever, dispatching
// every M-mode trap it hands back. It never returns.
func ExecuteSupervisor(m *Monitor, supervisorMepc, a0, a1 uint64) {
	m.Runtime = riscv64.NewSupervisorRuntime(supervisorMepc, a0, a1)

	for {
		trap := m.Runtime.Resume()
		m.dispatch(trap)
	}
}

// dispatch implements the per-cause routing table: one iteration of the
// monitor loop after a trap has already returned control.
func (m *Monitor) dispatch(trap riscv64.MachineTrap) {
	if m.Trace {
		print("monitor: trap ", trap.Kind.String(), " addr ", trap.Addr, "\n")
	}

	ctx := m.Runtime.Context()

	switch trap.Kind {
	case riscv64.TrapSbiCall:
		m.dispatchSbiCall(ctx)

	case riscv64.TrapIllegalInstruction:
		m.dispatchIllegalInstruction(ctx)

	case riscv64.TrapExternalInterrupt:
		m.callSupervisorInterrupt()

	case riscv64.TrapMachineTimer:
		forwardSupervisorTimer()

	case riscv64.TrapMachineSoft:
		forwardSupervisorSoft()

	case riscv64.TrapInstructionFault:
		if isPageFault(trap.Addr) {
			doTransferTrap(ctx, riscv64.InstructionPageFault, trap.Addr, false)
		} else {
			doTransferTrap(ctx, riscv64.InstructionAccessFault, trap.Addr, false)
		}

	case riscv64.TrapLoadFault:
		log.Printf("monitor: load access fault at %#x, mepc %#x", trap.Addr, ctx.Mepc)
		doTransferTrap(ctx, riscv64.LoadAccessFault, trap.Addr, false)

	case riscv64.TrapLoadPageFault:
		log.Printf("monitor: load page fault at %#x, mepc %#x", trap.Addr, ctx.Mepc)
		doTransferTrap(ctx, riscv64.LoadPageFault, trap.Addr, false)

	case riscv64.TrapStorePageFault:
		// Preserved verbatim from the reference monitor this firmware's
		// trap table is modeled on: a store page fault that looks like a
		// real page fault is injected as LoadPageFault, not
		// StorePageFault. Kept as is rather than silently corrected; it
		// has not been checked against a reference supervisor.
		if isPageFault(trap.Addr) {
			doTransferTrap(ctx, riscv64.LoadPageFault, trap.Addr, false)
		} else {
			doTransferTrap(ctx, riscv64.LoadAccessFault, trap.Addr, false)
		}

	case riscv64.TrapStoreFault:
		if isPageFault(trap.Addr) {
			doTransferTrap(ctx, riscv64.StorePageFault, trap.Addr, false)
		} else {
			doTransferTrap(ctx, riscv64.StoreAccessFault, trap.Addr, false)
		}

	case riscv64.TrapInstructionPageFault:
		m.fatalInstructionPageFault(trap.Addr)
	}
}

// dispatchSbiCall implements the SbiCall row: the 1.9.1 preprocessing
// hook runs first, then the monitor's own non-standard extension gets a
// chance to claim the call before it falls through to the standard
// dispatch library.
func (m *Monitor) dispatchSbiCall(ctx *riscv64.SupervisorContext) {
	eid, fid := ctx.A7(), ctx.A6()
	args := ctx.SbiArgs()

	preprocessSupervisorExternal(m.Runtime, eid)

	ret, claimed := tryLocalEmulation(m.Runtime, eid, fid, args)
	if !claimed {
		ret = m.SBI.Ecall(eid, fid, args)
	}

	ctx.SetReturn(ret.A0(), ret.A1())
	ctx.AdvancePC(4)
}

// dispatchIllegalInstruction implements the IllegalInstruction row: fetch
// the faulting instruction through the supervisor's own translation, try
// the fixed emulation chain, and fall back to downward injection or a
// fatal panic.
func (m *Monitor) dispatchIllegalInstruction(ctx *riscv64.SupervisorContext) {
	insn := riscv64.FetchSupervisorInstruction(ctx.Mepc)

	if emulateIllegalInstruction(ctx, m.MTime, insn) {
		return
	}

	if shouldTransferTrap(riscv64.IllegalInstruction) {
		doTransferTrap(ctx, riscv64.IllegalInstruction, uint64(insn), false)
		return
	}

	m.fatalIllegalInstruction(ctx, insn)
}

// isPageFault is this platform's heuristic for telling a page-table walk
// failure apart from a raw physical access fault when the trap cause
// alone does not say which: any Sv39 virtual address must sign-extend
// from bit 38; an addr that doesn't could only have come out of a page
// table walk against an entry built from garbage, never a direct access
// to an out-of-range physical address.
func isPageFault(addr uint64) bool {
	top := addr >> 38
	return top != 0 && top != 0x3ffffff
}
