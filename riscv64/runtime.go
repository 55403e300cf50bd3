// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package riscv64

import "unsafe"

// monitorStackSize is the size, in bytes, of the dedicated M-mode stack a
// Runtime owns. resume points sp at its top only while it loads the
// supervisor's registers; trapEntry saves them through the Runtime pointer
// and does not switch onto this stack. It is never grown and never shared
// with the Go scheduler stack.
const monitorStackSize = 4096

// Runtime owns the SupervisorContext and the M-mode stack region used
// during trap entry for a single hart. It is created once per hart by
// NewSupervisorRuntime and is then resumed forever by the monitor's
// dispatch loop (package monitor). The context is exclusively owned by
// whichever of {supervisor, monitor} currently holds control: Resume
// hands it to the supervisor until the next trap, and returns it to the
// caller on trap.
type Runtime struct {
	// ctx must remain the first field: the trap-entry assembly stub
	// addresses it, and the fields after it, relative to a pointer to
	// Runtime recovered from mscratch.
	ctx SupervisorContext

	// mSP and mRA are the monitor's own stack pointer and return address
	// at the moment Resume was called, saved so that the trap-entry stub
	// can restore them and return normally to Resume's caller after the
	// supervisor's registers have been recovered.
	mSP uint64
	mRA uint64

	// stackTop is the precomputed, aligned top-of-stack address of stack,
	// loaded into the real stack pointer by resume before the supervisor's
	// own sp replaces it.
	stackTop uint64

	// devIntr is this hart's DEVINTRENTRY slot: the supervisor-registered
	// M-mode-callable external-interrupt handler address. Zero means no
	// handler has been registered.
	devIntr uint64

	stack [monitorStackSize]byte
}

// NewSupervisorRuntime creates a Runtime that will resume supervisor mode
// at entryPC with a0/a1 preloaded, as called for by the SBI entry
// convention (conventionally the hart ID and the DTB physical address).
func NewSupervisorRuntime(entryPC, a0, a1 uint64) *Runtime {
	rt := &Runtime{}

	rt.ctx.Mepc = entryPC
	rt.ctx.X[RegA0] = a0
	rt.ctx.X[RegA1] = a1
	// MPP = S: mret drops to supervisor mode. MPIE = 1: M-mode interrupts
	// remain enabled after mret so that external/timer/soft interrupts
	// keep reaching this hart while the supervisor runs.
	rt.ctx.Mstatus = (uint64(PrivS) << MSTATUS_MPP) | (1 << MSTATUS_MPIE)

	top := uintptr(unsafe.Pointer(&rt.stack[len(rt.stack)-1]))
	rt.stackTop = uint64(top &^ 0xf) // 16-byte align

	set_mtvec(vector(trapEntry))

	return rt
}

// trapEntry is the machine-mode trap vector installed by
// NewSupervisorRuntime. Its body is implemented in runtime.s: it is never
// invoked as an ordinary Go call, only reached via mtvec, and it returns
// control not to its own (nonexistent) caller but to whichever call to
// resume() most recently transferred into supervisor mode.
func trapEntry()

// defined in runtime.s
//
//go:noescape
func resume(rt *Runtime) (mcause, mtval uint64)

// Resume transfers control to supervisor mode at ctx.Mepc with
// mstatus.MPP = S and returns when the next M-mode trap occurs, with the
// supervisor's full context frozen into ctx. The returned MachineTrap
// classifies the trap cause.
func (rt *Runtime) Resume() MachineTrap {
	mcause, mtval := resume(rt)
	return classifyTrap(mcause, mtval)
}

// Context returns the mutably-borrowed SupervisorContext. It must only be
// read or written between a Resume call returning and the next Resume
// call: the supervisor owns the context while it is running.
func (rt *Runtime) Context() *SupervisorContext {
	return &rt.ctx
}

// DevIntrEntry returns the registered M-mode external-interrupt handler
// address for this hart, or 0 if none has been registered.
func (rt *Runtime) DevIntrEntry() uint64 {
	return rt.devIntr
}

// SetDevIntrEntry records the M-mode external-interrupt handler address.
// It is written exactly once per hart, by the non-standard
// sbi_rustsbi_nezha_sext SBI call.
func (rt *Runtime) SetDevIntrEntry(addr uint64) {
	rt.devIntr = addr
}
