// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package monitor

import "github.com/orangecms/rustsbi-nezha/riscv64"

// haltReasonFailure is the reset reason this monitor reports to the
// platform reset controller on a fatal panic: a generic "system failure",
// since the monitor has no finer-grained classification to offer it.
const haltReasonFailure = 1

// panicPath prints the monitor's fatal-error banner, asks the platform to
// reset (if a Resetter is wired), and spins forever: there is no supervisor
// left to hand control back to, and no guarantee the reset actually took
// effect.
func (m *Monitor) panicPath(hart uint64, reason string) {
	print("[nezha-panic] hart ", hart, " ", reason, "\n")

	if m.Reset != nil {
		m.Reset.Reset(haltReasonFailure)
	}

	cpu := &riscv64.CPU{}
	cpu.Halt()
}

// fatalIllegalInstruction handles an illegal instruction that trapped from
// M-mode, or that trapped from S-mode but could not be emulated and the
// supervisor has not configured trap delegation to receive it itself. Per
// the disposition this firmware follows, both cases are unrecoverable: the
// monitor has either hit a real illegal opcode in its own code, or the
// supervisor asked for a service with no handler and no way to be told so.
func (m *Monitor) fatalIllegalInstruction(ctx *riscv64.SupervisorContext, insn uint32) {
	print("[nezha-panic] illegal instruction ", insn, " at mepc ", ctx.Mepc, "\n")
	m.dumpContext(ctx)
	m.panicPath(m.HartID, "unhandled illegal instruction")
}

// fatalInstructionPageFault handles an instruction page fault observed by
// the monitor itself (as opposed to one reflected down to the supervisor):
// this indicates the monitor faulted fetching its own code or walking the
// supervisor's page tables on its behalf, which this firmware treats as
// non-recoverable. It dumps diagnostic registers and halts the hart with
// wfi rather than spinning, since a genuinely hung hart should stop
// drawing power if nothing else can be done for it.
func (m *Monitor) fatalInstructionPageFault(addr uint64) {
	ctx := m.Runtime.Context()
	print("[nezha-panic] instruction page fault at ", addr, " mepc ", ctx.Mepc, "\n")
	m.dumpContext(ctx)

	cpu := &riscv64.CPU{}
	cpu.Halt()
}

// dumpContext prints the saved supervisor register file, for the two
// fatal paths above.
func (m *Monitor) dumpContext(ctx *riscv64.SupervisorContext) {
	print("  mepc=", ctx.Mepc, " mstatus=", ctx.Mstatus, "\n")
	print("  ra=", ctx.X[riscv64.RegRA], " sp=", ctx.X[riscv64.RegSP], " gp=", ctx.X[riscv64.RegGP], "\n")
	print("  a0=", ctx.X[riscv64.RegA0], " a1=", ctx.X[riscv64.RegA1],
		" a6=", ctx.X[riscv64.RegA6], " a7=", ctx.X[riscv64.RegA7], "\n")
}
