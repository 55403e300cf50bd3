// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package monitor

import (
	"github.com/orangecms/rustsbi-nezha/riscv64"
	"github.com/orangecms/rustsbi-nezha/sbi"
)

// The non-standard extension a supervisor calls to register its M-mode
// external-interrupt up-call handler, needed because the 1.9.1 privilege
// draft this core implements has no notion of an S-mode external
// interrupt: PLIC interrupts always arrive as M-mode external, and must be
// relayed to the supervisor by directly invoking supervisor code.
const (
	sextExtensionID = 0x0A000004
	sextFunctionID  = 0x210
)

// tryLocalEmulation answers an SbiCall without going through the standard
// dispatch registry, when the call is one this monitor claims for itself.
// It reports whether it claimed (eid, fid).
func tryLocalEmulation(rt *riscv64.Runtime, eid, fid uint64, args [6]uint64) (sbi.SbiRet, bool) {
	if eid != sextExtensionID || fid != sextFunctionID {
		return sbi.SbiRet{}, false
	}

	rt.SetDevIntrEntry(args[0])
	riscv64.SetMIE(riscv64.IRQ_M_EXT)

	return sbi.SbiRet{Error: sbi.Success, Value: 0}, true
}

// preprocessSupervisorExternal runs ahead of every SbiCall dispatch. When
// the supervisor is about to make the SBI v0.1 legacy set_timer call
// (EID 0) while an M-timer interrupt is pending, it re-arms mie.MEIE,
// which forwardSupervisorTimer cleared to avoid re-entering the external
// handler while the supervisor may be holding a lock taken from inside
// that handler.
func preprocessSupervisorExternal(rt *riscv64.Runtime, eid uint64) {
	if eid != 0 {
		return
	}
	if riscv64.MachineTimerPending() && rt.DevIntrEntry() != 0 {
		riscv64.SetMIE(riscv64.IRQ_M_EXT)
	}
}

// callSupervisorInterrupt invokes the registered external-interrupt
// handler in M-mode, with the supervisor's own memory translation active,
// and refreshes ctx.Mstatus from the value observed when the handler
// returns so the resumed supervisor sees consistent state. The PLIC claim
// brackets the up-call so the source is only completed, and claimable
// again, once the supervisor handler has actually run.
func (m *Monitor) callSupervisorInterrupt() {
	handler := m.Runtime.DevIntrEntry()
	if handler == 0 {
		return
	}

	var id uint32
	if m.PLIC != nil {
		id = m.PLIC.Claim()
		if id == 0 {
			return
		}
	}

	m.Runtime.Context().Mstatus = riscv64.CallSupervisorHandler(handler)

	if m.PLIC != nil {
		m.PLIC.Complete(id)
	}
}

// forwardSupervisorTimer reflects an M-mode timer interrupt down to the
// supervisor's own timer interrupt line, masking the M-level sources that
// would otherwise double-deliver it.
func forwardSupervisorTimer() {
	riscv64.SetMIP(riscv64.IRQ_S_TIMER)
	riscv64.ClearMIE(riscv64.IRQ_M_EXT)
	riscv64.ClearMIE(riscv64.IRQ_M_TIMER)
}

// forwardSupervisorSoft reflects an M-mode software interrupt down to the
// supervisor's own software interrupt line.
func forwardSupervisorSoft() {
	riscv64.SetMIP(riscv64.IRQ_S_SOFT)
	riscv64.ClearMIE(riscv64.IRQ_M_SOFT)
}
