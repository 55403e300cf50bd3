// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package riscv64

// defined in interrupt.s
//
//go:noescape
func jump_to_supervisor_handler(handler uint64) uint64

// CallSupervisorHandler performs the M-mode up-call required to invoke a
// supervisor-registered external-interrupt handler: it sets mstatus.MPRV
// with MPP=S so the handler's loads and stores use supervisor translation,
// indirect-calls handler, then clears MPRV and restores the pre-call MPP.
// It returns the mstatus value observed right after the handler returns,
// to be written back into the resumed supervisor's saved context.
//
// handler must be 0-checked by the caller; this function always performs
// the call.
func CallSupervisorHandler(handler uint64) uint64 {
	return jump_to_supervisor_handler(handler)
}
