// RISC-V 64-bit machine-mode monitor support.
//
// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package riscv64 implements the machine-mode trap dispatch and
// context-switch primitives for a T-HEAD Xuantie class RV64 core
// running the 1.9.1 draft of the RISC-V privileged specification.
//
// This package is only meant to be used with `GOOS=tamago GOARCH=riscv64`
// as supported by the TamaGo framework for bare metal Go, see
// https://github.com/usbarmory/tamago.
package riscv64

// This package supports 64-bit cores.
const XLEN = 64

// mstatus.MPP / mstatus.SPP privilege level encodings.
const (
	PrivU = 0
	PrivS = 1
	PrivM = 3
)

// mstatus bit positions relevant to supervisor context switching.
const (
	MSTATUS_SIE  = 1
	MSTATUS_MIE  = 3
	MSTATUS_SPIE = 5
	MSTATUS_MPIE = 7
	MSTATUS_SPP  = 8
	MSTATUS_MPP  = 11 // 2 bits
	MSTATUS_FS   = 13 // 2 bits
	MSTATUS_MPRV = 17
	MSTATUS_SUM  = 18
	MSTATUS_MXR  = 19
)

// mstatus.FS encodings.
const (
	FS_OFF     = 0
	FS_INITIAL = 1
	FS_CLEAN   = 2
	FS_DIRTY   = 3
)

// mie/mip bit positions.
const (
	IRQ_S_SOFT  = 1
	IRQ_M_SOFT  = 3
	IRQ_S_TIMER = 5
	IRQ_M_TIMER = 7
	IRQ_S_EXT   = 9
	IRQ_M_EXT   = 11
)

// CPU represents a RISC-V core instance.
type CPU struct {
	// HartID is the hardware thread identifier this CPU instance
	// represents.
	HartID uint64
}

// defined in riscv64.s
func exit(int32)

// Init performs initialization of an RV64 core instance in machine mode.
// It installs the default machine-mode exception handler; the monitor
// loop (package monitor) replaces it with its own trap entry stub before
// the first call to Resume.
func (cpu *CPU) Init() {
	cpu.HartID = read_mhartid()
	cpu.SetExceptionHandler(DefaultExceptionHandler)
}

// InitSupervisor installs the default supervisor-mode exception handler.
// A monitor that emulates or forwards every trap never lets supervisor
// code reach this handler in steady state; it exists as a fallback for
// the brief window before the monitor installs its own.
func (cpu *CPU) InitSupervisor() {
	cpu.SetSupervisorExceptionHandler(DefaultSupervisorExceptionHandler)
}

// Halt stops the calling hart. It never returns.
func (cpu *CPU) Halt() {
	exit(0)
}
