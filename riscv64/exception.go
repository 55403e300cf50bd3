// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package riscv64

import (
	"unsafe"

	"github.com/orangecms/rustsbi-nezha/internal/exception"
)

// RISC-V exception codes (non-interrupt), scause/mcause low bits
// (Table 3.6 - Volume II: RISC-V Privileged Architectures V20211203).
const (
	InstructionAddressMisaligned = 0
	InstructionAccessFault       = 1
	IllegalInstruction           = 2
	Breakpoint                   = 3
	LoadAddressMisaligned        = 4
	LoadAccessFault              = 5
	StoreAddressMisaligned       = 6
	StoreAccessFault             = 7
	EnvironmentCallFromU         = 8
	EnvironmentCallFromS         = 9
	EnvironmentCallFromM         = 11
	InstructionPageFault         = 12
	LoadPageFault                = 13
	StorePageFault               = 15
)

// RISC-V interrupt codes, mcause low bits when the sign bit is set.
const (
	SupervisorSoftwareInterrupt = 1
	MachineSoftwareInterrupt    = 3
	SupervisorTimerInterrupt    = 5
	MachineTimerInterrupt       = 7
	SupervisorExternalInterrupt = 9
	MachineExternalInterrupt    = 11
)

// defined in exception.s
func set_mtvec(addr uint64)
func set_stvec(addr uint64)
func read_stvec() uint64
func read_mepc() uint64
func read_sepc() uint64
func set_sepc(pc uint64)
func read_mcause() uint64
func read_scause() uint64
func set_scause(cause uint64)
func set_stval(val uint64)
func read_medeleg() uint64
func read_mideleg() uint64
func write_medeleg(val uint64)
func write_mideleg(val uint64)

// ReadSTVEC returns the supervisor trap vector base address register.
// Bits [1:0] select direct (0) or vectored (1) mode; the BASE field
// occupies the remaining bits.
func ReadSTVEC() uint64 {
	return read_stvec()
}

// SetSEPC, SetSCause and SetSTval write the S-mode trap value registers,
// used by the downward trap injector.
func SetSEPC(pc uint64)       { set_sepc(pc) }
func SetSCause(cause uint64)  { set_scause(cause) }
func SetSTval(val uint64)     { set_stval(val) }

// ReadMedeleg and ReadMideleg report which causes the supervisor has
// elected to receive directly, without monitor involvement.
func ReadMedeleg() uint64 { return read_medeleg() }
func ReadMideleg() uint64 { return read_mideleg() }

// WriteMedeleg and WriteMideleg program the trap-delegation registers.
// This repository does not call them itself (delegation programming is
// a boot-time concern owned by the platform's boot stub), but exposes
// them as the primitive a boot stub would need.
func WriteMedeleg(val uint64) { write_medeleg(val) }
func WriteMideleg(val uint64) { write_mideleg(val) }

// ExceptionHandler is a machine- or supervisor-mode trap entry function.
type ExceptionHandler func()

func vector(fn ExceptionHandler) uint64 {
	return **((**uint64)(unsafe.Pointer(&fn)))
}

// DefaultExceptionHandler handles a machine-mode exception by printing the
// exception program counter and trap cause before panicking. This handler
// is only ever reached if something traps in M-mode before the monitor
// loop (package monitor) installs its own vector — any later M-mode trap
// is the Runtime's own transfer-out protocol, not this function.
func DefaultExceptionHandler() {
	mcause := read_mcause()
	size := uint64(XLEN - 1)

	irq := mcause >> size
	code := mcause &^ (1 << size)

	print("machine exception: interrupt ", irq, " code ", code, " mepc ", read_mepc(), "\n")
	exception.Throw(uintptr(read_mepc()))
}

// DefaultSupervisorExceptionHandler handles a supervisor-mode exception by
// printing the exception program counter and trap cause before panicking.
func DefaultSupervisorExceptionHandler() {
	scause := read_scause()
	size := uint64(XLEN - 1)

	irq := scause >> size
	code := scause &^ (1 << size)

	print("supervisor exception: pc ", read_sepc(), " interrupt ", irq, " code ", code, "\n")
	panic("unhandled supervisor exception")
}

// SetExceptionHandler updates the CPU machine trap vector with the address
// of the argument function.
func (cpu *CPU) SetExceptionHandler(fn ExceptionHandler) {
	set_mtvec(vector(fn))
}

// SetSupervisorExceptionHandler updates the CPU supervisor trap vector with
// the address of the argument function.
func (cpu *CPU) SetSupervisorExceptionHandler(fn ExceptionHandler) {
	set_stvec(vector(fn))
}
