// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package riscv64

import "github.com/orangecms/rustsbi-nezha/internal/bits"

// General-purpose register indices into SupervisorContext.X, following the
// standard RISC-V calling convention. X[0] is unused (x0 is hardwired to
// zero and is never saved or restored).
const (
	RegRA = 1
	RegSP = 2
	RegGP = 3
	RegTP = 4
	RegT0 = 5
	RegT1 = 6
	RegT2 = 7
	RegS0 = 8
	RegS1 = 9
	RegA0 = 10
	RegA1 = 11
	RegA2 = 12
	RegA3 = 13
	RegA4 = 14
	RegA5 = 15
	RegA6 = 16
	RegA7 = 17
	RegS2 = 18
	RegS3 = 19
	RegS4 = 20
	RegS5 = 21
	RegS6 = 22
	RegS7 = 23
	RegS8 = 24
	RegS9 = 25
	RegS10 = 26
	RegS11 = 27
	RegT3 = 28
	RegT4 = 29
	RegT5 = 30
	RegT6 = 31
)

// SupervisorContext is the full architectural snapshot of an interrupted
// supervisor-mode execution: the 31 integer general-purpose registers
// (x1..x31, x0 is constant zero and is not stored), the machine exception
// program counter, and the saved machine status register.
//
// Between two successive resumptions of the same hart's supervisor, the
// only permitted mutations of this structure are those performed by trap
// handlers before re-entry (emulation, injection) and the mepc advance
// that follows an emulated instruction or a handled SBI call.
//
// The field layout (X array first, Mepc, then Mstatus) is load-bearing:
// the assembly transfer-in/out stubs in runtime.s index into X by a
// compile-time offset and assume Mepc/Mstatus immediately follow it.
type SupervisorContext struct {
	X       [32]uint64
	Mepc    uint64
	Mstatus uint64
}

// A0 returns the SBI error/first-argument register.
func (c *SupervisorContext) A0() uint64 { return c.X[RegA0] }

// A1 returns the SBI value/second-argument register.
func (c *SupervisorContext) A1() uint64 { return c.X[RegA1] }

// A7 returns the SBI extension ID register.
func (c *SupervisorContext) A7() uint64 { return c.X[RegA7] }

// A6 returns the SBI function ID register.
func (c *SupervisorContext) A6() uint64 { return c.X[RegA6] }

// SbiArgs returns the six SBI call argument registers a0..a5.
func (c *SupervisorContext) SbiArgs() [6]uint64 {
	return [6]uint64{c.X[RegA0], c.X[RegA1], c.X[RegA2], c.X[RegA3], c.X[RegA4], c.X[RegA5]}
}

// SetReturn writes the SBI {error, value} return pair into a0/a1.
func (c *SupervisorContext) SetReturn(errorCode, value uint64) {
	c.X[RegA0] = errorCode
	c.X[RegA1] = value
}

// AdvancePC advances Mepc past an emulated or dispatched instruction of the
// given encoded length (2 for a compressed instruction, 4 otherwise).
func (c *SupervisorContext) AdvancePC(length uint64) {
	c.Mepc += length
}

// MPP returns the privilege level mstatus.MPP was set to on trap entry.
func (c *SupervisorContext) MPP() int {
	return int(bits.Get64(&c.Mstatus, MSTATUS_MPP, 0x3))
}

// TrapKind classifies the reason control returned from supervisor mode to
// the monitor.
type TrapKind int

const (
	TrapSbiCall TrapKind = iota
	TrapIllegalInstruction
	TrapExternalInterrupt
	TrapMachineTimer
	TrapMachineSoft
	TrapInstructionFault
	TrapLoadFault
	TrapStoreFault
	TrapInstructionPageFault
	TrapLoadPageFault
	TrapStorePageFault
)

func (k TrapKind) String() string {
	switch k {
	case TrapSbiCall:
		return "SbiCall"
	case TrapIllegalInstruction:
		return "IllegalInstruction"
	case TrapExternalInterrupt:
		return "ExternalInterrupt"
	case TrapMachineTimer:
		return "MachineTimer"
	case TrapMachineSoft:
		return "MachineSoft"
	case TrapInstructionFault:
		return "InstructionFault"
	case TrapLoadFault:
		return "LoadFault"
	case TrapStoreFault:
		return "StoreFault"
	case TrapInstructionPageFault:
		return "InstructionPageFault"
	case TrapLoadPageFault:
		return "LoadPageFault"
	case TrapStorePageFault:
		return "StorePageFault"
	default:
		return "Unknown"
	}
}

// MachineTrap is the tagged reason a Runtime.Resume call returned. Addr is
// only meaningful for the *Fault and *PageFault kinds, where it carries the
// faulting address read from mtval.
type MachineTrap struct {
	Kind TrapKind
	Addr uint64
}

// classifyTrap turns a raw (mcause, mtval) pair, as read by the assembly
// trap-out stub, into a MachineTrap. The top bit of mcause distinguishes
// interrupts from exceptions; the remaining bits select the cause.
func classifyTrap(mcause, mtval uint64) MachineTrap {
	size := uint64(XLEN - 1)
	isInterrupt := mcause>>size == 1
	code := mcause &^ (1 << size)

	if isInterrupt {
		switch code {
		case MachineExternalInterrupt:
			return MachineTrap{Kind: TrapExternalInterrupt}
		case MachineTimerInterrupt:
			return MachineTrap{Kind: TrapMachineTimer}
		case MachineSoftwareInterrupt:
			return MachineTrap{Kind: TrapMachineSoft}
		default:
			return MachineTrap{Kind: TrapIllegalInstruction}
		}
	}

	switch code {
	case EnvironmentCallFromS:
		return MachineTrap{Kind: TrapSbiCall}
	case IllegalInstruction:
		return MachineTrap{Kind: TrapIllegalInstruction}
	case InstructionAccessFault:
		return MachineTrap{Kind: TrapInstructionFault, Addr: mtval}
	case LoadAccessFault:
		return MachineTrap{Kind: TrapLoadFault, Addr: mtval}
	case StoreAccessFault:
		return MachineTrap{Kind: TrapStoreFault, Addr: mtval}
	case InstructionPageFault:
		return MachineTrap{Kind: TrapInstructionPageFault, Addr: mtval}
	case LoadPageFault:
		return MachineTrap{Kind: TrapLoadPageFault, Addr: mtval}
	case StorePageFault:
		return MachineTrap{Kind: TrapStorePageFault, Addr: mtval}
	default:
		return MachineTrap{Kind: TrapIllegalInstruction}
	}
}
