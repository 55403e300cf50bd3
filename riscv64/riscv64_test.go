// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package riscv64

import (
	"testing"
	"unsafe"
)

func TestSupervisorContextLayout(t *testing.T) {
	var c SupervisorContext

	if off := unsafe.Offsetof(c.X); off != 0 {
		t.Fatalf("X must be the first field, got offset %d", off)
	}
	if off, want := unsafe.Offsetof(c.Mepc), uintptr(32*8); off != want {
		t.Fatalf("Mepc offset = %d, want %d", off, want)
	}
	if off, want := unsafe.Offsetof(c.Mstatus), uintptr(32*8+8); off != want {
		t.Fatalf("Mstatus offset = %d, want %d", off, want)
	}
}

func TestRuntimeLayout(t *testing.T) {
	var rt Runtime
	if off := unsafe.Offsetof(rt.ctx); off != 0 {
		t.Fatalf("ctx must be the first field, got offset %d", off)
	}
}

func TestClassifyTrapInterrupts(t *testing.T) {
	size := uint64(XLEN - 1)
	top := uint64(1) << size

	cases := []struct {
		mcause uint64
		want   TrapKind
	}{
		{top | MachineExternalInterrupt, TrapExternalInterrupt},
		{top | MachineTimerInterrupt, TrapMachineTimer},
		{top | MachineSoftwareInterrupt, TrapMachineSoft},
		{top | SupervisorExternalInterrupt, TrapIllegalInstruction},
	}
	for _, c := range cases {
		got := classifyTrap(c.mcause, 0)
		if got.Kind != c.want {
			t.Errorf("classifyTrap(%#x) = %v, want %v", c.mcause, got.Kind, c.want)
		}
	}
}

func TestClassifyTrapExceptions(t *testing.T) {
	cases := []struct {
		mcause uint64
		mtval  uint64
		want   TrapKind
		addr   uint64
	}{
		{EnvironmentCallFromS, 0, TrapSbiCall, 0},
		{IllegalInstruction, 0, TrapIllegalInstruction, 0},
		{InstructionAccessFault, 0x1000, TrapInstructionFault, 0x1000},
		{LoadAccessFault, 0x2000, TrapLoadFault, 0x2000},
		{StoreAccessFault, 0x3000, TrapStoreFault, 0x3000},
		{InstructionPageFault, 0x4000, TrapInstructionPageFault, 0x4000},
		{LoadPageFault, 0xDEAD0000, TrapLoadPageFault, 0xDEAD0000},
		{StorePageFault, 0x5000, TrapStorePageFault, 0x5000},
		{Breakpoint, 0, TrapIllegalInstruction, 0},
	}
	for _, c := range cases {
		got := classifyTrap(c.mcause, c.mtval)
		if got.Kind != c.want || got.Addr != c.addr {
			t.Errorf("classifyTrap(%#x, %#x) = %v/%#x, want %v/%#x",
				c.mcause, c.mtval, got.Kind, got.Addr, c.want, c.addr)
		}
	}
}

func TestTrapKindString(t *testing.T) {
	if got := TrapSbiCall.String(); got != "SbiCall" {
		t.Errorf("String() = %q", got)
	}
	if got := TrapKind(99).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
}

func TestSupervisorContextAccessors(t *testing.T) {
	var c SupervisorContext
	c.X[RegA0] = 1
	c.X[RegA1] = 2
	c.X[RegA6] = 3
	c.X[RegA7] = 0x10

	if c.A0() != 1 || c.A1() != 2 || c.A6() != 3 || c.A7() != 0x10 {
		t.Fatalf("accessor mismatch: %+v", c)
	}

	args := c.SbiArgs()
	if args[0] != 1 || args[1] != 2 {
		t.Fatalf("SbiArgs = %v", args)
	}

	c.SetReturn(0, 42)
	if c.A0() != 0 || c.A1() != 42 {
		t.Fatalf("SetReturn mismatch: a0=%d a1=%d", c.A0(), c.A1())
	}

	c.Mepc = 0x1000
	c.AdvancePC(4)
	if c.Mepc != 0x1004 {
		t.Fatalf("AdvancePC = %#x, want 0x1004", c.Mepc)
	}

	c.Mstatus = uint64(PrivS) << MSTATUS_MPP
	if c.MPP() != PrivS {
		t.Fatalf("MPP() = %d, want %d", c.MPP(), PrivS)
	}
}
