// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package nezha

import "github.com/orangecms/rustsbi-nezha/riscv64"

// Trap-delegation bit layout for medeleg/mideleg on this core, documented
// here for the boot stub that programs them: this firmware reads the
// resulting registers (riscv64.ReadMedeleg, should_transfer_trap's
// predicate) but does not itself decide which causes are delegated.
const (
	DelegInstructionMisaligned = 1 << riscv64.InstructionAddressMisaligned
	DelegInstructionFault      = 1 << riscv64.InstructionAccessFault
	DelegIllegalInstruction    = 1 << riscv64.IllegalInstruction
	DelegBreakpoint            = 1 << riscv64.Breakpoint
	DelegLoadMisaligned        = 1 << riscv64.LoadAddressMisaligned
	DelegLoadFault             = 1 << riscv64.LoadAccessFault
	DelegStoreMisaligned       = 1 << riscv64.StoreAddressMisaligned
	DelegStoreFault            = 1 << riscv64.StoreAccessFault
	DelegEcallFromU            = 1 << riscv64.EnvironmentCallFromU
	DelegInstructionPageFault  = 1 << riscv64.InstructionPageFault
	DelegLoadPageFault         = 1 << riscv64.LoadPageFault
	DelegStorePageFault        = 1 << riscv64.StorePageFault
)

// mideleg bit positions mirror the interrupt codes in riscv64/exception.go.
const (
	DelegSupervisorSoft  = 1 << riscv64.SupervisorSoftwareInterrupt
	DelegSupervisorTimer = 1 << riscv64.SupervisorTimerInterrupt
)
