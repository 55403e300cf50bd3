// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package riscv64

// WfiEncoding is the exact 32-bit encoding of `wfi` that traps as an
// illegal instruction on this core and must be emulated as a no-op.
const WfiEncoding = 0x10500073

// sfenceVMAMask/sfenceVMAMatch test an instruction word against the
// SFENCE.VMA opcode regardless of its rs1/rs2 operands (funct7, funct3,
// rd and the opcode bits are fixed; rs1/rs2 select the address/ASID and
// are ignored, since this core's emulation re-executes a full flush).
const (
	sfenceVMAMask  = 0xfe007fff
	sfenceVMAMatch = 0x12000073
)

// IsSfenceVMA reports whether insn is an SFENCE.VMA encoding.
func IsSfenceVMA(insn uint32) bool {
	return insn&sfenceVMAMask == sfenceVMAMatch
}

// defined in instr.s
func execute_sfence_vma()

// ExecuteSfenceVMA performs a full TLB flush (SFENCE.VMA x0, x0) in
// M-mode, on behalf of a trapped supervisor SFENCE.VMA.
func ExecuteSfenceVMA() {
	execute_sfence_vma()
}
