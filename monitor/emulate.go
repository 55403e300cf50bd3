// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package monitor

import (
	"github.com/orangecms/rustsbi-nezha/hal"
	"github.com/orangecms/rustsbi-nezha/riscv64"
)

// CSR numbers for the read-only time counters, as they appear in the
// 12-bit immediate field of the CSRRS encoding `rdtime`/`rdtimeh` expand
// to.
const (
	csrTime  = 0xC01
	csrTimeH = 0xC81
)

// decodeCSRR recognises the `CSRRS rd, csr, x0` encoding used by the
// pseudo-instructions rdtime/rdtimeh/rdcycle/rdinstret. rs1 must be x0
// (the instruction only reads the CSR).
func decodeCSRR(insn uint32) (csr uint32, rd uint32, ok bool) {
	opcode := insn & 0x7f
	funct3 := (insn >> 12) & 0x7
	rs1 := (insn >> 15) & 0x1f

	if opcode != 0x73 || funct3 != 2 || rs1 != 0 {
		return 0, 0, false
	}

	return insn >> 20, (insn >> 7) & 0x1f, true
}

// emulateRdtime answers `rdtime`/`rdtimeh`, the 1.10+ pseudo-instructions
// this core still traps as illegal, from the platform's mtime source.
func emulateRdtime(ctx *riscv64.SupervisorContext, mtime hal.MTime, insn uint32) bool {
	csr, rd, ok := decodeCSRR(insn)
	if !ok {
		return false
	}

	var val uint64
	switch csr {
	case csrTime:
		val = mtime.Mtime()
	case csrTimeH:
		val = mtime.Mtime() >> 32
	default:
		return false
	}

	if rd != 0 {
		ctx.X[rd] = val
	}
	ctx.AdvancePC(4)
	return true
}

// emulateSfenceVMA re-executes a trapped supervisor SFENCE.VMA in M-mode.
func emulateSfenceVMA(ctx *riscv64.SupervisorContext, insn uint32) bool {
	if !riscv64.IsSfenceVMA(insn) {
		return false
	}
	riscv64.ExecuteSfenceVMA()
	ctx.AdvancePC(4)
	return true
}

// emulateWfi turns the precise encoding this core traps `wfi` as into a
// no-op; a real wait would stall the monitor loop.
func emulateWfi(ctx *riscv64.SupervisorContext, insn uint32) bool {
	if insn != riscv64.WfiEncoding {
		return false
	}
	ctx.AdvancePC(4)
	return true
}

// Fixed floating-point load/store encodings this core's supervisor is
// observed to trap on. 32-bit encodings are matched exactly; the 16-bit
// compressed `c.fsd` forms are matched on their low halfword only, since
// the fetched word's upper half is whatever instruction follows.
const (
	fpFldA0          = 0x00053507
	fpFsdA0          = 0x00a53027
	compressedMask   = 0xffff
	fpCompressedFsd1 = 0xb920
	fpCompressedFsd2 = 0xbd24
)

// emulateFPTable answers the fixed set of FP loads/stores by executing the
// equivalent instruction inline with mstatus.FS forced to Dirty. It
// returns false for any instruction word not in the table.
func emulateFPTable(ctx *riscv64.SupervisorContext, insn uint32) bool {
	switch insn {
	case fpFldA0:
		riscv64.ExecuteFLDA0(ctx.X[riscv64.RegA0])
		ctx.AdvancePC(4)
		return true
	case fpFsdA0:
		riscv64.ExecuteFSDA0(ctx.X[riscv64.RegA0])
		ctx.AdvancePC(4)
		return true
	}

	switch insn & compressedMask {
	case fpCompressedFsd1:
		riscv64.ExecuteCompressedFSD1(ctx.X[riscv64.RegS0])
		ctx.AdvancePC(2)
		return true
	case fpCompressedFsd2:
		riscv64.ExecuteCompressedFSD2(ctx.X[riscv64.RegS0])
		ctx.AdvancePC(2)
		return true
	}

	return false
}

// emulateIllegalInstruction runs the emulation chain in fixed order,
// returning true as soon as a handler claims the instruction.
func emulateIllegalInstruction(ctx *riscv64.SupervisorContext, mtime hal.MTime, insn uint32) bool {
	if emulateRdtime(ctx, mtime, insn) {
		return true
	}
	if emulateSfenceVMA(ctx, insn) {
		return true
	}
	if emulateWfi(ctx, insn) {
		return true
	}
	if emulateFPTable(ctx, insn) {
		return true
	}
	return false
}
