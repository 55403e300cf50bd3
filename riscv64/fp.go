// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package riscv64

// defined in fp.s
func executeFLDA0(addr uint64)
func executeFSDA0(addr uint64)
func executeCompressedFSD1(addr uint64)
func executeCompressedFSD2(addr uint64)

// ExecuteFLDA0 emulates a 32-bit `fld fa0, 0(a0)` against supervisor
// memory at addr, after raising mstatus.FS to Dirty.
func ExecuteFLDA0(addr uint64) { executeFLDA0(addr) }

// ExecuteFSDA0 emulates a 32-bit `fsd fa0, 0(a0)` against supervisor
// memory at addr, after raising mstatus.FS to Dirty.
func ExecuteFSDA0(addr uint64) { executeFSDA0(addr) }

// ExecuteCompressedFSD1 emulates the compressed store encoded 0xb920,
// against supervisor memory at addr, after raising mstatus.FS to Dirty.
// The encoding's compressed base register is assumed to be s0, the
// frame-pointer-relative form gcc emits for floating-point register
// spills; this is an implementer's choice where the originating
// compressed encoding does not otherwise pin down a register.
func ExecuteCompressedFSD1(addr uint64) { executeCompressedFSD1(addr) }

// ExecuteCompressedFSD2 emulates the compressed store encoded 0xbd24, on
// the same base-register assumption as ExecuteCompressedFSD1.
func ExecuteCompressedFSD2(addr uint64) { executeCompressedFSD2(addr) }
