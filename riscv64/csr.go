// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package riscv64

// defined in csr.s
func read_mtval() uint64
func read_mhartid() uint64
func set_mie_bit(pos uint64)
func clear_mie_bit(pos uint64)
func set_mip_bit(pos uint64)
func clear_mip_bit(pos uint64)
func read_mip() uint64

// SetMIE sets bit pos of the machine interrupt-enable register.
func SetMIE(pos uint64) {
	set_mie_bit(pos)
}

// ClearMIE clears bit pos of the machine interrupt-enable register.
func ClearMIE(pos uint64) {
	clear_mie_bit(pos)
}

// SetMIP sets bit pos of the machine interrupt-pending register.
func SetMIP(pos uint64) {
	set_mip_bit(pos)
}

// ClearMIP clears bit pos of the machine interrupt-pending register.
func ClearMIP(pos uint64) {
	clear_mip_bit(pos)
}

// MachineTimerPending reports whether mip.MTIP is set.
func MachineTimerPending() bool {
	return read_mip()&(1<<IRQ_M_TIMER) != 0
}
