// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package monitor

import "testing"

func TestIsPageFaultCanonicalLow(t *testing.T) {
	if isPageFault(0x0000003f80001000) {
		t.Error("a low canonical Sv39 address should not look like a page fault")
	}
}

func TestIsPageFaultCanonicalHigh(t *testing.T) {
	// bits 63:38 all set, sign-extended from bit 38: canonical high half.
	addr := uint64(0xffffffff80001000)
	if isPageFault(addr) {
		t.Error("a high canonical Sv39 address should not look like a page fault")
	}
}

func TestIsPageFaultNonCanonical(t *testing.T) {
	// A faulting address with garbage above bit 38 cannot be a valid Sv39
	// virtual address; only a corrupt page-table walk produces one.
	addr := uint64(0x0000004000001000)
	if !isPageFault(addr) {
		t.Error("a non-canonical address should be classified as a page fault")
	}
}

func TestIsPageFaultZero(t *testing.T) {
	if isPageFault(0) {
		t.Error("address 0 is canonical and should not look like a page fault")
	}
}
