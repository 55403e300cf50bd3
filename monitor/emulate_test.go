// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package monitor

import "testing"

func TestDecodeCSRRRdtime(t *testing.T) {
	// rdtime x5  ==  csrrs x5, time, x0
	insn := uint32(0xc01022f3)

	csr, rd, ok := decodeCSRR(insn)
	if !ok {
		t.Fatal("expected a valid CSRRS decode")
	}
	if csr != csrTime {
		t.Errorf("csr = %#x, want %#x", csr, csrTime)
	}
	if rd != 5 {
		t.Errorf("rd = %d, want 5", rd)
	}
}

func TestDecodeCSRRRejectsWrongFunct3(t *testing.T) {
	// csrrw x5, time, x0 -- funct3 = 1, not a read-only rdtime form.
	insn := uint32(0xc01012f3)
	if _, _, ok := decodeCSRR(insn); ok {
		t.Fatal("CSRRW should not decode as rdtime-style CSRRS")
	}
}

func TestDecodeCSRRRejectsNonzeroRs1(t *testing.T) {
	// csrrs x5, time, x1 -- rs1 != x0.
	insn := uint32(0xc010a2f3)
	if _, _, ok := decodeCSRR(insn); ok {
		t.Fatal("a CSRRS with rs1 != x0 should not decode")
	}
}

func TestFPTableCompressedMatchIgnoresUpperHalf(t *testing.T) {
	// The upper 16 bits are whatever follows in memory, not padding; the
	// match must only look at the low half.
	word := uint32(0xdead0000) | fpCompressedFsd1
	if word&compressedMask != fpCompressedFsd1 {
		t.Fatalf("low-halfword match failed for %#x", word)
	}
}
