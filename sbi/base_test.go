// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package sbi

import "testing"

func TestBaseGetSpecVersion(t *testing.T) {
	b := &Base{SpecVersionMajor: 0, SpecVersionMinor: 2}

	ret := b.Ecall(fidGetSpecVersion, [6]uint64{})
	if ret.Error != Success {
		t.Fatalf("error = %d, want Success", ret.Error)
	}
	if ret.Value != 0x00000002 {
		t.Fatalf("value = %#x, want 0x2", ret.Value)
	}
}

func TestBaseGetImplID(t *testing.T) {
	b := &Base{}
	ret := b.Ecall(fidGetImplID, [6]uint64{})
	if ret.Value != implID {
		t.Fatalf("value = %#x, want %#x", ret.Value, implID)
	}
}

func TestBaseProbeExtension(t *testing.T) {
	b := &Base{Extensions: map[uint64]bool{0x735049: true}}

	if ret := b.Ecall(fidProbeExtension, [6]uint64{BaseExtensionID}); ret.Value != 1 {
		t.Errorf("probing the base extension itself should succeed, got %d", ret.Value)
	}
	if ret := b.Ecall(fidProbeExtension, [6]uint64{0x735049}); ret.Value != 1 {
		t.Errorf("probing a registered extension should succeed, got %d", ret.Value)
	}
	if ret := b.Ecall(fidProbeExtension, [6]uint64{0xdead}); ret.Value != 0 {
		t.Errorf("probing an unregistered extension should fail, got %d", ret.Value)
	}
}

func TestBaseUnknownFunction(t *testing.T) {
	b := &Base{}
	ret := b.Ecall(0xff, [6]uint64{})
	if ret.Error != ErrNotSupported {
		t.Fatalf("error = %d, want ErrNotSupported", ret.Error)
	}
}

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry()
	r.Register(BaseExtensionID, &Base{SpecVersionMajor: 0, SpecVersionMinor: 2})

	ret := r.Ecall(BaseExtensionID, fidGetSpecVersion, [6]uint64{})
	if ret.Value != 0x2 {
		t.Fatalf("value = %#x, want 0x2", ret.Value)
	}

	ret = r.Ecall(0x0A000004, 0x210, [6]uint64{})
	if ret.Error != ErrNotSupported {
		t.Fatalf("unregistered extension should be ErrNotSupported, got %d", ret.Error)
	}
}
