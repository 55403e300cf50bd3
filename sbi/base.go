// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package sbi

// Base extension function IDs (EID 0x10).
const (
	BaseExtensionID = 0x10

	fidGetSpecVersion    = 0
	fidGetImplID         = 1
	fidGetImplVersion    = 2
	fidProbeExtension    = 3
	fidGetMvendorID      = 4
	fidGetMarchID        = 5
	fidGetMimpID         = 6
)

// Implementation ID for the "get implementation ID" base call. There is
// no registry of these; picking an unused small integer is standard
// practice among from-scratch SBI implementations.
const implID = 0xa5

// Base implements the SBI base extension (EID 0x10): spec version,
// implementation identity, and extension probing.
type Base struct {
	// SpecVersionMajor/Minor report the implemented SBI specification
	// version, encoded as major<<24 | minor on return.
	SpecVersionMajor uint32
	SpecVersionMinor uint32

	// ImplVersion is this firmware's own version number, returned
	// verbatim by the "get implementation version" call.
	ImplVersion uint64

	// MVendorID, MArchID, MImpID mirror the mvendorid/marchid/mimpid
	// machine CSRs, as read once at boot by the caller.
	MVendorID uint64
	MArchID   uint64
	MImpID    uint64

	// Extensions lists the extension IDs this firmware answers, used to
	// implement the "probe extension" call. BaseExtensionID need not be
	// listed; it is always available.
	Extensions map[uint64]bool
}

// Ecall implements Dispatcher for the base extension.
func (b *Base) Ecall(functionID uint64, args [6]uint64) SbiRet {
	switch functionID {
	case fidGetSpecVersion:
		return SbiRet{Value: uint64(b.SpecVersionMajor)<<24 | uint64(b.SpecVersionMinor)}
	case fidGetImplID:
		return SbiRet{Value: implID}
	case fidGetImplVersion:
		return SbiRet{Value: b.ImplVersion}
	case fidProbeExtension:
		if args[0] == BaseExtensionID || b.Extensions[args[0]] {
			return SbiRet{Value: 1}
		}
		return SbiRet{Value: 0}
	case fidGetMvendorID:
		return SbiRet{Value: b.MVendorID}
	case fidGetMarchID:
		return SbiRet{Value: b.MArchID}
	case fidGetMimpID:
		return SbiRet{Value: b.MImpID}
	default:
		return SbiRet{Error: ErrNotSupported}
	}
}
