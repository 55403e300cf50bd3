// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package sbi implements the downstream SBI dispatch library the
// monitor's SbiCall handler calls into: ecall(extension, function, args)
// -> SbiRet. Only the base extension is implemented here; a production
// firmware would register the timer, IPI, HSM, and reset extensions
// behind the same Dispatcher interface.
package sbi

// Standard SBI error codes (Binary Encoding, RISC-V SBI specification).
const (
	Success               = 0
	ErrFailure            = -1
	ErrNotSupported       = -2
	ErrInvalidParam       = -3
	ErrDenied             = -4
	ErrInvalidAddress     = -5
	ErrAlreadyAvailable   = -6
	ErrAlreadyStarted     = -7
	ErrAlreadyStopped     = -8
)

// SbiRet is the {error, value} pair every SBI call returns in a0/a1.
type SbiRet struct {
	Error int64
	Value uint64
}

// A0 returns the error code reinterpreted as the unsigned register value
// the caller writes into a0.
func (r SbiRet) A0() uint64 { return uint64(r.Error) }

// A1 returns the value register.
func (r SbiRet) A1() uint64 { return r.Value }

// Dispatcher answers one SBI extension's ecalls.
type Dispatcher interface {
	Ecall(functionID uint64, args [6]uint64) SbiRet
}

// Registry routes an ecall to the Dispatcher registered for its
// extension ID, returning ErrNotSupported for anything unregistered.
type Registry struct {
	extensions map[uint64]Dispatcher
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{extensions: make(map[uint64]Dispatcher)}
}

// Register installs a Dispatcher for the given extension ID.
func (r *Registry) Register(extensionID uint64, d Dispatcher) {
	r.extensions[extensionID] = d
}

// Ecall implements the monitor's downstream SBI dispatch library call:
// ecall(extension_id, function_id, [a0..a5]) -> {error, value}.
func (r *Registry) Ecall(extensionID, functionID uint64, args [6]uint64) SbiRet {
	d, ok := r.extensions[extensionID]
	if !ok {
		return SbiRet{Error: ErrNotSupported}
	}
	return d.Ecall(functionID, args)
}
