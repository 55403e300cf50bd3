// Nezha SBI firmware entry point
// https://github.com/usbarmory/tamago
//
// Copyright (c) The Nezha SBI Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Command nezha-sbi is the machine-mode monitor entry point for the
// Allwinner D1 "Nezha" board: it wires the board's peripherals and the
// standard SBI base extension together, then runs the trap dispatch loop
// forever.
//
// The boot stub that zeroes BSS, sets up stacks, programs PMP, and
// installs trap delegation is outside this repository's scope; by the
// time main runs, hart 0 is already in machine mode with a working Go
// runtime, which is what TamaGo's board-support packages provide.
package main

import (
	"github.com/orangecms/rustsbi-nezha/board/thead/nezha"
	"github.com/orangecms/rustsbi-nezha/monitor"
	"github.com/orangecms/rustsbi-nezha/sbi"
)

// supervisorEntry, dtbAddr are placeholders for the addresses a real boot
// stub would supply; wiring them from the actual boot protocol is outside
// this repository's scope.
const (
	supervisorEntry = 0x80200000
	dtbAddr         = 0x82200000
)

func init() {
	nezha.Init()
}

func main() {
	registry := sbi.NewRegistry()
	registry.Register(sbi.BaseExtensionID, &sbi.Base{
		SpecVersionMajor: 0,
		SpecVersionMinor: 2,
	})

	m := &monitor.Monitor{
		SBI:    registry,
		MTime:  nezha.CLINT,
		PLIC:   nezha.PLIC,
		Reset:  nezha.Reset,
		HartID: nezha.RV64.HartID,
	}

	monitor.ExecuteSupervisor(m, supervisorEntry, nezha.RV64.HartID, dtbAddr)
}
