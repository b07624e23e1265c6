// File: machine.go
// Title: Demo Machine
// Description: The machine that owns the demo peripherals and registers them
//              with a monitor engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package demo

import (
	"fmt"
	"iter"
	"strings"

	"github.com/msto63/devmon/foundation/monitor"
	"github.com/msto63/devmon/foundation/monitor/member"
	"github.com/msto63/devmon/foundation/monitor/objects"
)

// Peripheral is implemented by everything attached to the bus
type Peripheral interface {
	Kind() string
	Reset()
}

// Machine is injected into methods that take it as their first parameter
type Machine struct {
	Name   string
	Bus    *Bus
	UART   *UART
	LED    *LED
	Regs   *RegisterBank
	Term   *Terminal
	resets int
}

// NewMachine builds a machine with one of each peripheral
func NewMachine(name string) *Machine {
	m := &Machine{Name: name, Term: &Terminal{}}
	m.UART = NewUART("uart0")
	m.LED = &LED{}
	m.Regs = NewRegisterBank(16)
	m.Bus = &Bus{peripherals: []Peripheral{m.UART, m.LED, m.Regs}}
	return m
}

// Resets returns how often ResetAll ran
func (m *Machine) Resets() int { return m.resets }

// Install registers the machine's objects and extensions with engine
func Install(engine *monitor.Engine, m *Machine) error {
	reg := engine.Registry()
	peripherals := []struct {
		name   string
		object interface{}
	}{
		{"sysbus", m.Bus},
		{"sysbus.uart0", m.UART},
		{"sysbus.gpio.led0", m.LED},
		{"sysbus.regs", m.Regs},
	}
	for _, p := range peripherals {
		if err := reg.Register(p.name, p.object); err != nil {
			return err
		}
	}
	if err := reg.RegisterKind(objects.Group, "leds", m.Bus.Group("led")); err != nil {
		return err
	}
	if err := reg.RegisterKind(objects.External, "term0", m.Term); err != nil {
		return err
	}

	if err := engine.RegisterExtension("Dump", Dump); err != nil {
		return err
	}
	return engine.RegisterExtension("ResetAll", ResetAll,
		member.ParameterDefinition{Name: "machine", Auto: true})
}

// Bus is the system bus. It enumerates its peripherals.
type Bus struct {
	peripherals []Peripheral
}

// All yields the attached peripherals
func (b *Bus) All() iter.Seq[Peripheral] {
	return func(yield func(Peripheral) bool) {
		for _, p := range b.peripherals {
			if !yield(p) {
				return
			}
		}
	}
}

// Count returns the number of attached peripherals
func (b *Bus) Count() int { return len(b.peripherals) }

// Group returns the peripherals of one kind
func (b *Bus) Group(kind string) Group {
	var g Group
	for _, p := range b.peripherals {
		if p.Kind() == kind {
			g = append(g, p)
		}
	}
	return g
}

// Group is a named set of peripherals
type Group []Peripheral

// Terminal is a host-side console the UART can be connected to
type Terminal struct {
	lines []string
}

// Lines returns everything received so far
func (t *Terminal) Lines() []string { return append([]string(nil), t.lines...) }

// Clear drops the received lines
func (t *Terminal) Clear() { t.lines = nil }

func (t *Terminal) receive(line string) { t.lines = append(t.lines, line) }

// Dump lists the registers of a bank as a table
func Dump(b *RegisterBank) [][]string {
	rows := [][]string{{"Offset", "Value"}}
	for i, v := range b.values {
		rows = append(rows, []string{fmt.Sprintf("0x%02X", i*4), fmt.Sprintf("0x%08X", v)})
	}
	return rows
}

// ResetAll resets every peripheral of the machine and returns their kinds
func ResetAll(b *Bus, m *Machine) string {
	var kinds []string
	for p := range b.All() {
		p.Reset()
		kinds = append(kinds, p.Kind())
	}
	m.resets++
	return strings.Join(kinds, ",")
}
