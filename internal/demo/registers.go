// File: registers.go
// Title: Demo Register Bank
// Description: Word-addressed registers exposed through an indexer.
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

	"github.com/msto63/devmon/foundation/monitor/member"
)

// RegisterBank holds 32-bit registers at word offsets
type RegisterBank struct {
	values []uint32
	names  map[string]uint32
}

// NewRegisterBank creates a bank of n registers
func NewRegisterBank(n int) *RegisterBank {
	return &RegisterBank{
		values: make([]uint32, n),
		names:  map[string]uint32{"CTRL": 0x0, "STATUS": 0x4, "DATA": 0x8},
	}
}

// MonitorMembers implements member.Describer
func (b *RegisterBank) MonitorMembers() *member.Definition {
	return &member.Definition{
		Description: "Register bank",
		Indexers: map[string]*member.IndexerDefinition{
			"Registers": {
				Getter:     "Read",
				Setter:     "Write",
				Parameters: []member.ParameterDefinition{{Name: "offset"}},
			},
			"RegistersByName": {
				Name:       "Registers",
				Getter:     "ReadNamed",
				Setter:     "WriteNamed",
				Parameters: []member.ParameterDefinition{{Name: "register"}},
			},
		},
	}
}

// Kind implements Peripheral
func (b *RegisterBank) Kind() string { return "registers" }

// Reset clears every register
func (b *RegisterBank) Reset() {
	for i := range b.values {
		b.values[i] = 0
	}
}

// Read returns the register at a byte offset
func (b *RegisterBank) Read(offset uint32) (uint32, error) {
	i, err := b.index(offset)
	if err != nil {
		return 0, err
	}
	return b.values[i], nil
}

// Write stores value at a byte offset
func (b *RegisterBank) Write(offset, value uint32) error {
	i, err := b.index(offset)
	if err != nil {
		return err
	}
	b.values[i] = value
	return nil
}

// ReadNamed reads a register by name
func (b *RegisterBank) ReadNamed(name string) (uint32, error) {
	offset, ok := b.names[name]
	if !ok {
		return 0, fmt.Errorf("unknown register %s", name)
	}
	return b.Read(offset)
}

// WriteNamed writes a register by name
func (b *RegisterBank) WriteNamed(name string, value uint32) error {
	offset, ok := b.names[name]
	if !ok {
		return fmt.Errorf("unknown register %s", name)
	}
	return b.Write(offset, value)
}

// Named returns the named registers and their values
func (b *RegisterBank) Named() map[string]uint32 {
	out := make(map[string]uint32, len(b.names))
	for name, offset := range b.names {
		out[name] = b.values[offset/4]
	}
	return out
}

func (b *RegisterBank) index(offset uint32) (int, error) {
	if offset%4 != 0 || int(offset/4) >= len(b.values) {
		return 0, fmt.Errorf("offset 0x%X is not a register", offset)
	}
	return int(offset / 4), nil
}
