// File: uart.go
// Title: Demo UART
// Description: A serial port with overloaded configuration methods.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package demo

import (
	"errors"
	"fmt"

	"github.com/msto63/devmon/foundation/monitor/coerce"
	"github.com/msto63/devmon/foundation/monitor/member"
)

// Status bits
const (
	StatusTxEmpty uint32 = 0x10
	StatusRxReady uint32 = 0x01
)

// Parity of a serial frame
type Parity uint8

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

// EnumValues implements coerce.Enum
func (Parity) EnumValues() []coerce.EnumValue {
	return []coerce.EnumValue{
		{Name: "None", Value: int64(ParityNone)},
		{Name: "Even", Value: int64(ParityEven)},
		{Name: "Odd", Value: int64(ParityOdd)},
	}
}

// Settings is the line configuration of a UART
type Settings struct {
	DataBits int
	StopBits int
	Parity   Parity
}

// UART is a serial port
type UART struct {
	Name     string `monitor:"readonly"`
	Settings *Settings

	baud    int
	flow    bool
	sent    []byte
	peer    *Terminal
	rxReady bool
}

// NewUART creates a UART at 115200 8N1
func NewUART(name string) *UART {
	u := &UART{Name: name}
	u.Reset()
	return u
}

// MonitorMembers implements member.Describer
func (u *UART) MonitorMembers() *member.Definition {
	return &member.Definition{
		Description: "Serial port",
		Methods: map[string]*member.MethodDefinition{
			"ConfigureBaud": {
				Name:        "Configure",
				Description: "Sets the baud rate",
				Parameters:  []member.ParameterDefinition{{Name: "baud"}},
			},
			"ConfigureFormat": {
				Name:        "Configure",
				Description: "Sets the frame format, e.g. 8N1",
				Parameters:  []member.ParameterDefinition{{Name: "format"}},
			},
			"ConfigureFull": {
				Name:        "Configure",
				Description: "Sets the baud rate and hardware flow control",
				Parameters:  []member.ParameterDefinition{{Name: "baud"}, {Name: "flowControl"}},
			},
			"Send": {
				Parameters: []member.ParameterDefinition{{Name: "data"}},
			},
			"WriteLine": {
				Parameters: []member.ParameterDefinition{{Name: "text"}, {Name: "repeat", Optional: true, Default: 1}},
			},
			"Connect": {
				Parameters: []member.ParameterDefinition{{Name: "terminal"}},
			},
			"Owner": {
				Parameters: []member.ParameterDefinition{{Name: "machine", Auto: true}},
			},
		},
	}
}

// Kind implements Peripheral
func (u *UART) Kind() string { return "uart" }

// Reset restores the power-on configuration
func (u *UART) Reset() {
	u.baud = 115200
	u.flow = false
	u.sent = nil
	u.Settings = &Settings{DataBits: 8, StopBits: 1, Parity: ParityNone}
}

// Status returns the status register
func (u *UART) Status() uint32 {
	status := StatusTxEmpty
	if u.rxReady {
		status |= StatusRxReady
	}
	return status
}

// BaudRate returns the configured baud rate
func (u *UART) BaudRate() int { return u.baud }

// SetBaudRate changes the baud rate
func (u *UART) SetBaudRate(baud int) error {
	if baud <= 0 {
		return fmt.Errorf("invalid baud rate %d", baud)
	}
	u.baud = baud
	return nil
}

// FlowControl reports whether hardware flow control is on
func (u *UART) FlowControl() bool { return u.flow }

// ConfigureBaud sets the baud rate
func (u *UART) ConfigureBaud(baud int) error {
	return u.SetBaudRate(baud)
}

// ConfigureFormat parses a frame format such as 8N1 or 7E2
func (u *UART) ConfigureFormat(format string) error {
	if len(format) != 3 {
		return fmt.Errorf("invalid frame format %q", format)
	}
	data, stop := int(format[0]-'0'), int(format[2]-'0')
	parity, ok := map[byte]Parity{'N': ParityNone, 'E': ParityEven, 'O': ParityOdd}[format[1]]
	if data < 5 || data > 8 || stop < 1 || stop > 2 || !ok {
		return fmt.Errorf("invalid frame format %q", format)
	}
	u.Settings = &Settings{DataBits: data, StopBits: stop, Parity: parity}
	return nil
}

// ConfigureFull sets baud rate and flow control
func (u *UART) ConfigureFull(baud int, flow bool) error {
	if err := u.SetBaudRate(baud); err != nil {
		return err
	}
	u.flow = flow
	return nil
}

// Send transmits bytes and returns the number sent
func (u *UART) Send(data ...byte) int {
	u.sent = append(u.sent, data...)
	return len(data)
}

// Sent returns everything transmitted since the last reset
func (u *UART) Sent() []byte { return append([]byte(nil), u.sent...) }

// WriteLine sends text to the connected terminal
func (u *UART) WriteLine(text string, repeat int) error {
	if u.peer == nil {
		return errors.New("no terminal connected")
	}
	for i := 0; i < repeat; i++ {
		u.peer.receive(text)
	}
	return nil
}

// Connect attaches a terminal
func (u *UART) Connect(t *Terminal) {
	u.peer = t
}

// Owner returns the name of the machine the UART belongs to
func (u *UART) Owner(m *Machine) string { return m.Name }

// Receive marks received data as pending
func (u *UART) Receive() { u.rxReady = true }
