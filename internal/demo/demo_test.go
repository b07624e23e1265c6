package demo

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwlog "github.com/msto63/devmon/foundation/core/log"
	"github.com/msto63/devmon/foundation/monitor"
)

func TestInstall(t *testing.T) {
	m := NewMachine("demo")
	engine := monitor.NewEngine(monitor.Options{Ambient: m, Logger: mdwlog.Discard()})
	if err := Install(engine, m); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	want := []string{"leds", "sysbus", "sysbus.gpio.led0", "sysbus.regs", "sysbus.uart0", "term0"}
	if diff := cmp.Diff(want, engine.Registry().Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	if err := Install(engine, m); err == nil {
		t.Error("second Install() error = nil, want duplicate registration error")
	}
}

func TestConfigureFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    Settings
		wantErr bool
	}{
		{format: "8N1", want: Settings{DataBits: 8, StopBits: 1, Parity: ParityNone}},
		{format: "7E2", want: Settings{DataBits: 7, StopBits: 2, Parity: ParityEven}},
		{format: "5O1", want: Settings{DataBits: 5, StopBits: 1, Parity: ParityOdd}},
		{format: "9N1", wantErr: true},
		{format: "8X1", wantErr: true},
		{format: "8N3", wantErr: true},
		{format: "8N", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			u := NewUART("uart0")
			err := u.ConfigureFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConfigureFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, *u.Settings); diff != "" {
				t.Errorf("Settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUARTReset(t *testing.T) {
	u := NewUART("uart0")
	if err := u.ConfigureFull(9600, true); err != nil {
		t.Fatalf("ConfigureFull() error = %v", err)
	}
	u.Send(1, 2, 3)
	u.Reset()

	if u.BaudRate() != 115200 || u.FlowControl() || len(u.Sent()) != 0 {
		t.Errorf("after Reset: baud=%d flow=%v sent=%v", u.BaudRate(), u.FlowControl(), u.Sent())
	}
	if err := u.SetBaudRate(0); err == nil {
		t.Error("SetBaudRate(0) error = nil")
	}
}

func TestWriteLine(t *testing.T) {
	u := NewUART("uart0")
	if err := u.WriteLine("hello", 1); err == nil {
		t.Fatal("WriteLine() without terminal error = nil")
	}

	term := &Terminal{}
	u.Connect(term)
	if err := u.WriteLine("hello", 2); err != nil {
		t.Fatalf("WriteLine() error = %v", err)
	}
	if diff := cmp.Diff([]string{"hello", "hello"}, term.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
	term.Clear()
	if len(term.Lines()) != 0 {
		t.Errorf("Lines() after Clear = %v", term.Lines())
	}
}

func TestRegisterBank(t *testing.T) {
	b := NewRegisterBank(4)
	if err := b.Write(0x4, 0xCAFE); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got, err := b.ReadNamed("STATUS"); err != nil || got != 0xCAFE {
		t.Errorf("ReadNamed(STATUS) = %#x, %v", got, err)
	}
	if err := b.WriteNamed("DATA", 7); err != nil {
		t.Fatalf("WriteNamed() error = %v", err)
	}

	want := map[string]uint32{"CTRL": 0, "STATUS": 0xCAFE, "DATA": 7}
	if diff := cmp.Diff(want, b.Named()); diff != "" {
		t.Errorf("Named() mismatch (-want +got):\n%s", diff)
	}

	for _, offset := range []uint32{2, 0x10, 0xFFFFFFFC} {
		if _, err := b.Read(offset); err == nil {
			t.Errorf("Read(%#x) error = nil", offset)
		}
	}
	if _, err := b.ReadNamed("NOPE"); err == nil {
		t.Error("ReadNamed(NOPE) error = nil")
	}
}

func TestResetAll(t *testing.T) {
	m := NewMachine("demo")
	m.LED.Toggle()
	if err := m.Regs.Write(0, 1); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if got := ResetAll(m.Bus, m); got != "uart,led,registers" {
		t.Errorf("ResetAll() = %q", got)
	}
	if m.LED.State() != LEDOff || m.LED.Toggles() != 0 || m.Resets() != 1 {
		t.Errorf("after ResetAll: state=%v toggles=%d resets=%d", m.LED.State(), m.LED.Toggles(), m.Resets())
	}
	if v, _ := m.Regs.Read(0); v != 0 {
		t.Errorf("register 0 = %d, want 0", v)
	}
}

func TestBusGroup(t *testing.T) {
	m := NewMachine("demo")
	if got := len(m.Bus.Group("led")); got != 1 {
		t.Errorf("Group(led) has %d members, want 1", got)
	}
	if m.Bus.Count() != 3 {
		t.Errorf("Count() = %d, want 3", m.Bus.Count())
	}

	rows := Dump(NewRegisterBank(2))
	want := [][]string{{"Offset", "Value"}, {"0x00", "0x00000000"}, {"0x04", "0x00000000"}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Dump() mismatch (-want +got):\n%s", diff)
	}
}
