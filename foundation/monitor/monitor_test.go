package monitor_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	mdwerror "github.com/msto63/devmon/foundation/core/error"
	mdwlog "github.com/msto63/devmon/foundation/core/log"
	"github.com/msto63/devmon/foundation/monitor"
	"github.com/msto63/devmon/foundation/monitor/fault"
	"github.com/msto63/devmon/foundation/monitor/token"
	"github.com/msto63/devmon/internal/demo"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newEngine(t *testing.T) (*monitor.Engine, *demo.Machine) {
	t.Helper()
	machine := demo.NewMachine("demo")
	engine := monitor.NewEngine(monitor.Options{Ambient: machine, Logger: mdwlog.Discard()})
	if err := demo.Install(engine, machine); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	return engine, machine
}

func run(t *testing.T, engine *monitor.Engine, line string) *monitor.Result {
	t.Helper()
	result, err := engine.Execute(context.Background(), line)
	if err != nil {
		t.Fatalf("Execute(%q) error = %v", line, err)
	}
	return result
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name      string
		setup     []string
		line      string
		wantValue interface{}
		wantText  string
	}{
		{"method", nil, "sysbus.uart0 Status", uint32(0x10), "0x10\r\n"},
		{"using prefix", nil, "uart0 BaudRate", 115200, "0x1C200\r\n"},
		{"dotted member", nil, "sysbus.uart0.BaudRate", 115200, "0x1C200\r\n"},
		{"dotted member with using", nil, "uart0.FlowControl", false, "false\r\n"},
		{"property write", []string{"uart0 BaudRate 9600"}, "uart0 BaudRate", 9600, "0x2580\r\n"},
		{"assignment form", []string{"uart0 BaudRate = 2400"}, "uart0 BaudRate", 2400, "0x960\r\n"},
		{"overload int", []string{"uart0 Configure 57600"}, "uart0 BaudRate", 57600, "0xE100\r\n"},
		{"overload int bool", []string{"uart0 Configure 9600 true"}, "uart0 FlowControl", true, "true\r\n"},
		{"overload string", []string{`uart0 Configure "7E2"`}, "uart0 Settings DataBits", 7, "0x7\r\n"},
		{"chained enum write", []string{"uart0 Settings Parity Odd"}, "uart0 Settings Parity", demo.ParityOdd,
			"Odd\r\n\r\nPossible values are:\r\n\tNone\r\n\tEven\r\n\tOdd\r\n\r\n"},
		{"enum property", []string{"gpio.led0 State Blinking"}, "gpio.led0 State", demo.LEDBlinking,
			"Blinking\r\n\r\nPossible values are:\r\n\tOff\r\n\tOn\r\n\tBlinking\r\n\r\n"},
		{"default indexer write", []string{"regs [4] 0x55"}, "regs [4]", uint32(0x55), "0x55\r\n"},
		{"indexer by name", []string{"regs [8] 0xAB"}, `regs Registers ["DATA"]`, uint32(0xAB), "0xAB\r\n"},
		{"hex indexer offset", []string{"regs Registers [0xC] 0x7"}, "regs Registers [0xC]", uint32(0x7), "0x7\r\n"},
		{"variadic", nil, "uart0 Send 0x41 0x42 0x43", 3, "0x3\r\n"},
		{"variable", []string{"$baud = 19200", "uart0 BaudRate $baud"}, "uart0 BaudRate", 19200, "0x4B00\r\n"},
		{"conditional variable", []string{"$baud = 19200", "$baud ?= 300", "uart0 BaudRate $baud"}, "uart0 BaudRate", 19200, "0x4B00\r\n"},
		{"ambient parameter", nil, "uart0 Owner", "demo", "demo\r\n"},
		{"select", nil, "sysbus Select Kind", []interface{}{"uart", "led", "registers"}, "[\r\nuart, led, registers, \r\n]\r\n"},
		{"foreach", []string{"uart0 BaudRate 300"}, "sysbus ForEach Reset", nil, ""},
		{"extension", nil, "sysbus ResetAll", "uart,led,registers", "uart,led,registers\r\n"},
		{"map", []string{"regs [0] 1"}, "regs Named", map[string]uint32{"CTRL": 1, "STATUS": 0, "DATA": 0},
			"CTRL   : 0x1\r\nDATA   : 0x0\r\nSTATUS : 0x0\r\n"},
		{"group", nil, "leds Select Kind", []interface{}{"led"}, "[\r\nled, \r\n]\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := newEngine(t)
			for _, line := range tt.setup {
				run(t, engine, line)
			}
			got := run(t, engine, tt.line)
			if diff := cmp.Diff(tt.wantValue, got.Value); diff != "" {
				t.Errorf("Value mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantText, got.Text); diff != "" {
				t.Errorf("Text mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExecuteSideEffects(t *testing.T) {
	engine, machine := newEngine(t)

	run(t, engine, "uart0 Connect term0")
	run(t, engine, `uart0 WriteLine "hi" repeat=2`)
	if diff := cmp.Diff([]string{"hi", "hi"}, machine.Term.Lines()); diff != "" {
		t.Errorf("terminal lines mismatch (-want +got):\n%s", diff)
	}

	run(t, engine, "uart0 BaudRate 300")
	run(t, engine, "sysbus ResetAll")
	if machine.Resets() != 1 || machine.UART.BaudRate() != 115200 {
		t.Errorf("after ResetAll: resets = %d, baud = %d", machine.Resets(), machine.UART.BaudRate())
	}

	if got := run(t, engine, "sysbus.regs Dump").Text; !strings.HasPrefix(got, "---") || !strings.Contains(got, "|Offset|") {
		t.Errorf("Dump text = %q, want a table", got)
	}
	if got := run(t, engine, "gpio.led0 Snapshot").Text; !strings.HasPrefix(got, "\x1b]1337;File=") {
		t.Errorf("Snapshot text = %q, want an inline image", got)
	}
}

func TestExecuteFaults(t *testing.T) {
	tests := []struct {
		line        string
		wantKind    fault.Kind
		wantMessage string
	}{
		{"nosuch Status", fault.KindResolution, "Could not find device nosuch."},
		{"sysbus.uart9 Status", fault.KindResolution, "Could not find device sysbus.uart9, the longest match is sysbus."},
		{"uart0 Missing", fault.KindResolution, ""},
		{"uart0 BaudRate $undefined", fault.KindResolution, "No such variable: $undefined"},
		{"uart0 Configure true", fault.KindParametersMismatch, "Parameters did not match the signature"},
		{`uart0 Name = "x"`, fault.KindAccess, ""},
		{"uart0 Settings Parity Mark", fault.KindConversion, ""},
		{`uart0 Configure "unterminated`, fault.KindSyntax, ""},
		{"[1] Status", fault.KindSyntax, ""},
		{"$x =", fault.KindSyntax, "Missing value for $x"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			engine, _ := newEngine(t)
			_, err := engine.Execute(context.Background(), tt.line)
			f, ok := fault.As(err)
			if !ok {
				t.Fatalf("Execute() error = %v, want a fault", err)
			}
			if f.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s (%v)", f.Kind, tt.wantKind, err)
			}
			if tt.wantMessage != "" && f.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", f.Message, tt.wantMessage)
			}
			if !fault.IsRecoverable(err) {
				t.Error("fault is not recoverable")
			}
		})
	}
}

func TestUsage(t *testing.T) {
	engine, _ := newEngine(t)

	got := run(t, engine, "uart0")
	if got.Value != nil || !strings.Contains(got.Text, "The following methods are available:") {
		t.Errorf("bare device result = %#v", got)
	}
	if !strings.Contains(got.Text, " int BaudRate\n") || !strings.Contains(got.Text, " sysbus.uart0 MethodName") {
		t.Errorf("usage text = %q", got.Text)
	}

	text, err := engine.Usage("regs")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "Registers[uint32 offset]") || !strings.Contains(text, "Dump ()") {
		t.Errorf("Usage(regs) = %q", text)
	}

	if _, err := engine.Usage("nosuch"); !fault.IsKind(err, fault.KindResolution) {
		t.Errorf("Usage(nosuch) error = %v", err)
	}
}

func TestUsageFor(t *testing.T) {
	engine, _ := newEngine(t)
	_, err := engine.Execute(context.Background(), "uart0 Configure true")
	text := engine.UsageFor(err)
	for _, want := range []string{"Configure (int baud)", "Configure (string format)", "Configure (int baud, bool flowControl)"} {
		if !strings.Contains(text, want) {
			t.Errorf("UsageFor() = %q, missing %q", text, want)
		}
	}
	if strings.Contains(text, "Status") {
		t.Errorf("UsageFor() lists unrelated members: %q", text)
	}
	if got := engine.UsageFor(errors.New("other")); got != "" {
		t.Errorf("UsageFor(plain error) = %q", got)
	}
}

func TestMemberErrorsAndPanics(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.Execute(context.Background(), "uart0 BaudRate = -5")
	if err == nil || err.Error() != "invalid baud rate -5" || fault.IsRecoverable(err) {
		t.Errorf("member error = %v, want it unchanged", err)
	}

	if err := engine.RegisterExtension("Explode", func(*demo.UART) int { panic("boom") }); err != nil {
		t.Fatal(err)
	}
	_, err = engine.Execute(context.Background(), "uart0 Explode")
	if !mdwerror.HasCode(err, mdwerror.CodeMonitorInvocation) || !strings.Contains(err.Error(), "boom") {
		t.Errorf("panic error = %v", err)
	}
	if fault.IsRecoverable(err) {
		t.Error("panic reported as a command fault")
	}

	errSentinel := errors.New("bus fault")
	if err := engine.RegisterExtension("Fault", func(*demo.UART) int { panic(errSentinel) }); err != nil {
		t.Fatal(err)
	}
	_, err = engine.Execute(context.Background(), "uart0 Fault")
	if !errors.Is(err, errSentinel) || !mdwerror.HasCode(err, mdwerror.CodeMonitorInvocation) {
		t.Errorf("panic with error value = %v, want it wrapped", err)
	}
	if err == nil || !strings.HasSuffix(err.Error(), "member panicked: bus fault") {
		t.Errorf("panic message = %v", err)
	}
}

func TestResultMetadata(t *testing.T) {
	engine, _ := newEngine(t)
	got := run(t, engine, "uart0 Status")
	if _, err := uuid.Parse(got.RequestID); err != nil {
		t.Errorf("RequestID %q is not a uuid: %v", got.RequestID, err)
	}
	if other := run(t, engine, "uart0 Status"); other.RequestID == got.RequestID {
		t.Error("request ids repeat")
	}

	empty, err := engine.ExecuteTokens(context.Background(), nil)
	if err != nil || empty.Value != nil || empty.Text != "" {
		t.Errorf("empty command = %#v, %v", empty, err)
	}
}

func TestExecuteCanceled(t *testing.T) {
	engine, _ := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := engine.Execute(ctx, "uart0 Status"); !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

func TestVariables(t *testing.T) {
	engine, _ := newEngine(t)
	engine.SetVariable("rate", token.NewDecimal(600))
	run(t, engine, "$regs = sysbus.regs")

	if diff := cmp.Diff([]string{"rate", "regs"}, engine.Variables()); diff != "" {
		t.Errorf("Variables() mismatch (-want +got):\n%s", diff)
	}
	run(t, engine, "uart0 BaudRate $rate")
	if got := run(t, engine, "$regs Kind").Value; got != "registers" {
		t.Errorf("$regs Kind = %v", got)
	}

	engine.SetVariable("rate")
	if _, ok := engine.Variable("rate"); ok {
		t.Error("SetVariable() with no value kept the variable")
	}
}

func TestClearCache(t *testing.T) {
	engine, _ := newEngine(t)
	run(t, engine, "uart0 Status")
	before := engine.CacheStats()
	if before.Types == 0 {
		t.Fatal("cache is empty after a command")
	}
	engine.ClearCache()
	after := engine.CacheStats()
	if after.Types != 0 || after.Clears != before.Clears+1 {
		t.Errorf("stats after ClearCache = %+v", after)
	}
}

func TestConcurrentExecute(t *testing.T) {
	engine, _ := newEngine(t)
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			result, err := engine.Execute(context.Background(), "sysbus.uart0 Status")
			if err != nil {
				return err
			}
			if result.Value != uint32(0x10) {
				return errors.New("unexpected status")
			}
			if i%4 == 0 {
				engine.ClearCache()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
