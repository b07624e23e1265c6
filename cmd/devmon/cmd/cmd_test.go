package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/devmon/foundation/core/error"
)

type runResult struct {
	stdout string
	stderr string
	err    error
}

// run executes the command tree with an empty config file so the host
// configuration cannot leak in
func run(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "devmon.toml")
	if err := os.WriteFile(cfg, []byte("[log]\nlevel = \"error\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boot.mon")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExec(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"property read", []string{"exec", "uart0", "BaudRate"}, "0x1C200\r\n"},
		{"full path", []string{"exec", "sysbus.uart0", "BaudRate"}, "0x1C200\r\n"},
		{"decimal", []string{"--number-mode", "decimal", "exec", "uart0", "BaudRate"}, "115200\r\n"},
		{"both", []string{"--number-mode", "both", "exec", "uart0 Status"}, "0x10 (16)\r\n"},
		{"zero pad", []string{"--zero-pad", "exec", "uart0", "Status"}, "0x00000010\r\n"},
		{"write prints nothing", []string{"exec", "uart0", "BaudRate", "9600"}, ""},
		{"extension", []string{"exec", "sysbus ResetAll"}, "uart,led,registers\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			if res.err != nil {
				t.Fatalf("Execute() error = %v, stderr = %q", res.err, res.stderr)
			}
			if diff := cmp.Diff(tt.want, res.stdout); diff != "" {
				t.Errorf("stdout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExecErrors(t *testing.T) {
	res := run(t, "", "exec", "nope", "Status")
	if !mdwerror.HasCode(res.err, mdwerror.CodeMonitorResolution) {
		t.Errorf("error = %v, want %s", res.err, mdwerror.CodeMonitorResolution)
	}

	res = run(t, "", "exec", "uart0 Configure true")
	if !mdwerror.HasCode(res.err, mdwerror.CodeMonitorParametersMismatch) {
		t.Fatalf("error = %v, want %s", res.err, mdwerror.CodeMonitorParametersMismatch)
	}
	if !strings.Contains(res.stderr, "Configure (int baud)") {
		t.Errorf("stderr = %q, want the Configure usage", res.stderr)
	}

	res = run(t, "", "--number-mode", "octal", "exec", "uart0 Status")
	if !mdwerror.HasCode(res.err, mdwerror.CodeInvalidConfig) {
		t.Errorf("error = %v, want %s", res.err, mdwerror.CodeInvalidConfig)
	}
}

func TestRunScript(t *testing.T) {
	script := writeScript(t, `# boot script
uart0 BaudRate 9600

uart0 BaudRate
$led = gpio.led0
$led State On
$led State
`)
	res := run(t, "", "run", script)
	if res.err != nil {
		t.Fatalf("run error = %v, stderr = %q", res.err, res.stderr)
	}
	if diff := cmp.Diff("0x2580\r\nOn\r\n\r\nPossible values are:\r\n\tOff\r\n\tOn\r\n\tBlinking\r\n\r\n", res.stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRunScriptStopsAtFirstError(t *testing.T) {
	script := writeScript(t, "nope Status\nuart0 BaudRate\n")

	res := run(t, "", "run", script)
	if res.err == nil || !strings.Contains(res.err.Error(), script+":1") {
		t.Fatalf("error = %v, want it to name %s:1", res.err, script)
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want nothing after the failing line", res.stdout)
	}

	res = run(t, "", "run", "--keep-going", script)
	if res.err == nil || !strings.Contains(res.err.Error(), "1 command(s)") {
		t.Errorf("error = %v, want a failure count", res.err)
	}
	if res.stdout != "0x1C200\r\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
	if !strings.Contains(res.stderr, "Could not find device nope.") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestRunScriptFromStdin(t *testing.T) {
	res := run(t, "uart0 Status\n", "run", "--echo", "-")
	if res.err != nil {
		t.Fatalf("run error = %v", res.err)
	}
	if diff := cmp.Diff("(monitor) uart0 Status\n0x10\r\n", res.stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}

	res = run(t, "", "run", filepath.Join(t.TempDir(), "missing.mon"))
	if !mdwerror.HasCode(res.err, mdwerror.CodeNotFound) {
		t.Errorf("error = %v, want %s", res.err, mdwerror.CodeNotFound)
	}
}

func TestShell(t *testing.T) {
	input := strings.Join([]string{
		"uart0 BaudRate 57600",
		"uart0 BaudRate",
		"$baud = 9600",
		"vars",
		"nope Status",
		"quit",
		"uart0 Status",
	}, "\n")

	res := run(t, input, "shell")
	if res.err != nil {
		t.Fatalf("shell error = %v", res.err)
	}
	if diff := cmp.Diff("0xE100\r\n$baud = 9600\n", res.stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(res.stderr, "Error: Could not find device nope.") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestShellBuiltins(t *testing.T) {
	res := run(t, "uart0 Status\nuart0 Status\nstats\nclear-cache\nhelp\n", "shell")
	if res.err != nil {
		t.Fatalf("shell error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "hits:") {
		t.Errorf("stdout = %q, want cache statistics", res.stdout)
	}
	if !strings.Contains(res.stdout, "sysbus.uart0") || !strings.Contains(res.stdout, "group") {
		t.Errorf("stdout = %q, want the device list", res.stdout)
	}
}

func TestDescribe(t *testing.T) {
	res := run(t, "", "describe")
	if res.err != nil {
		t.Fatalf("describe error = %v", res.err)
	}
	for _, want := range []string{"leds", "sysbus.gpio.led0", "sysbus.regs", "term0", "external"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("device list %q is missing %q", res.stdout, want)
		}
	}

	res = run(t, "", "describe", "uart0")
	if res.err != nil {
		t.Fatalf("describe uart0 error = %v", res.err)
	}
	for _, want := range []string{"The following methods are available:", "WriteLine", "BaudRate"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("usage %q is missing %q", res.stdout, want)
		}
	}

	res = run(t, "", "describe", "nope")
	if !mdwerror.HasCode(res.err, mdwerror.CodeMonitorResolution) {
		t.Errorf("error = %v, want %s", res.err, mdwerror.CodeMonitorResolution)
	}
}

func TestVersion(t *testing.T) {
	res := run(t, "", "version")
	if res.err != nil {
		t.Fatalf("version error = %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "devmon v") {
		t.Errorf("stdout = %q", res.stdout)
	}
}
