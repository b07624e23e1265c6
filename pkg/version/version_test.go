package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionFormat(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q does not match semver format (x.y.z)", Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version || info.GitCommit != GitCommit || info.BuildDate != BuildDate {
		t.Errorf("Get() = %+v does not reflect the build variables", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-10-14", GoVersion: "go1.23.0", Platform: "linux/amd64"}
	got := info.String()

	for _, want := range []string{"devmon v1.2.3\n", "Git Commit: abc123", "Build Date: 2026-10-14", "Go Version: go1.23.0", "OS/Arch:    linux/amd64"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}
