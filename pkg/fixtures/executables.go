package fixtures

import (
	"os"
	"os/exec"
	"path/filepath"
)

// Environment toggles controlling which executables the generated suite
// skips. Accepted values are true/1/false/0; anything else falls back to
// the default for that toggle.
const (
	EnvSkipSfdx  = "SOURCE_NUTS_SKIP_SFDX"  // default true
	EnvSkipLocal = "SOURCE_NUTS_SKIP_LOCAL" // default false
)

// Executable describes one command the test harness can drive against the
// catalog. Path is empty when the command could not be located.
type Executable struct {
	Path string `yaml:"path,omitempty"`
	Skip bool   `yaml:"skip"`
}

// localRunPath is the plugin's local build output, relative to the plugin
// repository root the harness runs from.
var localRunPath = filepath.Join("bin", "run")

// Executables returns the two candidate executables: the globally installed
// sfdx CLI and the local build output. The installed CLI is skipped by
// default so routine runs exercise the code under development.
func Executables() []Executable {
	sfdx, _ := exec.LookPath("sfdx")
	return []Executable{
		{Path: sfdx, Skip: envBool(EnvSkipSfdx, true)},
		{Path: localRunPath, Skip: envBool(EnvSkipLocal, false)},
	}
}

func envBool(name string, def bool) bool {
	switch os.Getenv(name) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		return def
	}
}
