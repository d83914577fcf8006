// Package handoff assembles the child environment and performs the final
// transfer of control to the target executable. It is the only place in
// the program where the process environment is touched; everything before
// it operates on plain data.
package handoff

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/FlorianNAdam/clap-bash/core"
)

// SelfEnvVar carries this binary's own location into the child
// environment when self-export mode is enabled, so generated scripts can
// re-invoke the tool.
const SelfEnvVar = "CLAP_BASH"

// Environ merges bindings over the inherited base environment. Bindings
// are appended in sorted name order and shadow any inherited variable of
// the same name, so the result is deterministic for a given input.
func Environ(base []string, b core.Bindings) []string {
	out := make([]string, 0, len(base)+len(b))
	for _, kv := range base {
		name, _, _ := strings.Cut(kv, "=")
		if _, ok := b[name]; ok {
			continue
		}
		out = append(out, kv)
	}

	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out = append(out, name+"="+b[name])
	}
	return out
}

// WithSelf appends the SelfEnvVar binding for the running binary.
func WithSelf(env []string) ([]string, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolving own executable: %w", err)
	}
	return append(env, SelfEnvVar+"="+self), nil
}

// Exec replaces the current process with the target executable, passing
// env as its complete environment. It returns only on failure.
func Exec(path string, env []string) error {
	if err := unix.Exec(path, []string{path}, env); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
