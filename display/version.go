package display

import (
	"fmt"
	"runtime/debug"
)

// BuildVersion returns the formatted version string for a program name
// and declared version. When the document declares no version the build
// metadata of the running binary is used as a fallback.
func BuildVersion(name, version string) string {
	if version == "" {
		inferred, err := inferVersion()
		if err != nil {
			return "No version specified"
		}
		version = inferred
	}
	if name != "" {
		name += " "
	}
	return fmt.Sprintf("%sv%s", name, version)
}

// inferVersion attempts to infer the module version from build info.
func inferVersion() (string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", fmt.Errorf("unable to read build info")
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}
	return "", fmt.Errorf("no version info found in build metadata")
}
