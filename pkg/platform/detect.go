// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Info describes the host this tool runs on.
type Info struct {
	OS     string // linux, darwin
	Arch   string // amd64, arm64
	Distro string // os-release ID, empty off linux
	Pretty string // os-release PRETTY_NAME
}

const osReleasePath = "/etc/os-release"

// Detect reads the host platform. Missing os-release data degrades to
// empty distro fields, never an error.
func Detect() Info {
	info := Info{OS: runtime.GOOS, Arch: runtime.GOARCH}
	if data, err := os.ReadFile(osReleasePath); err == nil {
		info.Distro, info.Pretty = parseOSRelease(string(data))
	}
	return info
}

// parseOSRelease pulls ID and PRETTY_NAME out of os-release content.
// Values may be bare or double-quoted.
func parseOSRelease(content string) (id, pretty string) {
	for _, line := range strings.Split(content, "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		val = strings.Trim(val, `"`)
		switch key {
		case "ID":
			id = val
		case "PRETTY_NAME":
			pretty = val
		}
	}
	return id, pretty
}

// String returns a one-line description for banners and logs.
func (i Info) String() string {
	if i.Pretty != "" {
		return fmt.Sprintf("%s (%s/%s)", i.Pretty, i.OS, i.Arch)
	}
	return fmt.Sprintf("%s/%s", i.OS, i.Arch)
}
