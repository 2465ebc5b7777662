// Package distro identifies the host operating system family so the
// catalogue and generated scripts can adapt to it.
package distro

import (
	"os"
	"strings"
)

const osReleasePath = "/etc/os-release"

// Distribution is the detected operating system family. Detection failure
// degrades to Unknown; the tool stays usable either way.
type Distribution int

const (
	Unknown Distribution = iota
	RHEL
	CentOS
)

func (d Distribution) String() string {
	switch d {
	case RHEL:
		return "RHEL"
	case CentOS:
		return "CentOS"
	default:
		return "Unknown"
	}
}

// Detect reads /etc/os-release and maps its ID field to a Distribution.
// Any read or parse failure yields Unknown.
func Detect() Distribution {
	data, err := os.ReadFile(osReleasePath)
	if err != nil {
		return Unknown
	}
	return Parse(string(data))
}

// Parse scans os-release content for the ID field.
func Parse(content string) Distribution {
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, "ID=") {
			continue
		}
		id := strings.TrimPrefix(line, "ID=")
		id = strings.Trim(id, `"`)
		switch id {
		case "rhel":
			return RHEL
		case "centos":
			return CentOS
		default:
			return Unknown
		}
	}
	return Unknown
}
