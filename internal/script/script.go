// Package script turns the catalogue's selection state into a runnable bash
// script and executes the final artifact once the interactive session ends.
package script

import (
	"fmt"
	"strings"

	"rdct/internal/catalog"
	"rdct/internal/distro"
)

// Synthesize renders the script for the tree's current selection state. It
// is a pure function of that state plus the reboot flag: the same snapshot
// always produces byte-identical output. The UI calls it on every render
// for the live preview and once more for the final artifact.
func Synthesize(t *catalog.Tree, d distro.Distribution, reboot bool) string {
	var sb strings.Builder
	sb.WriteString("#!/bin/bash\n")
	fmt.Fprintf(&sb, "# Commands generated for %s by RHEL/CentOS TUI Manager\n", d)
	sb.WriteString("# Save this script and run it with sudo: sudo bash ./script.sh\n\n")

	scripts := t.SelectedScripts()
	if len(scripts) == 0 {
		sb.WriteString("\n# No options selected.\n")
	} else {
		for _, s := range scripts {
			sb.WriteString(s)
			sb.WriteByte('\n')
		}
	}

	if reboot {
		sb.WriteString("\necho 'Installation complete. Rebooting now...'\n")
		sb.WriteString("sudo reboot\n")
	}

	return sb.String()
}
