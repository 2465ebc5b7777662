package script

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
)

var (
	infoLine    = color.New(color.FgCyan).PrintlnFunc()
	successLine = color.New(color.FgGreen, color.Bold).PrintlnFunc()
	failureLine = color.New(color.FgRed, color.Bold).PrintlnFunc()
)

// Run writes the script to a private temporary file, marks it executable,
// runs it with sudo, and removes the file again regardless of outcome. The
// script's own exit status is reported on the console but is not an
// application error; only failures to stage or launch the script are.
func Run(content string) error {
	tmp, err := os.CreateTemp("", "rdct-*.sh")
	if err != nil {
		return fmt.Errorf("create temp script: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp script: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp script: %w", err)
	}
	if err := os.Chmod(path, 0o755); err != nil {
		return fmt.Errorf("chmod temp script: %w", err)
	}

	infoLine("Running the generated script with sudo...")
	fmt.Println("--- SCRIPT ---")
	fmt.Print(content)
	fmt.Println("--------------")

	cmd := exec.Command("sudo", "bash", path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			failureLine("Script execution failed. Please check the output above.")
			return nil
		}
		return fmt.Errorf("run script: %w", err)
	}
	successLine("Script executed successfully.")
	return nil
}
