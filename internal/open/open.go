// Package open launches the user's editor on a file.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const defaultEditor = "vi"

// File opens path in $VISUAL or $EDITOR and waits for the editor to exit.
func File(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	cmd, err := command(editor(), path)
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

func editor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if e := strings.TrimSpace(os.Getenv(env)); e != "" {
			return e
		}
	}
	return defaultEditor
}

// command builds the editor invocation. The editor string may carry its own
// arguments, e.g. "code --wait".
func command(editor, path string) (*exec.Cmd, error) {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no editor configured")
	}

	args := fields[1:]
	// GUI editors return immediately unless told to wait
	if strings.Contains(fields[0], "code") && !contains(args, "--wait") && !contains(args, "-w") {
		args = append(args, "--wait")
	}
	args = append(args, path)
	return exec.Command(fields[0], args...), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
