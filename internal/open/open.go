package open

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// File opens path in $EDITOR (vi when unset) at the given 1-based line.
func File(path string, line int) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	if line < 1 {
		line = 1
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	cmd := editorCommand(editor, path, line)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func editorCommand(editor, filePath string, lineNum int) *exec.Cmd {
	// EDITOR may carry flags, e.g. "code --wait"
	fields := strings.Fields(editor)
	name, args := fields[0], fields[1:]

	switch {
	case strings.Contains(name, "vim") || strings.Contains(name, "nvim") || name == "vi" ||
		strings.Contains(name, "nano") || strings.Contains(name, "less"):
		args = append(args, "+"+strconv.Itoa(lineNum), filePath)
	case strings.Contains(name, "code"):
		args = append(args, "--goto", filePath+":"+strconv.Itoa(lineNum))
	default:
		args = append(args, filePath)
	}
	return exec.Command(name, args...)
}
