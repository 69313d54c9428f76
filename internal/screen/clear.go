package screen

import (
	"io"
	"os/exec"
	"runtime"

	"github.com/scheerer/traffic-light-simulator/internal/logging"
)

var logger = logging.New("screen")

// clearSequence moves the cursor home and erases the display.
const clearSequence = "\033[H\033[2J"

func clearCommand() *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/c", "cls")
	}
	return exec.Command("clear")
}

// Clear wipes the terminal attached to w. When the platform command is not
// available the ANSI erase sequence is written instead.
func Clear(w io.Writer) error {
	cmd := clearCommand()
	cmd.Stdout = w
	if err := cmd.Run(); err != nil {
		logger.Debugw("clear command failed, using escape sequence", "error", err)
		_, err = io.WriteString(w, clearSequence)
		return err
	}
	return nil
}
