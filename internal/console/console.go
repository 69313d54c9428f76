// Package console owns the line-oriented standard input shared by the
// setup prompts and the background exit listener.
package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ExitCommand is recognised wherever a line is read.
const ExitCommand = "exit"

// Lines reads one line at a time from a single buffered reader. Only one
// goroutine may read at a time; ownership is handed from the prompts to the
// listener once setup is complete. Lines of any length are accepted.
type Lines struct {
	reader *bufio.Reader
}

func NewLines(r io.Reader) *Lines {
	return &Lines{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line without its terminator. A final line with
// no newline is still returned; io.EOF is reported once nothing is left.
func (l *Lines) ReadLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func Normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

func IsExit(line string) bool {
	return Normalize(line) == ExitCommand
}
