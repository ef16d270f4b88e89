package model

import (
	"bufio"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws live cells as filled blocks
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out, or stdout when out is nil
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{out: out}
}

// Display renders the live cells of a width x height board
func (r *TerminalRenderer) Display(width, height int, live []Point) error {
	alive := make(map[Point]struct{}, len(live))
	for _, p := range live {
		alive[p] = struct{}{}
	}

	w := bufio.NewWriter(r.out)
	for y := range height {
		for x := range width {
			if _, ok := alive[Point{X: x, Y: y}]; ok {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[TerminalRenderer.Display] failed to flush")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	return errors.Wrap(cmd.Run(), "[TerminalRenderer.Clear] failed to clear terminal")
}
