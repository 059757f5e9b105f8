// Package greeter writes the fixed greeting line.
package greeter

import (
	"io"
	"os"
)

// Greeting is the text printed on every run.
const Greeting = "Hello, Steve!"

// Line returns the greeting with its line terminator.
func Line() string {
	return Greeting + "\n"
}

// Greeter emits the greeting to a single writer.
type Greeter struct {
	w io.Writer
}

// New returns a Greeter writing to w. A nil w means os.Stdout.
func New(w io.Writer) *Greeter {
	if w == nil {
		w = os.Stdout
	}
	return &Greeter{w: w}
}

// Run writes the greeting line once. Write errors are returned as-is.
func (g *Greeter) Run() error {
	line := Line()
	n, err := io.WriteString(g.w, line)
	if err != nil {
		return err
	}
	if n != len(line) {
		return io.ErrShortWrite
	}
	return nil
}

// Run greets on os.Stdout.
func Run() error {
	return New(nil).Run()
}
