// Package commands contains the CLI commands for the application
package commands

import (
	"fmt"
	"io"
	"os"
)

type Flags struct {
	LogLevel string
}

type Controller struct {
	Flags *Flags

	// Stdin and Stdout back the hook command; nil means the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

func (c *Controller) stdin() io.Reader {
	if c.Stdin != nil {
		return c.Stdin
	}
	return os.Stdin
}

func (c *Controller) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

// Output abstracts user-facing prints for testability
type Output interface {
	Printf(format string, a ...any)
	Println(a ...any)
}

type defaultOutput struct{}

func (o *defaultOutput) Printf(format string, a ...any) { fmt.Printf(format, a...) }
func (o *defaultOutput) Println(a ...any)               { fmt.Println(a...) }
