package config

import (
	"fmt"
	"io"
	"os"
)

// Exitf writes a formatted message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	ExitfTo(os.Stderr, os.Exit, format, args...)
}

// ExitfTo writes a formatted message line to w and calls exit with code 1.
func ExitfTo(w io.Writer, exit func(int), format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
	exit(1)
}
