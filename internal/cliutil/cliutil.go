package cliutil

import "os"

// IsTty reports whether f is attached to a terminal. Used to decide
// if stdin should be treated as piped input.
func IsTty(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
