//go:build linux

package terminal

import (
	"golang.org/x/sys/unix"
)

// State is a saved terminal configuration.
type State struct {
	termios unix.Termios
}

// MakeRaw puts the terminal on fd in raw mode and returns the previous state.
func MakeRaw(fd int) (*State, error) {
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}
	saved := &State{termios: *termios}

	termios.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	termios.Oflag &^= unix.OPOST
	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	termios.Cflag &^= unix.CSIZE | unix.PARENB
	termios.Cflag |= unix.CS8
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, termios); err != nil {
		return nil, err
	}
	return saved, nil
}

// Restore puts back a state returned by MakeRaw.
func Restore(fd int, state *State) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(fd, unix.TCSETS, &state.termios)
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	return err == nil
}
