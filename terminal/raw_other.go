//go:build !linux

package terminal

import "errors"

var errUnsupported = errors.New("terminal: raw mode is only supported on linux")

type State struct{}

func MakeRaw(fd int) (*State, error) { return nil, errUnsupported }

func Restore(fd int, state *State) error { return nil }

func IsTerminal(fd int) bool { return false }
