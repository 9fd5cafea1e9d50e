// Package platform resolves host-dependent defaults once at start-up so the
// figure and render packages stay platform-agnostic.
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Viewer is a gnuplot interactive terminal type.
type Viewer string

const (
	X11 Viewer = "x11"
	Qt  Viewer = "qt"
	Wxt Viewer = "wxt"
)

// EnvTerminal is gnuplot's own variable for the default terminal. When set
// it takes precedence over the per-OS default.
const EnvTerminal = "GNUTERM"

// ViewerFor returns the default viewer for a GOOS value.
func ViewerFor(goos string) Viewer {
	switch goos {
	case "linux":
		return X11
	case "darwin":
		return Qt
	default:
		return Wxt
	}
}

// DefaultViewer resolves the viewer for the running host.
func DefaultViewer() Viewer {
	return Resolve(runtime.GOOS, os.Getenv)
}

// Resolve picks the viewer from the environment, falling back to the OS
// default.
func Resolve(goos string, getenv func(string) string) Viewer {
	if v := strings.TrimSpace(getenv(EnvTerminal)); v != "" {
		return Viewer(v)
	}
	return ViewerFor(goos)
}
