package platform

import "testing"

func TestViewerFor(t *testing.T) {
	tests := []struct {
		goos string
		want Viewer
	}{
		{"linux", X11},
		{"darwin", Qt},
		{"windows", Wxt},
		{"freebsd", Wxt},
	}
	for _, tt := range tests {
		if got := ViewerFor(tt.goos); got != tt.want {
			t.Errorf("ViewerFor(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	noEnv := func(string) string { return "" }
	if got := Resolve("darwin", noEnv); got != Qt {
		t.Errorf("Resolve(darwin) = %q, want %q", got, Qt)
	}

	env := func(k string) string {
		if k == EnvTerminal {
			return " wxt "
		}
		return ""
	}
	if got := Resolve("linux", env); got != Wxt {
		t.Errorf("Resolve with GNUTERM = %q, want %q", got, Wxt)
	}
}
