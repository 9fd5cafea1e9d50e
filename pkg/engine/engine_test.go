package engine

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/gplot/pkg/errors"
)

const helperEnv = "GPLOT_ENGINE_HELPER"

// TestMain turns the test binary into a fake gnuplot when helperEnv is set.
func TestMain(m *testing.M) {
	switch os.Getenv(helperEnv) {
	case "":
		os.Exit(m.Run())
	case "echo":
		fmt.Print(strings.Join(os.Args[1:], "|"))
		os.Exit(0)
	case "fail":
		fmt.Fprint(os.Stderr, "\nplot ;\n     ^\nline 0: invalid expression\n")
		os.Exit(1)
	case "sleep":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	case "spawn":
		// Leave a child behind that keeps stderr open after this process dies.
		child := exec.Command(os.Args[0])
		child.Env = append(os.Environ(), helperEnv+"=sleep")
		child.Stderr = os.Stderr
		if err := child.Start(); err != nil {
			os.Exit(2)
		}
		time.Sleep(10 * time.Second)
		os.Exit(0)
	}
}

func helper(mode string) *Gnuplot {
	return NewGnuplot(WithExecutable(os.Args[0]), WithEnv(helperEnv+"="+mode))
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		inv  Invocation
		want []string
	}{
		{"file export", Invocation{Program: "plot x;"}, []string{"-e", "plot x;"}},
		{"interactive", Invocation{Program: "plot x;", Persist: true}, []string{"-p", "-e", "plot x;"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Args(tt.inv)
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewGnuplotDefaults(t *testing.T) {
	if got := NewGnuplot().Executable(); got != DefaultExecutable {
		t.Errorf("Executable() = %q, want %q", got, DefaultExecutable)
	}
	if got := NewGnuplot(WithExecutable("")).Executable(); got != DefaultExecutable {
		t.Errorf("empty WithExecutable should keep default, got %q", got)
	}
}

func TestRunSuccess(t *testing.T) {
	res, err := helper("echo").Run(context.Background(), Invocation{Program: "plot sin(x);", Persist: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Stdout != "-p|-e|plot sin(x);" {
		t.Errorf("Stdout = %q", res.Stdout)
	}
}

func TestRunFailureSurfacesStderr(t *testing.T) {
	res, err := helper("fail").Run(context.Background(), Invocation{Program: "plot ;"})
	if !errors.Is(err, errors.ErrCodeProcess) {
		t.Fatalf("Run() error = %v, want PROCESS_ERROR", err)
	}
	want := "\nplot ;\n     ^\nline 0: invalid expression\n"
	if errors.UserMessage(err) != want {
		t.Errorf("UserMessage() = %q, want %q", errors.UserMessage(err), want)
	}
	if res.Stderr != want {
		t.Errorf("Stderr = %q", res.Stderr)
	}
}

func TestRunTimeout(t *testing.T) {
	start := time.Now()
	_, err := helper("sleep").Run(context.Background(), Invocation{Program: "pause 10;", Timeout: 200 * time.Millisecond})
	if !errors.Is(err, errors.ErrCodeTimeout) {
		t.Fatalf("Run() error = %v, want TIMEOUT", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("timeout did not stop the process")
	}
}

func TestRunTimeoutWithChildHoldingPipes(t *testing.T) {
	start := time.Now()
	_, err := helper("spawn").Run(context.Background(), Invocation{Program: "pause 10;", Timeout: 200 * time.Millisecond})
	if !errors.Is(err, errors.ErrCodeTimeout) {
		t.Fatalf("Run() error = %v, want TIMEOUT", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Run() returned after %s, want it bounded by the wait delay", elapsed)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()
	_, err := helper("sleep").Run(ctx, Invocation{Program: "pause mouse close;", Persist: true})
	if err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRunMissingExecutable(t *testing.T) {
	g := NewGnuplot(WithExecutable("gplot-definitely-not-installed"))
	_, err := g.Run(context.Background(), Invocation{Program: "plot x;"})
	if !errors.Is(err, errors.ErrCodeEngineNotFound) {
		t.Errorf("Run() error = %v, want ENGINE_NOT_FOUND", err)
	}
	if !errors.IsKind(err, errors.KindProcess) {
		t.Error("missing engine should be a process error")
	}
}
