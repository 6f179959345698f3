package bar

import (
	"bufio"
	"testing"
	"time"
)

func TestProcessEcho(t *testing.T) {
	p, err := StartProcess(ProcessOptions{Screen: "test", Path: "cat"})
	if err != nil {
		t.Fatalf("StartProcess() error = %v", err)
	}
	defer p.Stop()

	select {
	case <-p.Done():
		t.Fatal("Done() closed right after start")
	default:
	}

	if _, err := p.Write([]byte("echo hi\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	line, err := bufio.NewReader(p.Stdout()).ReadString('\n')
	if err != nil {
		t.Fatalf("read stdout: %v", err)
	}
	if line != "echo hi\n" {
		t.Errorf("stdout = %q, want %q", line, "echo hi\n")
	}
}

func TestProcessStop(t *testing.T) {
	p, err := StartProcess(ProcessOptions{Screen: "test", Path: "sleep", Args: []string{"30"}})
	if err != nil {
		t.Fatalf("StartProcess() error = %v", err)
	}

	p.Stop()

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("process still running after Stop()")
	}
	if p.ExitErr() == nil {
		t.Error("ExitErr() = nil, want signal exit")
	}

	// Writes after exit fail but do not panic.
	if _, err := p.Write([]byte("late\n")); err == nil {
		t.Error("Write() after exit error = nil, want error")
	}
}

func TestProcessExitsOnItsOwn(t *testing.T) {
	before := time.Now()
	p, err := StartProcess(ProcessOptions{Screen: "test", Path: "sh", Args: []string{"-c", "exit 2"}})
	if err != nil {
		t.Fatalf("StartProcess() error = %v", err)
	}
	defer p.Stop()

	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("process did not exit")
	}
	if p.ExitErr() == nil {
		t.Error("ExitErr() = nil, want exit status 2")
	}
	if p.StartedAt().Before(before.Add(-time.Second)) || p.StartedAt().After(time.Now()) {
		t.Errorf("StartedAt() = %v, want around %v", p.StartedAt(), before)
	}
}

func TestStartProcessMissingBinary(t *testing.T) {
	if _, err := StartProcess(ProcessOptions{Screen: "test", Path: "/nonexistent/lemonbar"}); err == nil {
		t.Error("StartProcess() error = nil, want error")
	}
}
