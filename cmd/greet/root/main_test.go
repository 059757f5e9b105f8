package root

import (
	"bytes"
	"io"
	"os"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	oldStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	fn()
	_ = w.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(got)
}

func TestMain_GreetsAndExitsZero(t *testing.T) {
	var stderr bytes.Buffer
	code := -1
	stdout := captureStdout(t, func() { code = Main([]string{}, &stderr) })
	if code != 0 {
		t.Fatalf("unexpected exit code: %d", code)
	}
	if stdout != "Hello, Steve!\n" {
		t.Fatalf("unexpected stdout: %q", stdout)
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestMain_UsageErrorSingleLine(t *testing.T) {
	var stderr bytes.Buffer
	code := -1
	stdout := captureStdout(t, func() { code = Main([]string{"extra"}, &stderr) })
	if code != exitCodeUsage {
		t.Fatalf("unexpected exit code: %d", code)
	}
	if stdout != "" {
		t.Fatalf("unexpected stdout: %q", stdout)
	}
	if stderr.String() != "unexpected argument \"extra\"\n" {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}
