package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeSrc writes src to a temp .z80 file and returns its path.
func writeSrc(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.z80")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCLI runs the CLI against args, capturing stdout/stderr through temp
// files (run() writes to *os.File, not io.Writer, matching the teacher's
// main.go taking concrete *os.File for its writers).
func runCLI(t *testing.T, args []string) (code int, stdout, stderr string) {
	t.Helper()
	outFile, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	errFile, err := os.CreateTemp(t.TempDir(), "err")
	if err != nil {
		t.Fatal(err)
	}
	defer outFile.Close()
	defer errFile.Close()

	code = run(args, outFile, errFile)

	_, _ = outFile.Seek(0, 0)
	_, _ = errFile.Seek(0, 0)
	outBytes, _ := os.ReadFile(outFile.Name())
	errBytes, _ := os.ReadFile(errFile.Name())
	return code, string(outBytes), string(errBytes)
}

func TestCLIAssemblesAndPrintsListing(t *testing.T) {
	path := writeSrc(t, ".org 0x0000\nld a, b\nhalt\n")
	code, stdout, stderr := runCLI(t, []string{path})
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if !strings.Contains(stdout, "78") {
		t.Errorf("listing missing LD A,B's byte 0x78: %s", stdout)
	}
	if !strings.Contains(stdout, "76") {
		t.Errorf("listing missing HALT's byte 0x76: %s", stdout)
	}
}

func TestCLIWritesBinaryWithO(t *testing.T) {
	path := writeSrc(t, ".org 0x0000\nld bc, 0xdead\n")
	outDir := t.TempDir()
	binPath := filepath.Join(outDir, "out.bin")
	code, _, stderr := runCLI(t, []string{"-o", binPath, path})
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	img, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x01, 0xAD, 0xDE}
	if len(img) != len(want) || img[0] != want[0] || img[1] != want[1] || img[2] != want[2] {
		t.Errorf("image = % X, want % X", img, want)
	}
}

func TestCLIReportsErrorsToStderrAndNonZeroExit(t *testing.T) {
	path := writeSrc(t, "ld a, nosuchconst\n")
	code, _, stderr := runCLI(t, []string{path})
	if code == 0 {
		t.Fatal("expected a non-zero exit code for an undefined reference")
	}
	if stderr == "" {
		t.Fatal("expected diagnostics on stderr")
	}
}

func TestCLINoInputsIsUsageError(t *testing.T) {
	code, _, stderr := runCLI(t, nil)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr, "no input files") {
		t.Errorf("stderr = %q, want a no-input-files message", stderr)
	}
}

func TestCLIVersionFlag(t *testing.T) {
	code, stdout, _ := runCLI(t, []string{"-version"})
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "z80asm") {
		t.Errorf("stdout = %q, want it to mention z80asm", stdout)
	}
}

func TestCLIRunFlagExecutesAndDumpsRegisters(t *testing.T) {
	path := writeSrc(t, ".org 0x0000\nld a, 0x42\nhalt\n")
	code, stdout, stderr := runCLI(t, []string{"-run", path})
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if !strings.Contains(stdout, "0x0042") {
		t.Errorf("stdout missing dumped A register: %s", stdout)
	}
}
