package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// seedLog writes size bytes of prefix-led content into the active log path
func seedLog(t *testing.T, prefix string, size int) {
	t.Helper()
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", logDir, err)
	}
	data := make([]byte, max(size, len(prefix)))
	copy(data, prefix)
	if err := os.WriteFile(filepath.Join(logDir, logFileName), data, 0o644); err != nil {
		t.Fatalf("seed log: %v", err)
	}
}

func TestSetupLoggingOff(t *testing.T) {
	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected no file without debug")
	}
	if w := log.Writer(); w != io.Discard {
		t.Errorf("Expected io.Discard, got %v", w)
	}
	if _, err := os.Stat(logDir); err == nil {
		t.Error("Expected no log directory without debug")
	}
}

func TestSetupLoggingFiles(t *testing.T) {
	tests := []struct {
		name      string
		seedSize  int // 0 means no existing log
		wantFiles int
		keepsOld  bool
	}{
		{"fresh", 0, 1, false},
		{"small log appends", 64, 1, true},
		{"oversized log rotates", maxLogSize + 1, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() { os.RemoveAll(logDir) })
			if tt.seedSize > 0 {
				seedLog(t, "earlier session", tt.seedSize)
			}

			f := setupLogging(true)
			if f == nil {
				t.Fatal("Expected a log file with debug on")
			}
			if w := log.Writer(); w == os.Stdout || w == os.Stderr {
				t.Error("Log must not write to the terminal streams")
			}
			log.Println("copter airborne")
			f.Close()

			entries, err := os.ReadDir(logDir)
			if err != nil {
				t.Fatalf("read %s: %v", logDir, err)
			}
			if len(entries) != tt.wantFiles {
				t.Errorf("Expected %d files, got %d", tt.wantFiles, len(entries))
			}

			data, err := os.ReadFile(filepath.Join(logDir, logFileName))
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			if !strings.Contains(string(data), "copter airborne") {
				t.Error("Expected the new line in the active log")
			}
			if got := strings.HasPrefix(string(data), "earlier session"); got != tt.keepsOld {
				t.Errorf("Expected earlier content kept=%v, got %v", tt.keepsOld, got)
			}
			if len(data) > maxLogSize {
				t.Errorf("Expected active log under %d bytes, got %d", maxLogSize, len(data))
			}
		})
	}
}
