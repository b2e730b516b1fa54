package uilog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesTaggedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uicore.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()

	Info("uidriver", "resolved %d widgets", 3)
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "[INFO][uidriver]") || !strings.Contains(line, "resolved 3 widgets") {
		t.Errorf("unexpected log line: %q", line)
	}
}

func TestLoggingBeforeInitIsANoop(t *testing.T) {
	Close()
	Info("uidriver", "should not panic")
}

func TestGetWriterDiscardsWithNoLogFile(t *testing.T) {
	Close()
	if GetWriter() == nil {
		t.Fatal("expected a non-nil discard writer")
	}
}
