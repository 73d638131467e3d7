package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Config{Level: "info", Format: "json", Output: buf})

	log.Info("hello", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("key = %v, want value", entry["key"])
	}
}

func TestNewTextFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Config{Level: "info", Format: "text", Output: buf})

	log.Info("hello")

	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("text output missing message: %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Config{Level: "warn", Format: "text", Output: buf})

	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("low-level entries were not filtered: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Config{Level: "error", Format: "text", Output: buf})

	log.Info("before")
	SetLevel("debug")
	log.Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("entry below level was logged: %q", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("entry after SetLevel(debug) missing: %q", out)
	}

	if GetLevel() != "debug" {
		t.Errorf("GetLevel() = %s, want debug", GetLevel())
	}
}

func TestWith(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Config{Level: "info", Format: "text", Output: buf})

	log.With("component", "repl").Info("scoped")

	if !strings.Contains(buf.String(), "component=repl") {
		t.Errorf("With field missing: %q", buf.String())
	}
}

func TestNoop(t *testing.T) {
	log := Noop()
	// Must not panic; output goes nowhere.
	log.Error("ignored", "k", "v")
}
