package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version {
		t.Errorf("Version = %s, want %s", info.Version, Version)
	}
	if info.Commit != Commit {
		t.Errorf("Commit = %s, want %s", info.Commit, Commit)
	}
	if info.BuildTime != BuildTime {
		t.Errorf("BuildTime = %s, want %s", info.BuildTime, BuildTime)
	}
}

func TestString(t *testing.T) {
	s := String()
	for _, part := range []string{Version, Commit, BuildTime} {
		if !strings.Contains(s, part) {
			t.Errorf("String() = %q, missing %q", s, part)
		}
	}
}
