package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestResolve_FillsDefaultsFromBuildInfo(t *testing.T) {
	read := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v1.2.0"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			},
		}, true
	}

	v, c, d := resolve(read)
	if v != "v1.2.0" || c != "abc123" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("got %q %q %q", v, c, d)
	}
}

func TestResolve_LdflagsWin(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	t.Cleanup(func() { Version = old })

	read := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "v1.2.0"}}, true
	}
	if v, _, _ := resolve(read); v != "v9.9.9" {
		t.Fatalf("expected ldflags version, got %q", v)
	}
}

func TestResolve_NoBuildInfo(t *testing.T) {
	v, c, d := resolve(func() (*debug.BuildInfo, bool) { return nil, false })
	if v != Version || c != Commit || d != Date {
		t.Fatalf("expected package defaults, got %q %q %q", v, c, d)
	}
}

func TestString_Prefix(t *testing.T) {
	if !strings.HasPrefix(String(), "toolbelt ") {
		t.Fatalf("unexpected version string %q", String())
	}
}
