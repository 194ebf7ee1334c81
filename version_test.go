package main

import "testing"

func TestNormalizeVersion(t *testing.T) {
	tests := map[string]string{
		"dev":        "dev",
		"1.2.3":      "v1.2.3",
		"v1.2.3":     "v1.2.3",
		"v1.2":       "v1.2.0",
		"2.0.0-rc.1": "v2.0.0-rc.1",
		"abc1234":    "abc1234",
	}
	for in, want := range tests {
		if got := normalizeVersion(in); got != want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version == "" || info.GoVersion == "" || info.Platform == "" || info.Arch == "" {
		t.Fatalf("incomplete version info: %+v", info)
	}
}
