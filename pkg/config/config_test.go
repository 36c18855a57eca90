package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/graph"
	"github.com/matzehuels/orgchart/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[layout]
grouped = true
node_width = 220
orphans = "promote"

[render]
formats = ["svg", "dot"]
title = "Acme Corp"
clusters = true

[cache]
backend = "none"

[access]
role = "hr_manager"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}

	got := cfg.PipelineOptions()
	want := pipeline.Options{
		VizType:   graph.VizTypeDepartments,
		NodeWidth: 220,
		Orphans:   "promote",
		Formats:   []string{"svg", "dot"},
		Title:     "Acme Corp",
		Legend:    true,
		Popups:    true,
		Clusters:  true,
		Role:      "hr_manager",
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(pipeline.Options{})); diff != "" {
		t.Errorf("PipelineOptions mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"unknown key", "[layout]\nnode_wdth = 10\n", errors.ErrCodeInvalidConfig},
		{"bad syntax", "[layout\n", errors.ErrCodeInvalidConfig},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n", errors.ErrCodeInvalidConfig},
		{"redis without url", "[cache]\nbackend = \"redis\"\n", errors.ErrCodeInvalidConfig},
		{"bad orphans", "[layout]\norphans = \"adopt\"\n", errors.ErrCodeInvalidPolicy},
		{"bad format", "[render]\nformats = [\"gif\"]\n", errors.ErrCodeInvalidFormat},
		{"bad role", "[access]\nrole = \"ceo\"\n", errors.ErrCodeInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("explicit missing file error = %v, want FILE_NOT_FOUND", err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("default location missing should not fail: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(env(map[string]string{
		EnvRedisURL: "redis://cache:6379/1",
		EnvRole:     "admin",
		EnvCacheDir: "/tmp/orgchart",
	}))
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.RedisURL != "redis://cache:6379/1" {
		t.Errorf("Cache = %+v, want redis backend", cfg.Cache)
	}
	if cfg.Access.Role != "admin" || cfg.Cache.Dir != "/tmp/orgchart" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	// An explicit backend wins over the URL.
	cfg = Default()
	cfg.ApplyEnv(env(map[string]string{EnvRedisURL: "redis://x", EnvCacheBackend: "NONE"}))
	if cfg.Cache.Backend != BackendNone {
		t.Errorf("Backend = %q, want none", cfg.Cache.Backend)
	}
}
