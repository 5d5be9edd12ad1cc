package main

import (
	"testing"

	"github.com/windrift/windrift/internal/app"
	"github.com/windrift/windrift/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			SettingsPath: "settings.yaml",
			Console:      true,
			Verbose:      true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"settings": "settings.yaml",
			"console":  "true",
			"verbose":  "true",
		},
		Args: []string{"-settings", "settings.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["settings"] != "settings.yaml" {
		t.Fatalf("expected settings flag, got %v", flagsValue["settings"])
	}
	if flagsValue["console"] != "true" {
		t.Fatalf("expected console flag, got %v", flagsValue["console"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected logFile, got %v", flagsValue["logFile"])
	}

	if payload["argv"] == nil {
		t.Fatalf("expected argv in payload")
	}
}

func TestStopReason(t *testing.T) {
	if got := stopReason(nil); got != "clean" {
		t.Fatalf("expected clean, got %q", got)
	}
}
