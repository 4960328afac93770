// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skillsite/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBuild_JSONInProduction(t *testing.T) {
	var buf bytes.Buffer
	l, closer := build(&buf, config.LogConfig{Level: "info"}, false)
	defer closer.Close()

	l.Info("hello", "kind", "tips")
	l.Debug("hidden")

	var rec map[string]any
	line := strings.SplitN(buf.String(), "\n", 2)[0]
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("output is not JSON: %q", buf.String())
	}
	if rec["msg"] != "hello" || rec["kind"] != "tips" {
		t.Errorf("record: %v", rec)
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug record written at info level")
	}
}

func TestBuild_TextInDevelopment(t *testing.T) {
	var buf bytes.Buffer
	l, closer := build(&buf, config.LogConfig{Level: "debug"}, true)
	defer closer.Close()

	l.Debug("visible")
	if !strings.Contains(buf.String(), "msg=visible") {
		t.Errorf("text output: %q", buf.String())
	}
}

func TestBuild_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.log")

	var buf bytes.Buffer
	l, closer := build(&buf, config.LogConfig{Level: "info", File: path, MaxSizeMB: 1}, false)
	l.Info("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file content: %q", data)
	}
	if !strings.Contains(buf.String(), "to file") {
		t.Errorf("stdout content: %q", buf.String())
	}
}
