package logger

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		valid bool
	}{
		{"debug", "DEBUG", true},
		{"INFO", "INFO", true},
		{"warning", "WARN", true},
		{"err", "ERROR", true},
		{"", "INFO", true},
		{"loud", "INFO", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			lvl, ok := ParseLevel(tc.in)
			assert.Equal(t, tc.want, lvl.String())
			assert.Equal(t, tc.valid, ok)
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "warn"}, &out)
	defer Init(NewConfig(), io.Discard)

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	assert.NotContains(t, out.String(), "hidden 1")
	assert.Contains(t, out.String(), "shown 2")
	assert.Contains(t, out.String(), "logger_test.go", "source file should be recorded")
}

func TestTagFiltering(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		tag      string
		expected bool
	}{
		{"no filters", Config{LogLevel: "debug"}, "history", true},
		{"disabled tag", Config{LogLevel: "debug", DisabledTags: []string{"History"}}, "history", false},
		{"enabled tag", Config{LogLevel: "debug", EnabledTags: []string{"history"}}, "history", true},
		{"other tag not enabled", Config{LogLevel: "debug", EnabledTags: []string{"config"}}, "history", false},
		{"untagged with allow-list", Config{LogLevel: "debug", EnabledTags: []string{"config"}}, "", false},
		{"disabled package", Config{LogLevel: "debug", DisabledPackages: []string{"logger"}}, "history", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			Init(tc.cfg, &out)
			defer Init(NewConfig(), io.Discard)

			if tc.tag == "" {
				Debugf("message")
			} else {
				DebugTagf(tc.tag, "message")
			}
			assert.Equal(t, tc.expected, bytes.Contains(out.Bytes(), []byte("message")))
		})
	}
}

func TestOpenOutputStderr(t *testing.T) {
	w, closeFn, err := OpenOutput("-")
	assert.NoError(t, err)
	assert.NotNil(t, w)
	assert.NoError(t, closeFn())
}
