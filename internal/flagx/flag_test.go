package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-a", ":5001", "-d", "postgres://db"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", ":5001"},
		},
		{
			name:         "joined value",
			args:         []string{"--config=folio.json", "-a", ":5001"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=folio.json"},
		},
		{
			name:         "order preserved across spellings",
			args:         []string{"--config=first.json", "-c", "second.json", "-x", "1"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=first.json", "-c", "second.json"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-s"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-e", "production"},
			allowedFlags: []string{"-c", "-e"},
			want:         []string{"-c", "-e", "production"},
		},
		{
			name:         "joined value that looks like a flag",
			args:         []string{"--config=--odd.json"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=--odd.json"},
		},
		{
			name:         "repeated flag kept twice",
			args:         []string{"-b", "one", "-b", "two"},
			allowedFlags: []string{"-b"},
			want:         []string{"-b", "one", "-b", "two"},
		},
		{
			name:         "empty args",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/folio/short.json"}, "/etc/folio/short.json"},
		{"long", []string{"-config", "/etc/folio/long.json"}, "/etc/folio/long.json"},
		{"double dash joined", []string{"--config=/etc/folio/joined.json"}, "/etc/folio/joined.json"},
		{"mixed with server flags", []string{"-a", ":5001", "-c", "cfg.json", "-d", "dsn"}, "cfg.json"},
		{"last wins", []string{"-c", "1.json", "-config", "2.json"}, "2.json"},
		{"absent", []string{"-a", ":5001"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}
