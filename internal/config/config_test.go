package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != "stdio" {
		t.Errorf("Expected default mode to be 'stdio', got '%s'", cfg.Mode)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host to be '127.0.0.1', got '%s'", cfg.Host)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected default port to be 8080, got %d", cfg.Port)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.ServerName != "fnol-intake" {
		t.Errorf("Expected default server name to be 'fnol-intake', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}

	currentDir, _ := os.Getwd()
	if cfg.IntakeDirectory != currentDir {
		t.Errorf("Expected default intake directory to be '%s', got '%s'", currentDir, cfg.IntakeDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config - stdio mode",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "valid config - server mode",
			config: &Config{
				Mode:            "server",
				Host:            "127.0.0.1",
				Port:            8080,
				IntakeDirectory: "/tmp/test",
				LogLevel:        "info",
				MaxFileSize:     1024,
			},
			wantErr: false,
		},
		{
			name: "invalid mode",
			config: &Config{
				Mode:            "invalid",
				Host:            "127.0.0.1",
				Port:            8080,
				IntakeDirectory: "/tmp/test",
				LogLevel:        "info",
				MaxFileSize:     1024,
			},
			wantErr: true,
		},
		{
			name: "invalid port - too low (server mode)",
			config: &Config{
				Mode:            "server",
				Host:            "127.0.0.1",
				Port:            0,
				IntakeDirectory: "/tmp/test",
				LogLevel:        "info",
				MaxFileSize:     1024,
			},
			wantErr: true,
		},
		{
			name: "invalid port - too high (server mode)",
			config: &Config{
				Mode:            "server",
				Host:            "127.0.0.1",
				Port:            70000,
				IntakeDirectory: "/tmp/test",
				LogLevel:        "info",
				MaxFileSize:     1024,
			},
			wantErr: true,
		},
		{
			name: "invalid port ignored in stdio mode",
			config: &Config{
				Mode:            "stdio",
				Host:            "127.0.0.1",
				Port:            0,
				IntakeDirectory: "/tmp/test",
				LogLevel:        "info",
				MaxFileSize:     1024,
			},
			wantErr: false,
		},
		{
			name: "empty intake directory",
			config: &Config{
				Mode:            "stdio",
				Host:            "127.0.0.1",
				Port:            8080,
				IntakeDirectory: "",
				LogLevel:        "info",
				MaxFileSize:     1024,
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: &Config{
				Mode:            "stdio",
				Host:            "127.0.0.1",
				Port:            8080,
				IntakeDirectory: "/tmp/test",
				LogLevel:        "invalid",
				MaxFileSize:     1024,
			},
			wantErr: true,
		},
		{
			name: "invalid max file size",
			config: &Config{
				Mode:            "stdio",
				Host:            "127.0.0.1",
				Port:            8080,
				IntakeDirectory: "/tmp/test",
				LogLevel:        "info",
				MaxFileSize:     0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.config.IntakeDirectory == "/tmp/test" {
				tempDir, err := os.MkdirTemp("", "fnol-config-test-*")
				if err != nil {
					t.Fatalf("Failed to create temp dir: %v", err)
				}
				defer os.RemoveAll(tempDir)
				tt.config.IntakeDirectory = tempDir
			}

			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateCreatesIntakeDirectory(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "fnol-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	cfg := DefaultConfig()
	cfg.IntakeDirectory = filepath.Join(tempDir, "incoming", "fnol")

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Config.Validate() unexpected error: %v", err)
	}

	info, err := os.Stat(cfg.IntakeDirectory)
	if err != nil {
		t.Fatalf("intake directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("intake directory path is not a directory")
	}
}

func TestConfigAddress(t *testing.T) {
	cfg := &Config{
		Host: "192.168.1.1",
		Port: 9090,
	}

	expected := "192.168.1.1:9090"
	if got := cfg.Address(); got != expected {
		t.Errorf("Config.Address() = %v, want %v", got, expected)
	}
}

func TestConfigIsDebug(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     bool
	}{
		{name: "debug level", logLevel: "debug", want: true},
		{name: "info level", logLevel: "info", want: false},
		{name: "warn level", logLevel: "warn", want: false},
		{name: "error level", logLevel: "error", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			if got := cfg.IsDebug(); got != tt.want {
				t.Errorf("Config.IsDebug() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigModeHelpers(t *testing.T) {
	stdioCfg := &Config{Mode: ModeStdio}
	if !stdioCfg.IsStdioMode() || stdioCfg.IsServerMode() {
		t.Error("stdio mode helpers inconsistent")
	}

	serverCfg := &Config{Mode: ModeServer}
	if !serverCfg.IsServerMode() || serverCfg.IsStdioMode() {
		t.Error("server mode helpers inconsistent")
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		Mode:            "server",
		Host:            "localhost",
		Port:            8080,
		IntakeDirectory: "/var/intake/fnol",
		LogLevel:        "debug",
		MaxFileSize:     1024,
	}

	result := cfg.String()

	expectedSubstrings := []string{
		"Mode: server",
		"Host: localhost",
		"Port: 8080",
		"IntakeDirectory: /var/intake/fnol",
		"LogLevel: debug",
		"MaxFileSize: 1024",
	}

	for _, substr := range expectedSubstrings {
		if !strings.Contains(result, substr) {
			t.Errorf("Config.String() result doesn't contain expected substring: %s\nGot: %s", substr, result)
		}
	}
}
