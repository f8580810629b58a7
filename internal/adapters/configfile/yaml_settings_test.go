package configfile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/aliasview/internal/core/ports"
)

func TestNewYAMLSettingsProvider(t *testing.T) {
	provider, err := NewYAMLSettingsProvider("/tmp/config.yaml")
	if err != nil {
		t.Fatalf("NewYAMLSettingsProvider() unexpected error = %v", err)
	}
	if _, ok := provider.(*YAMLSettingsProvider); !ok {
		t.Errorf("NewYAMLSettingsProvider() did not return a *YAMLSettingsProvider, got %T", provider)
	}

	if _, err := NewYAMLSettingsProvider(""); err == nil {
		t.Error("NewYAMLSettingsProvider(\"\") expected an error")
	}
}

func TestYAMLSettingsProvider_GetSettings(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name                string
		content             *string // nil means the file does not exist
		wantSettings        ports.Settings
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:         "file does not exist",
			content:      nil,
			wantSettings: ports.Settings{},
		},
		{
			name:         "empty file",
			content:      stringp(""),
			wantSettings: ports.Settings{},
		},
		{
			name:         "comments only",
			content:      stringp("# nothing here\n"),
			wantSettings: ports.Settings{},
		},
		{
			name:         "both fields",
			content:      stringp("source: ~/.bashrc\neditor: code --wait\n"),
			wantSettings: ports.Settings{Source: "~/.bashrc", Editor: "code --wait"},
		},
		{
			name:         "editor only",
			content:      stringp("editor: nvim\n"),
			wantSettings: ports.Settings{Editor: "nvim"},
		},
		{
			name:                "unknown field is rejected",
			content:             stringp("source: ~/.zshrc\ntheme: dark\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal settings",
		},
		{
			name:                "invalid structure",
			content:             stringp("- source\n- editor\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal settings",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, "case", strings.Repeat("x", i+1), "config.yaml")
			if tt.content != nil {
				if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
					t.Fatalf("failed to create dir: %v", err)
				}
				if err := os.WriteFile(path, []byte(*tt.content), 0600); err != nil {
					t.Fatalf("failed to write settings: %v", err)
				}
			}

			provider, err := NewYAMLSettingsProvider(path)
			if err != nil {
				t.Fatalf("NewYAMLSettingsProvider() error = %v", err)
			}
			got, err := provider.GetSettings()

			if (err != nil) != tt.wantErr {
				t.Fatalf("GetSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("GetSettings() error = %q, want snippet %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.wantSettings) {
				t.Errorf("GetSettings() = %+v, want %+v", got, tt.wantSettings)
			}
		})
	}
}

func TestDefaultSettingsPath(t *testing.T) {
	t.Run("XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		got, err := DefaultSettingsPath()
		if err != nil {
			t.Fatalf("DefaultSettingsPath() error = %v", err)
		}
		if want := filepath.Join("/xdg", "aliasview", "config.yaml"); got != want {
			t.Errorf("DefaultSettingsPath() = %q, want %q", got, want)
		}
	})

	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		got, err := DefaultSettingsPath()
		if err != nil {
			t.Fatalf("DefaultSettingsPath() error = %v", err)
		}
		if want := filepath.Join(home, ".config", "aliasview", "config.yaml"); got != want {
			t.Errorf("DefaultSettingsPath() = %q, want %q", got, want)
		}
	})
}

// stringp returns a pointer to a string.
func stringp(s string) *string {
	return &s
}
