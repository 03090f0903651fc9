package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
					ModelDir:   "models",
				},
			},
			wantErr: false,
		},
		{
			name: "missing whisper binary",
			config: Config{
				Whisper: WhisperConfig{
					ModelDir: "models",
				},
			},
			wantErr: true,
		},
		{
			name: "missing model dir",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			BinaryPath: "./whisper-cli",
			ModelDir:   "models",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.ModelSize != "small" {
		t.Errorf("ModelSize = %v, want %v", cfg.Whisper.ModelSize, "small")
	}
	if cfg.Downloader.BinaryPath != "yt-dlp" {
		t.Errorf("Downloader.BinaryPath = %v, want %v", cfg.Downloader.BinaryPath, "yt-dlp")
	}
	if cfg.Downloader.AudioQuality != "192K" {
		t.Errorf("AudioQuality = %v, want %v", cfg.Downloader.AudioQuality, "192K")
	}
	if cfg.Gemini.Model != "gemini-1.5-flash" {
		t.Errorf("Gemini.Model = %v, want %v", cfg.Gemini.Model, "gemini-1.5-flash")
	}
	if cfg.Pipeline.TargetLanguage != "ja" {
		t.Errorf("TargetLanguage = %v, want %v", cfg.Pipeline.TargetLanguage, "ja")
	}
	if cfg.Paths.Output != "./output" {
		t.Errorf("Paths.Output = %v, want %v", cfg.Paths.Output, "./output")
	}
	if !cfg.RefineEnabled() {
		t.Error("RefineEnabled() = false, want true by default")
	}
}

func TestRefineEnabled(t *testing.T) {
	off := false
	on := true

	tests := []struct {
		name   string
		refine *bool
		want   bool
	}{
		{"unset defaults to on", nil, true},
		{"explicitly on", &on, true},
		{"explicitly off", &off, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Pipeline: PipelineConfig{Refine: tt.refine}}
			if got := cfg.RefineEnabled(); got != tt.want {
				t.Errorf("RefineEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  binary_path: "./whisper-cli"
  model_dir: "models"
  model_size: "base"

downloader:
  binary_path: "/usr/local/bin/yt-dlp"

pipeline:
  target_language: "en"
  refine: false

paths:
  output: "out"
  prompts: "prompts"

logging:
  level: "debug"
  format: "json"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelSize != "base" {
		t.Errorf("ModelSize = %v, want %v", cfg.Whisper.ModelSize, "base")
	}
	if cfg.Pipeline.TargetLanguage != "en" {
		t.Errorf("TargetLanguage = %v, want %v", cfg.Pipeline.TargetLanguage, "en")
	}
	if cfg.RefineEnabled() {
		t.Error("RefineEnabled() = true, want false")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
