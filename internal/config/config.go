package config

import "fmt"

type Config struct {
	Whisper    WhisperConfig    `yaml:"whisper"`
	Downloader DownloaderConfig `yaml:"downloader"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelDir   string `yaml:"model_dir"`
	ModelSize  string `yaml:"model_size"`
	Threads    int    `yaml:"threads"`
}

type DownloaderConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	AudioQuality string `yaml:"audio_quality"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
	// APIKey is populated from the GEMINI_API_KEY environment variable at
	// startup, never from the yaml file.
	APIKey string `yaml:"-"`
}

type PipelineConfig struct {
	TargetLanguage string `yaml:"target_language"`
	Refine         *bool  `yaml:"refine"`
	ExportDocx     bool   `yaml:"export_docx"`
}

type PathsConfig struct {
	Output  string `yaml:"output"`
	Prompts string `yaml:"prompts"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RefineEnabled reports whether the refine stage should run. The stage is on
// unless the config explicitly disables it.
func (c *Config) RefineEnabled() bool {
	return c.Pipeline.Refine == nil || *c.Pipeline.Refine
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelDir == "" {
		return fmt.Errorf("whisper.model_dir is required")
	}

	if c.Whisper.ModelSize == "" {
		c.Whisper.ModelSize = "small"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Downloader.BinaryPath == "" {
		c.Downloader.BinaryPath = "yt-dlp"
	}
	if c.Downloader.AudioQuality == "" {
		c.Downloader.AudioQuality = "192K"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-1.5-flash"
	}
	if c.Pipeline.TargetLanguage == "" {
		c.Pipeline.TargetLanguage = "ja"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "./output"
	}
	if c.Paths.Prompts == "" {
		c.Paths.Prompts = "./prompts"
	}

	return nil
}
