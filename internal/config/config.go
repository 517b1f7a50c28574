package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Summarizer providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type OpenAIConfig struct {
	// APIKey is taken from OPENAI_API_KEY, never from the config file.
	APIKey              string `yaml:"-"`
	BaseURL             string `yaml:"base_url"`
	WhisperModel        string `yaml:"whisper_model"`
	ChatModel           string `yaml:"chat_model"`
	MaxCompletionTokens int    `yaml:"max_completion_tokens"`
}

type GeminiConfig struct {
	// APIKeys is taken from GEMINI_API_KEY (comma-separated for rotation).
	APIKeys []string `yaml:"-"`
	Model   string   `yaml:"model"`
}

type SummarizerConfig struct {
	Provider       string `yaml:"provider"`
	MaxChunkTokens int    `yaml:"max_chunk_tokens"`
}

type FFmpegConfig struct {
	Binary     string `yaml:"binary"`
	SampleRate int    `yaml:"sample_rate"`
	Channels   int    `yaml:"channels"`
	AudioCodec string `yaml:"audio_codec"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML config at path and merges API credentials from the
// environment. A missing config file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Run on defaults plus environment.
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	for _, key := range strings.Split(os.Getenv("GEMINI_API_KEY"), ",") {
		if key = strings.TrimSpace(key); key != "" {
			cfg.Gemini.APIKeys = append(cfg.Gemini.APIKeys, key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Summarizer.Provider {
	case "", ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("summarizer.provider must be %q or %q", ProviderOpenAI, ProviderGemini)
	}
	if c.FFmpeg.SampleRate < 0 {
		return fmt.Errorf("ffmpeg.sample_rate must be positive")
	}
	if c.FFmpeg.Channels < 0 {
		return fmt.Errorf("ffmpeg.channels must be positive")
	}
	if c.Summarizer.MaxChunkTokens < 0 {
		return fmt.Errorf("summarizer.max_chunk_tokens must be positive")
	}

	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = ProviderOpenAI
	}
	if c.Summarizer.MaxChunkTokens == 0 {
		c.Summarizer.MaxChunkTokens = 96000
	}
	if c.OpenAI.WhisperModel == "" {
		c.OpenAI.WhisperModel = "whisper-1"
	}
	if c.OpenAI.ChatModel == "" {
		c.OpenAI.ChatModel = "gpt-4o"
	}
	if c.OpenAI.MaxCompletionTokens == 0 {
		c.OpenAI.MaxCompletionTokens = 16000
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.FFmpeg.Channels == 0 {
		c.FFmpeg.Channels = 1
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "pcm_s16le"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "transcripts"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
