package config

import (
	"os"
	"strconv"
)

type ConfigStruct struct {
	Telegram   TelegramConfig
	Gemini     GeminiConfig
	Shazam     ShazamConfig
	SoundCloud SoundCloudConfig
	Options    Options
}

type TelegramConfig struct {
	BotToken string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ShazamConfig struct {
	APIURL string
	APIKey string
}

type SoundCloudConfig struct {
	APIURL   string
	ClientID string
}

type Options struct {
	Port                  string
	LogLevel              string
	MaxUploadMB           int
	RequestTimeoutSeconds int
}

func (g *GeminiConfig) IsEnabled() bool {
	return g.APIKey != ""
}

// IsEnabled reports whether the catalog credential is present. When it is
// absent the search client degrades to always-empty instead of failing.
func (s *SoundCloudConfig) IsEnabled() bool {
	return s.ClientID != ""
}

var Config *ConfigStruct

func NewConfig() {
	config := &ConfigStruct{
		Telegram: TelegramConfig{
			BotToken: os.Getenv("BOT_TOKEN"),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getGeminiModel(),
		},
		Shazam: ShazamConfig{
			APIURL: getShazamURL(),
			APIKey: os.Getenv("SHAZAM_API_KEY"),
		},
		SoundCloud: SoundCloudConfig{
			APIURL:   getSoundCloudURL(),
			ClientID: os.Getenv("SOUNDCLOUD_CLIENT_ID"),
		},
		Options: Options{
			Port:                  os.Getenv("PORT"),
			LogLevel:              os.Getenv("LOG_LEVEL"),
			MaxUploadMB:           getMaxUploadMB(),
			RequestTimeoutSeconds: getRequestTimeout(),
		},
	}

	Config = config
}

func getGeminiModel() string {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		return "gemini-2.0-flash"
	}
	return model
}

func getShazamURL() string {
	url := os.Getenv("SHAZAM_API_URL")
	if url == "" {
		return "https://shazam.p.rapidapi.com"
	}
	return url
}

func getSoundCloudURL() string {
	url := os.Getenv("SOUNDCLOUD_API_URL")
	if url == "" {
		return "https://api.soundcloud.com"
	}
	return url
}

func getMaxUploadMB() int {
	limitStr := os.Getenv("MAX_UPLOAD_MB")
	if limitStr == "" {
		return 10
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 10
	}
	if limit > 50 {
		return 50 // Cap uploads; recognition samples are short clips anyway
	}
	return limit
}

func getRequestTimeout() int {
	timeoutStr := os.Getenv("REQUEST_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		return 30
	}
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil || timeout <= 0 {
		return 30
	}
	if timeout > 120 {
		return 120
	}
	return timeout
}
