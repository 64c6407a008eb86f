package mvic

import "time"

// Config is the json5 form of ClientOptions.
type Config struct {
	BaseUrl          string `json:"base_url"`
	UserAgent        string `json:"user_agent"`
	RandomUserAgent  bool   `json:"random_user_agent"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
	TimeoutSeconds   int    `json:"timeout_seconds"`
}

func (c Config) ClientOptions() ClientOptions {
	return ClientOptions{
		BaseUrl:          c.BaseUrl,
		UserAgent:        c.UserAgent,
		RandomUserAgent:  c.RandomUserAgent,
		CloudflareBypass: c.CloudflareBypass,
		Timeout:          time.Duration(c.TimeoutSeconds) * time.Second,
	}
}
