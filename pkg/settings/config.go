package settings

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

// consts
const (
	Name = "Askpad"
)

// Config ...
type Config struct {
	Name    string `ignored:"true"`
	Version string `ignored:"true"`

	HTTPListen string `envconfig:"HTTP_LISTEN" default:":5001"`
	RedisURI   string `envconfig:"redis_uri" default:"redis://localhost:6379/1"`

	// AskBaseURL selects remote mode when non-empty; asks go to {base}/ask
	AskBaseURL string `envconfig:"ask_base_url"`

	OpenAIAPIKey string `envconfig:"openAi_Api_Key"`
	PresetFile   string `envconfig:"preset_file"`

	HistoryKey string `envconfig:"history_key" default:"qa-history"`

	AllowOrigins []string `envconfig:"allow_origins" default:"*"` // CORS: 允许的 Origin 调用来源
	TrustProxies []string `envconfig:"Trust_Proxies" default:"127.0.0.1,::1"`

	APIRateLimit string `envconfig:"api_rate_limit" default:"60-M"`
}

var (
	// Current 当前配置
	Current = new(Config)
)

func init() {
	if err := envconfig.Process(Name, Current); err != nil {
		log.Printf("envconfig process fail: %s", err)
	}

	Current.Name = Name
	Current.Version = version
}

// Usage 打印配置帮助
func Usage() error {
	log.Printf("ver: %s", Current.Version)
	return envconfig.Usage(Current.Name, Current)
}

// AllowAllOrigins ...
func AllowAllOrigins() bool {
	return 0 == len(Current.AllowOrigins) ||
		1 == len(Current.AllowOrigins) && Current.AllowOrigins[0] == "*"
}
