package app

import (
	"strings"

	"github.com/yungbote/truthlens-backend/internal/analysis"
	"github.com/yungbote/truthlens-backend/internal/platform/envutil"
	"github.com/yungbote/truthlens-backend/internal/store"
)

type Config struct {
	Addr        string
	LogMode     string
	CORSOrigins []string
	FixturePath string
	Store       store.Config
}

func LoadConfig() Config {
	var origins []string
	for _, o := range strings.Split(envutil.String("CORS_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return Config{
		Addr:        envutil.String("HTTP_ADDR", ":8000"),
		LogMode:     envutil.String("LOG_MODE", "development"),
		CORSOrigins: origins,
		FixturePath: envutil.String("FIXTURE_PATH", analysis.DefaultFixturePath),
		Store:       store.ConfigFromEnv(),
	}
}
