package config

import (
	"path/filepath"
	"time"

	"usercenter/pkg/config"
)

// Defaults 配置文件和环境变量都未设置时使用
var Defaults = map[string]interface{}{
	"mode":         "release",
	"service.name": "usercenter",
	"service.addr": ":8080",
	"log.level":    "INFO",
	"log.console":  true,
	"log.path":     "",
	"log.format":   "console",
	"cors.origins": []string{"*"},
	"view.ttl":     30 * time.Minute,
	"seed.url":     "",
	"seed.timeout": 10 * time.Second,
	"limit.rate":   50.0,
	"limit.burst":  100,
}

// LoadConfig init Config, onChange runs whenever the file is rewritten
func LoadConfig(path string, onChange ...func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	opts := []config.Option{
		config.WithConfigFile(absPath),
		config.WithDefaults(Defaults),
	}
	for _, fn := range onChange {
		opts = append(opts, config.WithOnChange(fn))
	}
	return config.LoadConfig(opts...)
}
