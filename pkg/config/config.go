package config

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type option struct {
	cfg        string
	name       string
	envPrefix  string
	configType string
	defaults   map[string]interface{}
	onChange   []func()
}

type Option func(*option)

// WithConfigFile 指定配置文件，为空时在home目录下按name查找
func WithConfigFile(cfg string) Option {
	return func(o *option) {
		o.cfg = cfg
	}
}

func WithConfigType(configType string) Option {
	return func(o *option) {
		o.configType = configType
	}
}

func WithName(name string) Option {
	return func(o *option) {
		o.name = name
	}
}

func WithEnvPrefix(envPrefix string) Option {
	return func(o *option) {
		o.envPrefix = envPrefix
	}
}

// WithDefaults are used when neither the file nor the environment sets a key
func WithDefaults(defaults map[string]interface{}) Option {
	return func(o *option) {
		o.defaults = defaults
	}
}

// WithOnChange watches the config file, fn runs after every reload
func WithOnChange(fn func()) Option {
	return func(o *option) {
		o.onChange = append(o.onChange, fn)
	}
}

// LoadConfig reads the file into viper, USERCENTER_LOG_LEVEL overrides log.level
func LoadConfig(opts ...Option) error {
	o := &option{
		name:       "usercenter",
		envPrefix:  "usercenter",
		configType: "yaml",
	}
	for _, opt := range opts {
		opt(o)
	}
	for key, value := range o.defaults {
		viper.SetDefault(key, value)
	}
	if err := locate(o); err != nil {
		return err
	}
	viper.SetEnvPrefix(o.envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	if len(o.onChange) > 0 {
		viper.OnConfigChange(func(fsnotify.Event) {
			for _, fn := range o.onChange {
				fn()
			}
		})
		viper.WatchConfig()
	}
	return nil
}

func locate(o *option) error {
	if o.cfg != "" {
		viper.SetConfigFile(o.cfg)
		return nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return err
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(o.name)
	viper.SetConfigType(o.configType)
	return nil
}
