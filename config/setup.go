// Package config provide configuration from environment variables.
package config

import (
	"os"
	"strings"

	"github.com/yaptide/materials/log"
)

// SetupConfig read and check config from environment, logger level is set accordingly.
func SetupConfig() (*Config, error) {
	conf := getDefaultConfig(readEnv())

	if level := os.Getenv("YAPTIDE_MATERIALS_LOG_LEVEL"); level != "" {
		conf.LoggingLevel = strings.ToLower(level)
	}

	if library := os.Getenv("YAPTIDE_MATERIALS_LIBRARY"); library != "" {
		conf.LibraryPath = library
	} else {
		log.Debug("[config] Library file is not defined. Using built-in materials only")
	}

	if err := checkConfig(conf); err != nil {
		return nil, err
	}

	level, _ := log.ParseLevel(conf.LoggingLevel)
	log.SetLoggerLevel(level)
	return conf, nil
}

func getDefaultConfig(env string) *Config {
	conf := &Config{
		Env:          env,
		LoggingLevel: "warning",
	}
	if env == envDev {
		conf.LoggingLevel = "debug"
	}
	return conf
}
