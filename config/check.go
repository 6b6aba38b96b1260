package config

import (
	"fmt"
	"os"
	"strings"
)

type checkFunc func(conf *Config) error

func checkConfig(conf *Config) error {
	checkFuncs := []checkFunc{
		checkLoggingLevel,
		checkLibraryPath,
	}

	for _, checkFunc := range checkFuncs {
		if err := checkFunc(conf); err != nil {
			return err
		}
	}

	return nil
}

var availableLoggingLevels = []string{"error", "warning", "warn", "info", "debug"}

func checkLoggingLevel(conf *Config) error {
	for _, l := range availableLoggingLevels {
		if l == conf.LoggingLevel {
			return nil
		}
	}
	return fmt.Errorf("[config] Invalid logging level %q, one of: %s",
		conf.LoggingLevel, strings.Join(availableLoggingLevels, ", "))
}

func checkLibraryPath(conf *Config) error {
	if conf.LibraryPath == "" {
		return nil
	}
	info, err := os.Stat(conf.LibraryPath)
	if err != nil {
		return fmt.Errorf("[config] Library file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("[config] Library file %s is a directory", conf.LibraryPath)
	}
	return nil
}
