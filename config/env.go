package config

import (
	"os"
)

const (
	envProd = "PROD"
	envDev  = "DEV"
)

func readEnv() string {
	env := os.Getenv("YAPTIDE_MATERIALS_ENV")
	if env == envDev {
		return envDev
	}
	return envProd
}
