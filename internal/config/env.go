package config

import (
	"os"
	"strings"
)

type Env struct {
	DBUser string
	DBPass string
	DBHost string
	DBName string
}

func LoadEnv() Env {
	user := strings.TrimSpace(os.Getenv("DB_USER"))
	if user == "" {
		user = "root"
	}

	host := strings.TrimSpace(os.Getenv("DB_HOST"))
	if host == "" {
		host = "127.0.0.1:3306"
	}

	name := strings.TrimSpace(os.Getenv("DB_NAME"))
	if name == "" {
		name = "railway_reservation"
	}

	return Env{
		DBUser: user,
		DBPass: os.Getenv("DB_PASS"),
		DBHost: host,
		DBName: name,
	}
}
