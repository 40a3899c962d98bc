package config

import "os"

type Config struct {
	Port          string
	HighScoreFile string
	SingleSession bool
}

func FromEnv() Config {
	c := Config{}
	c.Port = getenv("PORT", "8080")
	c.HighScoreFile = getenv("HIGHSCORE_FILE", "./chromatone-highscore.json")
	c.SingleSession = getenv("SINGLE_SESSION", "true") == "true"
	return c
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
