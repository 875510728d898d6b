package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port       string
	DBPath     string
	CORSOrigin string
	Mail       MailConfig
}

// MailConfig is only required by the alert binary; the API server
// never touches it.
type MailConfig struct {
	Host        string
	Port        int
	User        string
	Pass        string
	To          string
	Subject     string
	ContentTmpl string
}

func Load() *Config {
	cfg := Config{
		Port:       os.Getenv("PORT"),
		DBPath:     os.Getenv("HRMS_DB_PATH"),
		CORSOrigin: os.Getenv("CORS_ORIGIN"),
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "hrms.db"
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "*"
	}

	cfg.Mail = MailConfig{
		Host:        os.Getenv("MAIL_HOST"),
		User:        os.Getenv("MAIL_USER"),
		Pass:        os.Getenv("MAIL_PASS"),
		To:          os.Getenv("MAIL_TO"),
		Subject:     os.Getenv("MAIL_SUBJECT"),
		ContentTmpl: os.Getenv("MAIL_CONTENT_TPL"),
	}
	if cfg.Mail.Host != "" {
		mailPort, err := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if err != nil {
			log.Fatal("Error when parse port mail from env: ", err)
		}
		cfg.Mail.Port = mailPort
	}
	return &cfg
}

// MailEnabled reports whether mail settings are complete enough to dial.
func (c *Config) MailEnabled() bool {
	return c.Mail.Host != "" && c.Mail.To != ""
}
