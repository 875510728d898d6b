// Command alert is a run-once job, meant to be cron-invoked at end of
// day: it computes today's attendance summary and mails it to the
// configured administrator.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/huyquangvevo/vcs-hrms/internal/config"
	"github.com/huyquangvevo/vcs-hrms/internal/mailer"
	"github.com/huyquangvevo/vcs-hrms/internal/storage"
	"github.com/huyquangvevo/vcs-hrms/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()
	if !cfg.MailEnabled() {
		log.Fatal("You must set MAIL_HOST and MAIL_TO to send the daily alert")
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Error when open db: ", err)
	}
	defer storage.Close(db)

	today := store.Today()
	summary, err := store.NewStatsEngine(db).DailySummary(today)
	if err != nil {
		log.Fatal("Error when compute daily summary: ", err)
	}

	if err := mailer.New(cfg.Mail).SendDailySummary(today, summary); err != nil {
		log.Fatal("Error when send mail: ", err)
	}
	log.Printf("Daily summary for %s sent: %d present, %d absent, %d not marked",
		today, summary.PresentToday, summary.AbsentToday, summary.NotMarkedToday)
}
