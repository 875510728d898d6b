package mailer

import (
	"crypto/tls"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/huyquangvevo/vcs-hrms/internal/config"
	"github.com/huyquangvevo/vcs-hrms/internal/models"
)

// Mailer sends the daily attendance summary to an administrator.
type Mailer struct {
	dialer *gomail.Dialer
	cfg    config.MailConfig
}

func New(cfg config.MailConfig) *Mailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	return &Mailer{dialer: d, cfg: cfg}
}

// SendDailySummary renders the content template and mails it. The
// template uses $DATE, $TOTAL, $PRESENT, $ABSENT and $NOT_MARKED
// placeholders.
func (m *Mailer) SendDailySummary(date string, s models.DailySummary) error {
	content := renderSummary(m.cfg.ContentTmpl, date, s)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.User)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", m.cfg.Subject)
	msg.SetBody("text/html", content)

	return m.dialer.DialAndSend(msg)
}

func renderSummary(tmpl, date string, s models.DailySummary) string {
	content := tmpl
	content = strings.ReplaceAll(content, "$DATE", date)
	content = strings.ReplaceAll(content, "$TOTAL", strconv.FormatInt(s.TotalEmployees, 10))
	content = strings.ReplaceAll(content, "$PRESENT", strconv.FormatInt(s.PresentToday, 10))
	content = strings.ReplaceAll(content, "$ABSENT", strconv.FormatInt(s.AbsentToday, 10))
	content = strings.ReplaceAll(content, "$NOT_MARKED", strconv.FormatInt(s.NotMarkedToday, 10))
	return content
}
