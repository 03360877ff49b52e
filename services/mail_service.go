package services

import (
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"eventify.link/configs"
	"eventify.link/configs/configslog"
)

// IMailService e-posta gönderimi için arayüz. Gönderim her zaman ikincil
// bir yan etkidir; çağıranlar hatayı loglayıp yutar.
type IMailService interface {
	SendMail(to string, subject string, htmlBody string) error
}

// MailService SMTP üzerinden e-posta gönderir.
type MailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailService yeni bir MailService örneği oluşturur.
func NewMailService(cfg *configs.Config) IMailService {
	return &MailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (s *MailService) SendMail(to string, subject string, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		configslog.Log.Error("E-posta gönderilemedi", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return err
	}
	return nil
}

var _ IMailService = (*MailService)(nil)
