package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/pokevault/pokedex-service/internal/config"
	"github.com/pokevault/pokedex-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendCollectionDigest sends a periodic summary of a user's collection
func (s *Sender) SendCollectionDigest(to string, total int64, recent []models.CollectionItem) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Your Pokémon collection digest"

	var body strings.Builder
	fmt.Fprintf(&body, "Hello,\n\nYour collection currently holds %d Pokémon.\n", total)
	if len(recent) > 0 {
		body.WriteString("\nLatest additions:\n")
		for _, item := range recent {
			fmt.Fprintf(&body, "- %s (catalog id %d)\n", item.Name, item.PokemonID)
		}
	}
	body.WriteString("\nHappy collecting!\n")
	e.Text = []byte(body.String())

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("failed to send digest email: %w", err)
	}

	s.logger.Infof("Digest email sent to %s", to)
	return nil
}
