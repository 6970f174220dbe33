package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

// SMTPSender livre les codes de vérification par e-mail quand un serveur SMTP
// est configuré. C'est le canal de livraison séparé de l'affichage : en sa
// présence, le code n'est jamais renvoyé dans la réponse HTTP.
type SMTPSender struct {
	host     string
	port     int
	from     string
	username string
	password string
}

// NewSMTPSenderFromEnv retourne nil si SMTP_HOST n'est pas configuré — le
// checkout reste alors en mode démo.
func NewSMTPSenderFromEnv() *SMTPSender {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("⚠️ SMTP non configuré — codes de vérification affichés en mode démo")
		return nil
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@shophub.com"
	}

	log.Println("✅ Livraison SMTP des codes activée via", host)
	return &SMTPSender{
		host:     host,
		port:     port,
		from:     from,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
	}
}

// SendCode envoie le code à 4 chiffres à l'adresse du client.
func (s *SMTPSender) SendCode(email, phone, code string) error {
	msg := mail.NewMsg()

	if err := msg.From(s.from); err != nil {
		return err
	}
	if err := msg.To(email); err != nil {
		return err
	}
	msg.Subject("Votre code de vérification ShopHub")
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 400px; margin: auto; padding: 20px;">
	<h2 style="color: #ff9500;">ShopHub</h2>
	<p>Votre code de vérification pour la commande en cours :</p>
	<p style="font-size: 32px; font-weight: bold; letter-spacing: 8px; text-align: center;">%s</p>
	<p style="color: #999; font-size: 12px;">Ce code est associé au téléphone %s.</p>
</div>`, code, phone))

	client, err := mail.NewClient(s.host,
		mail.WithPort(s.port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi du code de vérification à", email)
	return client.DialAndSend(msg)
}
