package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"multipoles-backend/config"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/util"
)

// SMTPMailer sends form notifications to the site owner plus a
// confirmation back to the visitor. SendMail negotiates STARTTLS on
// its own when the server offers it.
type SMTPMailer struct {
	addr       string
	auth       smtp.Auth
	from       string
	adminEmail string
}

func NewSMTPMailer(cfg *config.SMTPConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Username != "" || cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr:       net.JoinHostPort(cfg.Host, cfg.Port),
		auth:       auth,
		from:       cfg.From,
		adminEmail: cfg.AdminEmail,
	}
}

func (m *SMTPMailer) SendContactFormEmail(ctx context.Context, form *model.ContactForm) error {
	fullName := form.FirstName + " " + form.LastName

	adminBody := fmt.Sprintf(`<h2>Nouveau message de contact</h2>
<p><strong>Nom:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Téléphone:</strong> %s</p>
<p><strong>Entreprise:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		fullName, form.Email, form.Phone, orDefault(form.Company, "Non fourni"), form.Message)

	if err := m.send(m.adminEmail, "Nouveau message de contact - "+fullName, adminBody); err != nil {
		return err
	}

	confirmBody := fmt.Sprintf(`<h2>Merci pour votre message</h2>
<p>Bonjour %s,</p>
<p>Nous avons bien reçu votre message et nous vous répondrons dans les plus brefs délais.</p>
<p>Cordialement,<br/>L'équipe Multipoles</p>`, form.FirstName)

	if err := m.send(form.Email, "Confirmation - Votre message a été reçu", confirmBody); err != nil {
		// The owner already has the notification, a lost
		// confirmation is only worth a log line.
		util.LogError("[SMTPMailer] failed to send contact confirmation", err)
	}
	return nil
}

func (m *SMTPMailer) SendDevisFormEmail(ctx context.Context, form *model.DevisForm) error {
	fullName := form.FirstName + " " + form.LastName

	var b strings.Builder
	b.WriteString("<h2>Nouvelle demande de devis</h2>\n")
	b.WriteString("<h3>Informations du projet</h3>\n")
	fmt.Fprintf(&b, "<p><strong>Type de projet:</strong> %s</p>\n", form.ProjectType)
	fmt.Fprintf(&b, "<p><strong>Description:</strong> %s</p>\n", form.Description)
	fmt.Fprintf(&b, "<p><strong>Budget:</strong> %s</p>\n", orDefault(form.Budget, "Non spécifié"))
	if form.Quantity != nil {
		fmt.Fprintf(&b, "<p><strong>Quantité:</strong> %d</p>\n", *form.Quantity)
	} else {
		b.WriteString("<p><strong>Quantité:</strong> Non spécifié</p>\n")
	}
	if len(form.Dimensions) > 0 {
		fmt.Fprintf(&b, "<p><strong>Dimensions:</strong> L: %v x H: %v x P: %v</p>\n",
			dimension(form.Dimensions, "width"),
			dimension(form.Dimensions, "height"),
			dimension(form.Dimensions, "depth"))
	}
	if form.DesiredDeliveryDate != nil {
		fmt.Fprintf(&b, "<p><strong>Date de livraison souhaitée:</strong> %s</p>\n", form.DesiredDeliveryDate.Format("2006-01-02"))
	} else {
		b.WriteString("<p><strong>Date de livraison souhaitée:</strong> Non spécifié</p>\n")
	}
	b.WriteString("<h3>Informations de contact</h3>\n")
	fmt.Fprintf(&b, "<p><strong>Nom:</strong> %s</p>\n", fullName)
	fmt.Fprintf(&b, "<p><strong>Entreprise:</strong> %s</p>\n", form.Company)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", form.Email)
	fmt.Fprintf(&b, "<p><strong>Téléphone:</strong> %s</p>", form.Phone)

	subject := fmt.Sprintf("Nouvelle demande de devis - %s - %s", fullName, form.Company)
	if err := m.send(m.adminEmail, subject, b.String()); err != nil {
		return err
	}

	confirmBody := fmt.Sprintf(`<h2>Merci pour votre demande de devis</h2>
<p>Bonjour %s,</p>
<p>Nous avons bien reçu votre demande de devis et nous vous contacterons très prochainement pour discuter de votre projet.</p>
<p>Cordialement,<br/>L'équipe Multipoles</p>`, form.FirstName)

	if err := m.send(form.Email, "Confirmation - Votre demande de devis a été reçue", confirmBody); err != nil {
		util.LogError("[SMTPMailer] failed to send devis confirmation", err)
	}
	return nil
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"\r\n" + body + "\r\n")

	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg)
}

func orDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func dimension(dims model.JSONMap, key string) any {
	if v, ok := dims[key]; ok && v != nil {
		return v
	}
	return "N/A"
}
