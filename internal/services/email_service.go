package services

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/resend/resend-go/v2"
	"github.com/sjperalta/frequencia-api/internal/config"
	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/pkg/logger"
)

//go:embed templates/email/*.html
var emailTemplates embed.FS

const welcomeSubject = "Bem-vindo ao Sistema de Frequência"

var roleLabels = map[models.Role]string{
	models.RoleSuperAdmin: "Super administrador",
	models.RoleAdmin:      "Administrador",
	models.RoleGestor:     "Gestor",
	models.RoleUser:       "Usuário",
}

// emailSender is the part of the Resend client used here
type emailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type EmailService struct {
	config *config.Config
	sender emailSender
}

func NewEmailService(cfg *config.Config) *EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &EmailService{
		config: cfg,
		sender: client.Emails,
	}
}

// checkEmailPreconditions reports whether an email should be sent at all.
// A missing configuration is not an error; a missing address is.
func (s *EmailService) checkEmailPreconditions(user *models.User) (bool, error) {
	if s.config == nil || !s.config.EmailEnabled() {
		return false, nil
	}
	if user == nil || user.Email == "" {
		return false, errors.New("email address is empty")
	}
	return true, nil
}

// SendWelcome tells a newly created back-office user how to log in
func (s *EmailService) SendWelcome(ctx context.Context, user *models.User) error {
	ok, err := s.checkEmailPreconditions(user)
	if !ok {
		return err
	}

	role := user.CurrentRole()
	body, err := s.renderTemplate("welcome.html", struct {
		Nome   string
		Email  string
		Perfil string
		AppURL string
	}{
		Nome:   user.NomeCompleto,
		Email:  user.Email,
		Perfil: roleLabels[role],
		AppURL: s.config.AppURL,
	})
	if err != nil {
		return err
	}

	_, err = s.sender.Send(&resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      []string{user.Email},
		Subject: welcomeSubject,
		Html:    body,
	})
	if err != nil {
		logger.FromContext(ctx).Error("failed to send email", slog.String("to", user.Email), slog.String("error", err.Error()))
		return err
	}

	logger.FromContext(ctx).Info("email sent", slog.String("to", user.Email), slog.String("subject", welcomeSubject))
	return nil
}

func (s *EmailService) renderTemplate(name string, data any) (string, error) {
	tmpl, err := template.ParseFS(emailTemplates, "templates/email/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}
