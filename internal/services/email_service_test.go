package services

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/sjperalta/frequencia-api/internal/config"
	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "msg_1"}, nil
}

func TestEmailService_checkEmailPreconditions(t *testing.T) {
	logger.Setup("test")
	user := &models.User{Email: "test@example.com", NomeCompleto: "Test User", ID: 1}

	// Email not configured
	service := NewEmailService(&config.Config{})
	ok, err := service.checkEmailPreconditions(user)
	assert.False(t, ok)
	assert.NoError(t, err)

	// Configured and valid
	cfg := &config.Config{ResendAPIKey: "test_key", FromEmail: "from@example.com"}
	service = NewEmailService(cfg)
	ok, err = service.checkEmailPreconditions(user)
	assert.True(t, ok)
	assert.NoError(t, err)

	// Missing address
	ok, err = service.checkEmailPreconditions(&models.User{ID: 2})
	assert.False(t, ok)
	assert.EqualError(t, err, "email address is empty")
}

func TestEmailService_SendWelcome(t *testing.T) {
	cfg := &config.Config{ResendAPIKey: "test_key", FromEmail: "frequencia@example.com", AppURL: "https://frequencia.example.com"}
	sender := &fakeSender{}
	service := &EmailService{config: cfg, sender: sender}

	user := &models.User{
		Email:        "gestor@example.com",
		NomeCompleto: "Maria Gestora",
		Role:         &models.UserRole{Role: models.RoleGestor},
	}
	require.NoError(t, service.SendWelcome(context.Background(), user))

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, []string{"gestor@example.com"}, msg.To)
	assert.Equal(t, "frequencia@example.com", msg.From)
	assert.Equal(t, welcomeSubject, msg.Subject)
	assert.Contains(t, msg.Html, "Olá, Maria Gestora!")
	assert.Contains(t, msg.Html, "<strong>Gestor</strong>")
	assert.Contains(t, msg.Html, `href="https://frequencia.example.com"`)
}

func TestEmailService_SendWelcomeSkippedOrFailed(t *testing.T) {
	sender := &fakeSender{}
	service := &EmailService{config: &config.Config{}, sender: sender}
	require.NoError(t, service.SendWelcome(context.Background(), &models.User{Email: "a@example.com"}))
	assert.Empty(t, sender.sent, "nothing is sent without configuration")

	sender.err = errors.New("resend unavailable")
	service.config = &config.Config{ResendAPIKey: "k", FromEmail: "f@example.com"}
	assert.Error(t, service.SendWelcome(context.Background(), &models.User{Email: "a@example.com"}))
}
