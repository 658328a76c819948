package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sjperalta/frequencia-api/internal/config"
	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/services"
	"github.com/sjperalta/frequencia-api/pkg/logger"
)

// Sends the back-office welcome email to TEST_EMAIL_TO so the Resend setup can be checked by hand.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup("development")

	if !cfg.EmailEnabled() {
		log.Fatal("RESEND_API_KEY and FROM_EMAIL must be set")
	}

	toEmail := os.Getenv("TEST_EMAIL_TO")
	if toEmail == "" {
		toEmail = "test@example.com"
		log.Println("TEST_EMAIL_TO not set, using test@example.com")
	}

	role := models.RoleGestor
	if r, ok := models.ParseRole(os.Getenv("TEST_EMAIL_ROLE")); ok {
		role = r
	}

	user := &models.User{
		NomeCompleto: "Usuário de Teste",
		Email:        toEmail,
		Role:         &models.UserRole{Role: role},
	}

	log.Printf("Sending welcome email to %s (%s)...", toEmail, role)
	if err := services.NewEmailService(cfg).SendWelcome(context.Background(), user); err != nil {
		log.Fatalf("Failed to send welcome email: %v", err)
	}
	log.Println("Welcome email sent successfully!")
}
