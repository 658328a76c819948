package database

import (
	"fmt"
	"os"
	"time"

	"github.com/sjperalta/frequencia-api/internal/models"
	pkgLogger "github.com/sjperalta/frequencia-api/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a connection to the PostgreSQL database
func Connect(databaseURL string) (*gorm.DB, error) {
	// Configure GORM logger
	logLevel := logger.Silent
	if os.Getenv("ENVIRONMENT") != "production" {
		logLevel = logger.Info
	}

	gormLogger := pkgLogger.NewGormLogger(
		logLevel,
		200*time.Millisecond,
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Models lists every table owned by the service, in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.Orgao{},
		&models.Lotacao{},
		&models.Colaborador{},
		&models.RegistroPonto{},
		&models.FrequenciaGerada{},
		&models.User{},
		&models.UserRole{},
		&models.RefreshToken{},
		&models.AuditLog{},
	}
}

// Migrate creates or updates the schema
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Alternation relies on the punch type domain; gorm tags cannot express it.
	if err := db.Exec(`DO $$ BEGIN
		ALTER TABLE registros_ponto ADD CONSTRAINT chk_registros_ponto_tipo CHECK (tipo IN ('entrada', 'saida'));
	EXCEPTION WHEN duplicate_object THEN NULL; END $$;`).Error; err != nil {
		return fmt.Errorf("failed to add tipo constraint: %w", err)
	}

	if err := db.Exec(`DO $$ BEGIN
		ALTER TABLE user_roles ADD CONSTRAINT chk_user_roles_role CHECK (role IN ('super_admin', 'admin', 'gestor', 'user'));
	EXCEPTION WHEN duplicate_object THEN NULL; END $$;`).Error; err != nil {
		return fmt.Errorf("failed to add role constraint: %w", err)
	}

	return nil
}
