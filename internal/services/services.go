package services

import (
	"github.com/sjperalta/frequencia-api/internal/config"
	"github.com/sjperalta/frequencia-api/internal/jobs"
	"github.com/sjperalta/frequencia-api/internal/repository"
	"github.com/sjperalta/frequencia-api/internal/storage"
)

// Services holds all service instances
type Services struct {
	Audit       *AuditService
	Punch       *PunchService
	Registro    *RegistroService
	Report      *ReportService
	Orgao       *OrgaoService
	Colaborador *ColaboradorService
	Frequencia  *FrequenciaService
	User        *UserService
	Auth        *AuthService
	Dashboard   *DashboardService
	Email       *EmailService
	Image       *ImageService
	Job         *JobService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, worker *jobs.Worker, store storage.ObjectStorage, cfg *config.Config) *Services {
	loc := cfg.Location()

	auditSvc := NewAuditService(repos.Audit, worker)
	emailSvc := NewEmailService(cfg)
	imageSvc := NewImageService(store)
	registroSvc := NewRegistroService(repos.RegistroPonto, repos.Colaborador, auditSvc, loc, cfg.MaxPunchesPerDay)

	return &Services{
		Audit:       auditSvc,
		Punch:       NewPunchService(repos.Colaborador, repos.RegistroPonto, loc, cfg.MaxPunchesPerDay),
		Registro:    registroSvc,
		Report:      NewReportService(registroSvc),
		Orgao:       NewOrgaoService(repos.Orgao, repos.Lotacao),
		Colaborador: NewColaboradorService(repos.Colaborador, repos.Orgao, repos.Lotacao, auditSvc),
		Frequencia:  NewFrequenciaService(repos.Frequencia, repos.Colaborador, repos.Orgao, store, imageSvc, auditSvc),
		User:        NewUserService(repos.User, worker, emailSvc, auditSvc),
		Auth:        NewAuthService(repos.User, repos.RefreshToken, auditSvc, cfg),
		Dashboard:   NewDashboardService(repos.Stats, loc),
		Email:       emailSvc,
		Image:       imageSvc,
		Job:         NewJobService(worker),
	}
}
