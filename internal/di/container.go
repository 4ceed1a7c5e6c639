package di

import (
	"time"

	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/handler"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/notify"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/repository"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/service"
	"github.com/SarvanMaurya123/JobPortalBackendcode/internal/token"
	"github.com/SarvanMaurya123/JobPortalBackendcode/pkg/database"
	"go.uber.org/zap"
)

// ContainerConfig holds everything the container needs to wire the service
type ContainerConfig struct {
	DB            *database.PostgresDB
	Logger        *zap.Logger
	TokenSecret   string
	TokenIssuer   string
	TokenTTL      time.Duration
	SessionCookie handler.SessionCookie
}

// Container wires repositories, services and handlers. Both account kinds
// share one token issuer and one signing secret; only the backing relation
// differs between the two service instances.
type Container struct {
	JobseekerAuth service.AuthService
	EmployerAuth  service.AuthService

	JobseekerHandler *handler.JobseekerHandler
	EmployerHandler  *handler.EmployerHandler
	HealthHandler    *handler.HealthHandler
}

// NewContainer builds the dependency graph
func NewContainer(cfg *ContainerConfig) *Container {
	issuer := token.NewIssuer(cfg.TokenSecret, cfg.TokenIssuer, cfg.TokenTTL)
	notifier := notify.NewLogNotifier(cfg.Logger)

	jobseekerRepo := repository.NewPostgresJobseekerRepository(cfg.DB.Pool())
	employerRepo := repository.NewPostgresEmployerRepository(cfg.DB.Pool())

	jobseekerAuth := service.NewAuthService(jobseekerRepo, issuer, notifier, cfg.Logger)
	employerAuth := service.NewAuthService(employerRepo, issuer, notifier, cfg.Logger)

	return &Container{
		JobseekerAuth: jobseekerAuth,
		EmployerAuth:  employerAuth,

		JobseekerHandler: handler.NewJobseekerHandler(jobseekerAuth, cfg.SessionCookie, cfg.Logger),
		EmployerHandler:  handler.NewEmployerHandler(employerAuth, cfg.SessionCookie, cfg.Logger),
		HealthHandler:    handler.NewHealthHandler(cfg.DB),
	}
}
