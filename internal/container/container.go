package container

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/courtbook/server/internal/config"
	"github.com/courtbook/server/internal/helpers"
	"github.com/courtbook/server/internal/models"
	"github.com/courtbook/server/internal/notify"
	"github.com/courtbook/server/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	DB     *gorm.DB

	Tokens     *helpers.TokenManager
	Mailer     *notify.Mailer
	Dispatcher *notify.Dispatcher

	UserService    *services.UserService
	CourtService   *services.CourtService
	SlotService    *services.SlotService
	BookingService *services.BookingService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, db *gorm.DB, cfg *config.Config) *Container {
	repo := models.NewGormRepo(db)
	tokens := helpers.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)
	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.FromEmail)
	dispatcher := notify.NewDispatcher(cfg.NotifyQueueSize, logger)

	return &Container{
		Logger:         logger,
		DB:             db,
		Tokens:         tokens,
		Mailer:         mailer,
		Dispatcher:     dispatcher,
		UserService:    services.NewUserService(repo, tokens),
		CourtService:   services.NewCourtService(repo),
		SlotService:    services.NewSlotService(repo, repo),
		BookingService: services.NewBookingService(repo, repo, mailer, dispatcher, logger),
	}
}
