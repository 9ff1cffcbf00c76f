package handler

import (
	"log/slog"

	"github.com/folio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	submissions *service.SubmissionService
	listings    *service.ListingService
	moderation  *service.ModerationService
	contacts    *service.ContactService
	uploader    *service.ImageUploader
	logger      *slog.Logger
}

// Options carries the settings NewAPI needs beyond the database.
type Options struct {
	AvatarBaseURL string
	UploadDir     string
	UploadURL     string
	Logger        *slog.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, opts Options) *API {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repos := service.NewRepositories(gdb)
	submissions := service.NewSubmissionService(repos, service.NewAvatarService(opts.AvatarBaseURL))

	return &API{
		db:          gdb,
		submissions: submissions,
		listings:    service.NewListingService(repos, logger),
		moderation:  service.NewModerationService(repos, submissions),
		contacts:    service.NewContactService(repos.Messages),
		uploader:    service.NewImageUploader(opts.UploadDir, opts.UploadURL),
		logger:      logger,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
