package services

import (
	portsrepo "github.com/daybookhq/daybook-backend/internal/core/ports/repositories"
	portssvc "github.com/daybookhq/daybook-backend/internal/core/ports/services"
	"github.com/daybookhq/daybook-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Event = NewEventService(repos.EventRepo)
	container.Journal = NewJournalService(repos.JournalRepo)

	// TokenService needs the user service for refresh token validation
	container.TokenService = NewTokenService(cfg, container.User)

	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
