package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"TeleCareZone-Web/internal/domain/effect"
	"TeleCareZone-Web/internal/domain/repository"
	"TeleCareZone-Web/internal/domain/service"
)

// ErrInvalidSubdomain is returned by Visit for anything that is not a DNS label.
var ErrInvalidSubdomain = errors.New("invalid subdomain")

// ErrNoSubdomainHost is returned by Visit when the host is an IP address.
var ErrNoSubdomainHost = errors.New("host cannot carry a professional subdomain")

const maxLabelLength = 63

var dnsLabel = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

type LandingUseCase interface {
	// LoadDirectory mounts a view, fetches once and builds the cards for hostname.
	LoadDirectory(ctx context.Context, hostname string) service.DirectoryPage

	// Visit returns the navigation effect for a professional's subdomain.
	Visit(hostname, subdomain string) (effect.Effect, error)
}

// landingUseCaseImpl implements LandingUseCase
type landingUseCaseImpl struct {
	repo             repository.ProfessionalsRepository
	directoryService service.DirectoryService
	logger           *zap.Logger
}

// NewLandingUseCase creates a LandingUseCase
func NewLandingUseCase(
	repo repository.ProfessionalsRepository,
	directoryService service.DirectoryService,
	logger *zap.Logger,
) LandingUseCase {
	return &landingUseCaseImpl{
		repo:             repo,
		directoryService: directoryService,
		logger:           logger,
	}
}

func (u *landingUseCaseImpl) LoadDirectory(ctx context.Context, hostname string) service.DirectoryPage {
	view := NewDirectoryView(u.repo, u.logger)
	view.Mount(ctx)
	view.Fetch()
	view.Wait()
	professionals := view.Professionals()
	view.Unmount()

	return u.directoryService.BuildDirectory(professionals, hostname)
}

func (u *landingUseCaseImpl) Visit(hostname, subdomain string) (effect.Effect, error) {
	if len(subdomain) > maxLabelLength || !dnsLabel.MatchString(subdomain) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubdomain, subdomain)
	}
	target := service.NavigationURL(hostname, subdomain)
	if target == "" {
		return nil, fmt.Errorf("%w: %q", ErrNoSubdomainHost, hostname)
	}
	return effect.NavigateTo{URL: target}, nil
}
