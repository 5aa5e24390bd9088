package service

import (
	"math"
	"net"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"TeleCareZone-Web/internal/domain/model"
)

// EmptyDirectoryMessage is shown in place of the grid when no professional is approved.
const EmptyDirectoryMessage = "No experts available yet. Check back soon!"

const (
	defaultCurrencySymbol = "₹"
	wwwPrefix             = "www."
)

// ProfessionalCard is the display form of one directory entry.
type ProfessionalCard struct {
	ID             string
	DisplayName    string
	Speciality     string
	Initials       string
	PhotoURL       string
	ExperienceLine string
	ExpertiseLine  string
	Fee            string
	ThemeColor     string
	NavigationURL  string
	VisitPath      string
}

// DirectoryPage is what the landing page renders for the expert grid.
type DirectoryPage struct {
	Cards        []ProfessionalCard
	Empty        bool
	EmptyMessage string
}

// DirectoryService turns directory records into cards.
type DirectoryService interface {
	BuildDirectory(professionals []model.Professional, hostname string) DirectoryPage
}

// directoryServiceImpl implements DirectoryService
type directoryServiceImpl struct {
	locale         language.Tag
	currencySymbol string
}

// NewDirectoryService creates a DirectoryService formatting fees for the Indian locale.
func NewDirectoryService() DirectoryService {
	return NewDirectoryServiceWithLocale(language.MustParse("en-IN"), defaultCurrencySymbol)
}

// NewDirectoryServiceWithLocale creates a DirectoryService for another locale and currency symbol.
func NewDirectoryServiceWithLocale(locale language.Tag, currencySymbol string) DirectoryService {
	return &directoryServiceImpl{
		locale:         locale,
		currencySymbol: currencySymbol,
	}
}

// BuildDirectory maps every record to a card, keeping order and duplicates.
func (s *directoryServiceImpl) BuildDirectory(professionals []model.Professional, hostname string) DirectoryPage {
	if len(professionals) == 0 {
		return DirectoryPage{
			Cards:        []ProfessionalCard{},
			Empty:        true,
			EmptyMessage: EmptyDirectoryMessage,
		}
	}

	printer := message.NewPrinter(s.locale)
	cards := make([]ProfessionalCard, 0, len(professionals))
	for _, prof := range professionals {
		cards = append(cards, s.buildCard(printer, prof, hostname))
	}

	return DirectoryPage{Cards: cards}
}

func (s *directoryServiceImpl) buildCard(printer *message.Printer, prof model.Professional, hostname string) ProfessionalCard {
	card := ProfessionalCard{
		ID:            string(prof.ID),
		DisplayName:   DisplayName(prof.FirstName, prof.LastName),
		Speciality:    prof.Speciality,
		Initials:      Initials(prof.FirstName, prof.LastName),
		PhotoURL:      prof.ProfilePhoto,
		Fee:           FormatFee(printer, s.currencySymbol, prof.ConsultingFees.Float64()),
		ThemeColor:    prof.ThemeColor,
		NavigationURL: NavigationURL(hostname, prof.Subdomain),
		VisitPath:     "/visit/" + url.PathEscape(prof.Subdomain),
	}

	// 0 and missing both hide the line
	if prof.ExperienceYears != nil && prof.ExperienceYears.Float64() != 0 {
		card.ExperienceLine = strconv.FormatFloat(prof.ExperienceYears.Float64(), 'f', -1, 64) + " years"
	}
	if prof.AreaOfExpertise != "" {
		card.ExpertiseLine = prof.AreaOfExpertise
	}

	return card
}

// Initials returns the first character of each name; a missing name contributes nothing.
func Initials(firstName, lastName string) string {
	return firstChar(firstName) + firstChar(lastName)
}

func firstChar(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// DisplayName formats the card heading.
func DisplayName(firstName, lastName string) string {
	return strings.TrimSpace("Dr. " + strings.TrimSpace(firstName+" "+lastName))
}

// NavigationURL builds https://{subdomain}.{hostname} with the port and one "www." removed.
// It returns "" for IP hosts, which cannot carry a subdomain.
func NavigationURL(hostname, subdomain string) string {
	apex := ApexHost(hostname)
	if net.ParseIP(apex) != nil {
		return ""
	}
	return "https://" + subdomain + "." + apex
}

// ApexHost strips the port, IPv6 brackets and the first "www." from a request host.
func ApexHost(hostname string) string {
	if host, _, err := net.SplitHostPort(hostname); err == nil {
		hostname = host
	}
	hostname = strings.TrimSuffix(strings.TrimPrefix(hostname, "["), "]")
	return strings.Replace(hostname, wwwPrefix, "", 1)
}

// FormatFee prefixes the locale-formatted fee with the currency symbol.
// Fractional fees always show two decimals.
func FormatFee(printer *message.Printer, symbol string, fee float64) string {
	opts := []number.Option{number.MaxFractionDigits(2)}
	if fee != math.Trunc(fee) {
		opts = append(opts, number.MinFractionDigits(2))
	}
	return symbol + printer.Sprintf("%v", number.Decimal(fee, opts...))
}
