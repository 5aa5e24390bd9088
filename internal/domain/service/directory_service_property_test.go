package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"TeleCareZone-Web/internal/domain/model"
)

func TestInitialsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("missing last name contributes nothing", prop.ForAll(
		func(first string) bool {
			got := Initials(first, "")
			return strings.HasPrefix(first, got) && utf8.RuneCountInString(got) <= 1
		},
		gen.AnyString(),
	))

	properties.Property("missing first name contributes nothing", prop.ForAll(
		func(last string) bool {
			got := Initials("", last)
			return strings.HasPrefix(last, got) && utf8.RuneCountInString(got) <= 1
		},
		gen.AnyString(),
	))

	properties.Property("initials concatenate both parts", prop.ForAll(
		func(first, last string) bool {
			return Initials(first, last) == Initials(first, "")+Initials("", last)
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestNavigationURLProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("www prefix is removed", prop.ForAll(
		func(label, subdomain string) bool {
			apex := label + ".com"
			return NavigationURL("www."+apex, subdomain) == "https://"+subdomain+"."+apex
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("hosts without www are kept", prop.ForAll(
		func(label, subdomain string) bool {
			apex := label + "-x.in"
			return NavigationURL(apex, subdomain) == "https://"+subdomain+"."+apex
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestBuildDirectoryProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9753)

	properties := gopter.NewProperties(parameters)
	svc := NewDirectoryService()

	properties.Property("one card per record in input order", prop.ForAll(
		func(ids []string) bool {
			professionals := make([]model.Professional, len(ids))
			for i, id := range ids {
				professionals[i] = model.Professional{ID: model.ID(id), Subdomain: "s"}
			}

			page := svc.BuildDirectory(professionals, "www.telecarezone.com")
			if len(ids) == 0 {
				return page.Empty && len(page.Cards) == 0
			}
			if page.Empty || len(page.Cards) != len(ids) {
				return false
			}
			for i, id := range ids {
				if page.Cards[i].ID != id {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
