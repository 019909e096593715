package models

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Species enumerates the animal kinds the diet engine knows about. The
// values match the `cattleType` keys used on the wire.
type Species string

const (
	SpeciesCow     Species = "Cow"
	SpeciesBuffalo Species = "Buffalo"
	SpeciesGoat    Species = "Goat"
)

// AllSpecies lists the supported species in display order.
var AllSpecies = []Species{SpeciesCow, SpeciesBuffalo, SpeciesGoat}

// HealthState enumerates the health/physiological states of an animal.
// Sick and Pregnant are mutually exclusive by construction.
type HealthState string

const (
	HealthHealthy  HealthState = "Healthy"
	HealthSick     HealthState = "Sick"
	HealthPregnant HealthState = "Pregnant"
)

// AllHealthStates lists the supported health states in display order.
var AllHealthStates = []HealthState{HealthHealthy, HealthSick, HealthPregnant}

// ErrIncompleteProfile indicates the transport encoding is missing (or holds
// unrecognized values for) one of the fields the engine cannot run without.
var ErrIncompleteProfile = errors.New("incomplete animal profile")

// AnimalProfile is the engine input: the farmer's answers from the intake
// form. Name, Contact, Lang, BreedRegion, Age and Tagged are informational
// and never enter the computation.
type AnimalProfile struct {
	Species        Species     `json:"cattleType"`
	Breed          string      `json:"breed"`
	WeightCategory string      `json:"weightCategory"`
	AgeYears       int         `json:"age"`
	HealthState    HealthState `json:"healthStatus"`
	Tagged         bool        `json:"tagged"`
	Name           string      `json:"name,omitempty"`
	Contact        string      `json:"contact,omitempty"`
	Lang           string      `json:"lang,omitempty"`
	BreedRegion    string      `json:"breedRegion,omitempty"`
}

// ParseSpecies maps a wire value onto a Species constant.
func ParseSpecies(value string) (Species, bool) {
	for _, s := range AllSpecies {
		if strings.EqualFold(value, string(s)) {
			return s, true
		}
	}
	return "", false
}

// ParseHealthState maps a wire value onto a HealthState constant.
func ParseHealthState(value string) (HealthState, bool) {
	for _, h := range AllHealthStates {
		if strings.EqualFold(value, string(h)) {
			return h, true
		}
	}
	return "", false
}

// ParseAnimalProfile decodes the query-string transport produced by the
// intake form. Species, breed, weight category and health state must all be
// present and recognized; everything else is optional. A missing or
// unrecognized required field yields ErrIncompleteProfile wrapped with the
// offending field names, never a defaulted profile.
func ParseAnimalProfile(values url.Values) (AnimalProfile, error) {
	var missing []string

	profile := AnimalProfile{
		Breed:          strings.TrimSpace(values.Get("breed")),
		WeightCategory: strings.TrimSpace(values.Get("weightCategory")),
		Name:           strings.TrimSpace(values.Get("name")),
		Contact:        strings.TrimSpace(values.Get("contact")),
		Lang:           strings.TrimSpace(values.Get("lang")),
		BreedRegion:    strings.TrimSpace(values.Get("breedRegion")),
	}

	species, ok := ParseSpecies(strings.TrimSpace(values.Get("cattleType")))
	if !ok {
		missing = append(missing, "cattleType")
	}
	profile.Species = species

	if profile.Breed == "" {
		missing = append(missing, "breed")
	}
	if profile.WeightCategory == "" {
		missing = append(missing, "weightCategory")
	}

	health, ok := ParseHealthState(strings.TrimSpace(values.Get("healthStatus")))
	if !ok {
		missing = append(missing, "healthStatus")
	}
	profile.HealthState = health

	if len(missing) > 0 {
		return AnimalProfile{}, fmt.Errorf("%w: missing or unrecognized %s", ErrIncompleteProfile, strings.Join(missing, ", "))
	}

	if age := strings.TrimSpace(values.Get("age")); age != "" {
		if parsed, err := strconv.Atoi(age); err == nil && parsed >= 0 {
			profile.AgeYears = parsed
		}
	}
	profile.Tagged = strings.EqualFold(strings.TrimSpace(values.Get("tagged")), "yes")

	return profile, nil
}

// QueryValues encodes the profile back into its transport representation so
// the result page link reproduces every field exactly.
func (p AnimalProfile) QueryValues() url.Values {
	values := url.Values{}
	values.Set("cattleType", string(p.Species))
	values.Set("breed", p.Breed)
	values.Set("weightCategory", p.WeightCategory)
	values.Set("age", strconv.Itoa(p.AgeYears))
	values.Set("healthStatus", string(p.HealthState))
	if p.Tagged {
		values.Set("tagged", "Yes")
	} else {
		values.Set("tagged", "No")
	}
	if p.Name != "" {
		values.Set("name", p.Name)
	}
	if p.Contact != "" {
		values.Set("contact", p.Contact)
	}
	if p.Lang != "" {
		values.Set("lang", p.Lang)
	}
	if p.BreedRegion != "" {
		values.Set("breedRegion", p.BreedRegion)
	}
	return values
}
