package models

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Restriction identifies one of the dietary-restriction flags
type Restriction int

const (
	Vegetarian Restriction = iota
	Vegan
	GlutenFree
	DairyFree
)

// AllRestrictions lists every restriction in display and note order
var AllRestrictions = []Restriction{Vegetarian, Vegan, GlutenFree, DairyFree}

// Key returns the stable identifier used in config and JSON output
func (r Restriction) Key() string {
	switch r {
	case Vegetarian:
		return "vegetarian"
	case Vegan:
		return "vegan"
	case GlutenFree:
		return "glutenFree"
	case DairyFree:
		return "dairyFree"
	default:
		return "unknown"
	}
}

// Label returns the checkbox label: the key with its first character upper-cased
func (r Restriction) Label() string {
	return CapitalizeFirst(r.Key())
}

// Phrase returns the wording used in the recipe note line
func (r Restriction) Phrase() string {
	switch r {
	case Vegetarian:
		return "vegetarian-friendly"
	case Vegan:
		return "vegan-friendly"
	case GlutenFree:
		return "gluten-free"
	case DairyFree:
		return "dairy-free"
	default:
		return ""
	}
}

func (r Restriction) String() string {
	return r.Key()
}

// ParseRestriction maps a user supplied name to a Restriction.
// Matching ignores case and accepts kebab-case forms like "gluten-free".
func ParseRestriction(name string) (Restriction, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))
	for _, r := range AllRestrictions {
		if strings.ToLower(r.Key()) == normalized {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRestriction, name)
}

// DietaryRestrictions holds the four independent flags.
// No flag implies another; vegan does not set vegetarian.
type DietaryRestrictions struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"glutenFree"`
	DairyFree  bool `json:"dairyFree"`
}

// Enabled reports whether the given flag is set
func (d DietaryRestrictions) Enabled(r Restriction) bool {
	switch r {
	case Vegetarian:
		return d.Vegetarian
	case Vegan:
		return d.Vegan
	case GlutenFree:
		return d.GlutenFree
	case DairyFree:
		return d.DairyFree
	default:
		return false
	}
}

// Set assigns a single flag
func (d *DietaryRestrictions) Set(r Restriction, value bool) {
	switch r {
	case Vegetarian:
		d.Vegetarian = value
	case Vegan:
		d.Vegan = value
	case GlutenFree:
		d.GlutenFree = value
	case DairyFree:
		d.DairyFree = value
	}
}

// Toggle flips a single flag and leaves the others alone
func (d *DietaryRestrictions) Toggle(r Restriction) {
	d.Set(r, !d.Enabled(r))
}

// Active returns the set flags in fixed order
func (d DietaryRestrictions) Active() []Restriction {
	var active []Restriction
	for _, r := range AllRestrictions {
		if d.Enabled(r) {
			active = append(active, r)
		}
	}
	return active
}

// CapitalizeFirst upper-cases the first character of s
func CapitalizeFirst(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
