package plant

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultIcon is used when a record carries no icon of its own.
const DefaultIcon = "🌿"

// Plant is a single catalog record (immutable value object).
// The French name is the only mandatory field; identity is the
// insertion-order ID assigned by the repository.
type Plant struct {
	id           int64
	nomFrancais  string
	nomLatin     string
	exposition   string
	typePlante   string
	prix         string
	description  string
	icon         string
	featured     bool
	createdAt    int64
}

// Attrs carries the raw attributes for New and Reconstruct.
type Attrs struct {
	NomFrancais string
	NomLatin    string
	Exposition  string
	TypePlante  string
	Prix        string
	Description string
	Icon        string
	Featured    bool
}

// New validates and creates a Plant. The French name must be non-empty
// after trimming; the icon falls back to DefaultIcon.
func New(a Attrs) (Plant, error) {
	name := strings.TrimSpace(a.NomFrancais)
	if name == "" {
		return Plant{}, fmt.Errorf("nom_francais is required")
	}
	icon := a.Icon
	if icon == "" {
		icon = DefaultIcon
	}
	return Plant{
		nomFrancais: name,
		nomLatin:    strings.TrimSpace(a.NomLatin),
		exposition:  a.Exposition,
		typePlante:  a.TypePlante,
		prix:        a.Prix,
		description: a.Description,
		icon:        icon,
		featured:    a.Featured,
		createdAt:   time.Now().UnixMilli(),
	}, nil
}

// Reconstruct creates a Plant without validation (storage hydration).
func Reconstruct(id int64, a Attrs, createdAt int64) Plant {
	return Plant{
		id:          id,
		nomFrancais: a.NomFrancais,
		nomLatin:    a.NomLatin,
		exposition:  a.Exposition,
		typePlante:  a.TypePlante,
		prix:        a.Prix,
		description: a.Description,
		icon:        a.Icon,
		featured:    a.Featured,
		createdAt:   createdAt,
	}
}

// WithID returns a copy carrying the repository-assigned ID.
func (p Plant) WithID(id int64) Plant {
	p.id = id
	return p
}

// ID returns the insertion-order identifier (0 before the first Save).
func (p Plant) ID() int64 { return p.id }

// NomFrancais returns the French name.
func (p Plant) NomFrancais() string { return p.nomFrancais }

// NomLatin returns the Latin name (may be empty).
func (p Plant) NomLatin() string { return p.nomLatin }

// Exposition returns the light exposure.
func (p Plant) Exposition() string { return p.exposition }

// TypePlante returns the plant type (vivace, arbuste, ...).
func (p Plant) TypePlante() string { return p.typePlante }

// Prix returns the display price.
func (p Plant) Prix() string { return p.prix }

// Description returns the free-form description.
func (p Plant) Description() string { return p.description }

// Icon returns the display icon.
func (p Plant) Icon() string { return p.icon }

// Featured reports whether the record is part of the suggested subset.
func (p Plant) Featured() bool { return p.featured }

// CreatedAt returns the creation timestamp (unix millis).
func (p Plant) CreatedAt() int64 { return p.createdAt }

var (
	cultivarRegex = regexp.MustCompile(`['"].*?['"]`)
	rankRegex     = regexp.MustCompile(`(?i)\b(subsp\.|var\.|f\.|cv\.|×)\b.*$`)
)

// NormalizedLatin reduces the Latin name to lowercase genus+species for
// matching: cultivar names in quotes and infraspecific rank markers
// (subsp., var., f., cv., ×) are stripped.
//
//	"Lavandula angustifolia 'Hidcote'"  -> "lavandula angustifolia"
//	"Rosa 'Pierre de Ronsard'"          -> "rosa"
//	"Olea europaea subsp. europaea"     -> "olea europaea"
func (p Plant) NormalizedLatin() string {
	return NormalizeLatin(p.nomLatin)
}

// NormalizeLatin applies the genus+species normalization to any Latin name.
func NormalizeLatin(nomLatin string) string {
	if nomLatin == "" {
		return ""
	}
	cleaned := cultivarRegex.ReplaceAllString(nomLatin, "")
	cleaned = rankRegex.ReplaceAllString(cleaned, "")

	parts := strings.Fields(cleaned)
	switch {
	case len(parts) >= 2:
		return strings.ToLower(parts[0] + " " + parts[1])
	case len(parts) == 1:
		return strings.ToLower(parts[0])
	default:
		return ""
	}
}

// SameAs reports whether other denotes the same plant: equal French
// names and equal normalized Latin names. Used by the repository to
// dedupe on Save.
func (p Plant) SameAs(other Plant) bool {
	return p.nomFrancais == other.nomFrancais &&
		p.NormalizedLatin() == other.NormalizedLatin()
}
