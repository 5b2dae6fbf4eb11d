package plant

import (
	"fmt"
	"strconv"

	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
)

// plantToHash converts a domain Plant to a map for HSET.
func plantToHash(p domplant.Plant) map[string]string {
	return map[string]string{
		"id":           strconv.FormatInt(p.ID(), 10),
		"nom_francais": p.NomFrancais(),
		"nom_latin":    p.NomLatin(),
		"exposition":   p.Exposition(),
		"type_plante":  p.TypePlante(),
		"prix":         p.Prix(),
		"description":  p.Description(),
		"icon":         p.Icon(),
		"featured":     strconv.FormatBool(p.Featured()),
		"created_at":   strconv.FormatInt(p.CreatedAt(), 10),
	}
}

// plantFromHash hydrates a domain Plant from an HGETALL result map.
func plantFromHash(m map[string]string) (domplant.Plant, error) {
	id, err := strconv.ParseInt(m["id"], 10, 64)
	if err != nil {
		return domplant.Plant{}, fmt.Errorf("invalid id: %w", err)
	}

	createdAt := int64(0)
	if s := m["created_at"]; s != "" {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			createdAt = parsed
		}
	}

	featured := false
	if s := m["featured"]; s != "" {
		featured, _ = strconv.ParseBool(s)
	}

	return domplant.Reconstruct(id, domplant.Attrs{
		NomFrancais: m["nom_francais"],
		NomLatin:    m["nom_latin"],
		Exposition:  m["exposition"],
		TypePlante:  m["type_plante"],
		Prix:        m["prix"],
		Description: m["description"],
		Icon:        m["icon"],
		Featured:    featured,
	}, createdAt), nil
}
