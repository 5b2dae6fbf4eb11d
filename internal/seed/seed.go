// Package seed embeds the reference catalog the store is populated
// with at process start.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	domplant "github.com/denistssx-code/botanus/internal/domain/plant"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Plants []seedPlant `yaml:"plants"`
}

type seedPlant struct {
	NomFrancais string `yaml:"nom_francais"`
	NomLatin    string `yaml:"nom_latin"`
	Exposition  string `yaml:"exposition"`
	TypePlante  string `yaml:"type_plante"`
	Prix        string `yaml:"prix"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Featured    bool   `yaml:"featured"`
}

// Plants parses the embedded catalog and validates every record. The
// returned order is the file order, which becomes store order.
func Plants() ([]domplant.Plant, error) {
	var f seedFile
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}

	plants := make([]domplant.Plant, 0, len(f.Plants))
	for i, sp := range f.Plants {
		p, err := domplant.New(domplant.Attrs{
			NomFrancais: sp.NomFrancais,
			NomLatin:    sp.NomLatin,
			Exposition:  sp.Exposition,
			TypePlante:  sp.TypePlante,
			Prix:        sp.Prix,
			Description: sp.Description,
			Icon:        sp.Icon,
			Featured:    sp.Featured,
		})
		if err != nil {
			return nil, fmt.Errorf("seed plant %d: %w", i, err)
		}
		plants = append(plants, p)
	}
	return plants, nil
}
