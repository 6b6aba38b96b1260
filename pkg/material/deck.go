package material

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/yaptide/materials/errors"
)

// MediumID is number of medium card in a deck.
type MediumID int

const (
	maxDeckMedia      = 100
	maxMediumElements = 13
)

// Medium is material with its card number.
type Medium struct {
	ID       MediumID
	Material *Material
}

// Deck contains numbered materials, which are easily serializable as medium cards.
type Deck struct {
	Media []Medium
}

// NewDeck numbers materials starting from 1, materials without optical properties
// go first. Within each group materials are sorted by name.
func NewDeck(materials ...*Material) (*Deck, map[string]MediumID, error) {
	if len(materials) > maxDeckMedia {
		return nil, nil, errors.GeneralError(
			errors.ErrExportLimit,
			"only %d distinct materials are permitted in deck (%d > %d)",
			maxDeckMedia, len(materials), maxDeckMedia,
		)
	}

	plain := []*Material{}
	withTable := []*Material{}
	seen := map[string]bool{}
	for _, m := range materials {
		if seen[m.Name] {
			return nil, nil, errors.MaterialError(m.Name, errors.ErrDuplicateMaterial, "material exported twice")
		}
		seen[m.Name] = true
		if len(m.Components) > maxMediumElements {
			return nil, nil, errors.MaterialError(
				m.Name, errors.ErrExportLimit,
				"only %d elements are permitted in medium (%d > %d)",
				maxMediumElements, len(m.Components), maxMediumElements,
			)
		}
		if m.Properties != nil {
			withTable = append(withTable, m)
		} else {
			plain = append(plain, m)
		}
	}

	deck := &Deck{Media: make([]Medium, 0, len(materials))}
	nameToID := map[string]MediumID{}
	nextID := MediumID(1)
	for _, group := range [][]*Material{plain, withTable} {
		sort.SliceStable(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		for _, m := range group {
			deck.Media = append(deck.Media, Medium{ID: nextID, Material: m})
			nameToID[m.Name] = nextID
			nextID++
		}
	}
	return deck, nameToID, nil
}

// Serialize writes MEDIUM <id> <name> ... END block for every medium.
func (d *Deck) Serialize() string {
	writer := &bytes.Buffer{}
	for _, medium := range d.Media {
		serializeMaterial(writer, fmt.Sprintf("%d %s", medium.ID, medium.Material.Name), medium.Material)
	}
	return writer.String()
}
