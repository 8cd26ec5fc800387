package fleet

import (
	"encoding/json"
	"fmt"
)

// ShipClass is one entry of the ship catalog.
type ShipClass struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
	Color  string `json:"color"` // palette name, see render.ColorByName
}

// Catalog is the ordered list of ship classes placed one per round.
type Catalog struct {
	Name    string      `json:"name"`
	Classes []ShipClass `json:"classes"`
}

// LoadCatalog parses a Catalog from JSON bytes.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("catalog %q: %w", c.Name, err)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Classes) == 0 {
		return fmt.Errorf("no ship classes")
	}
	for i, sc := range c.Classes {
		if sc.Name == "" {
			return fmt.Errorf("class %d has no name", i)
		}
		if sc.Length < 1 || sc.Length > GridSize {
			return fmt.Errorf("class %s: length %d outside 1..%d", sc.Name, sc.Length, GridSize)
		}
	}
	return nil
}

// Len returns the number of ship classes.
func (c *Catalog) Len() int { return len(c.Classes) }

// Class returns the class at index i. ok is false past the end of the table.
func (c *Catalog) Class(i int) (ShipClass, bool) {
	if i < 0 || i >= len(c.Classes) {
		return ShipClass{}, false
	}
	return c.Classes[i], true
}
