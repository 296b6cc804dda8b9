// Package elements is the periodic-table subset shown by the explorer.
//
// The table is embedded as YAML and decoded once on first use.
package elements

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed elements.yaml
var elementsYAML []byte

// ErrNotFound is returned when no element matches a lookup.
var ErrNotFound = errors.New("elements: not found")

// Element is one row of the periodic table.
type Element struct {
	Name                  string `yaml:"name" json:"name"`
	Symbol                string `yaml:"symbol" json:"symbol"`
	Number                int    `yaml:"number" json:"number"`
	Mass                  string `yaml:"mass" json:"mass"`
	Category              string `yaml:"category" json:"category"`
	Period                int    `yaml:"period" json:"period"`
	Group                 *int   `yaml:"group" json:"group,omitempty"`
	Block                 string `yaml:"block" json:"block"`
	ElectronConfiguration string `yaml:"electron_configuration" json:"electron_configuration"`
	DiscoveredBy          string `yaml:"discovered_by,omitempty" json:"discovered_by,omitempty"`
	YearDiscovered        string `yaml:"year_discovered,omitempty" json:"year_discovered,omitempty"`
	Description           string `yaml:"description" json:"description"`
}

// Catalog indexes elements by symbol and atomic number.
type Catalog struct {
	list     []Element
	bySymbol map[string]int
	byNumber map[int]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(elementsYAML)
	})
	return defaultCatalog, defaultErr
}

// Parse decodes a YAML list of elements.
func Parse(data []byte) (*Catalog, error) {
	var list []Element
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode elements: %w", err)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Number < list[j].Number })

	c := &Catalog{
		list:     list,
		bySymbol: make(map[string]int, len(list)),
		byNumber: make(map[int]int, len(list)),
	}
	for i, e := range list {
		if e.Number <= 0 || e.Symbol == "" {
			return nil, fmt.Errorf("element %q: missing number or symbol", e.Name)
		}
		key := strings.ToLower(e.Symbol)
		if _, dup := c.bySymbol[key]; dup {
			return nil, fmt.Errorf("duplicate symbol %s", e.Symbol)
		}
		if _, dup := c.byNumber[e.Number]; dup {
			return nil, fmt.Errorf("duplicate atomic number %d", e.Number)
		}
		c.bySymbol[key] = i
		c.byNumber[e.Number] = i
	}
	return c, nil
}

// All returns the elements sorted by atomic number.
func (c *Catalog) All() []Element {
	out := make([]Element, len(c.list))
	copy(out, c.list)
	return out
}

// BySymbol looks up an element ignoring case.
func (c *Catalog) BySymbol(symbol string) (Element, error) {
	i, ok := c.bySymbol[strings.ToLower(symbol)]
	if !ok {
		return Element{}, fmt.Errorf("symbol %q: %w", symbol, ErrNotFound)
	}
	return c.list[i], nil
}

// ByNumber looks up an element by atomic number.
func (c *Catalog) ByNumber(z int) (Element, error) {
	i, ok := c.byNumber[z]
	if !ok {
		return Element{}, fmt.Errorf("atomic number %d: %w", z, ErrNotFound)
	}
	return c.list[i], nil
}

// ByPosition finds the element at a period and group of the table.
func (c *Catalog) ByPosition(period, group int) (Element, error) {
	for _, e := range c.list {
		if e.Period == period && e.Group != nil && *e.Group == group {
			return e, nil
		}
	}
	return Element{}, fmt.Errorf("period %d group %d: %w", period, group, ErrNotFound)
}

// Lookup accepts either a symbol or an atomic number.
func (c *Catalog) Lookup(key string) (Element, error) {
	if z, err := strconv.Atoi(key); err == nil {
		return c.ByNumber(z)
	}
	return c.BySymbol(key)
}
