// Package kingdoms holds the educational content for each zone: the kingdom
// summary shown on entry, its quiz, and its collectible items.
package kingdoms

import (
	"fmt"
	"io/fs"
	"regexp"

	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"

	"nusantara/internal/collectibles"
)

// LobbyID is the hub zone. It has no kingdom entry.
const LobbyID = "lobby"

var idPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

type Quiz struct {
	Question    string   `yaml:"question"`
	Options     []string `yaml:"options"`
	Correct     int      `yaml:"correct"`
	Explanation string   `yaml:"explanation"`
}

type Collectible struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type Kingdom struct {
	ID           string        `yaml:"id"`
	Name         string        `yaml:"name"`
	Period       string        `yaml:"period"`
	Location     string        `yaml:"location"`
	Description  string        `yaml:"description"`
	FunFact      string        `yaml:"fun_fact"`
	Color        string        `yaml:"color"`
	SymbolColor  string        `yaml:"symbol_color"`
	Quiz         Quiz          `yaml:"quiz"`
	Collectibles []Collectible `yaml:"collectibles"`
}

// Catalog is the ordered set of kingdoms.
type Catalog struct {
	Kingdoms []Kingdom `yaml:"kingdoms"`
	byID     map[string]int
}

// Load reads and validates the catalog at path inside fsys.
func Load(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	c.byID = make(map[string]int, len(c.Kingdoms))
	for i, k := range c.Kingdoms {
		c.byID[k.ID] = i
	}
	return &c, nil
}

// Validate reports every problem in the catalog at once.
func (c *Catalog) Validate() error {
	el := errors.NewErrorList()
	if len(c.Kingdoms) == 0 {
		el.Add(fmt.Errorf("catalog has no kingdoms"))
	}

	seen := make(map[string]bool)
	items := make(map[string]bool)
	for i, k := range c.Kingdoms {
		if !idPattern.MatchString(k.ID) {
			el.Add(fmt.Errorf("kingdom %d: id %q must be lowercase alphanumeric", i, k.ID))
		}
		if k.ID == LobbyID {
			el.Add(fmt.Errorf("kingdom %d: id %q is reserved", i, k.ID))
		}
		if seen[k.ID] {
			el.Add(fmt.Errorf("kingdom %q: duplicate id", k.ID))
		}
		seen[k.ID] = true
		if k.Name == "" {
			el.Add(fmt.Errorf("kingdom %q: name must be set", k.ID))
		}
		el.Add(k.Quiz.validate(k.ID))
		for _, item := range k.Collectibles {
			if item.ID == "" {
				el.Add(fmt.Errorf("kingdom %q: collectible id must be set", k.ID))
				continue
			}
			if items[item.ID] {
				el.Add(fmt.Errorf("kingdom %q: duplicate collectible %q", k.ID, item.ID))
			}
			items[item.ID] = true
		}
	}
	return el.Err()
}

func (q Quiz) validate(kingdomID string) error {
	el := errors.NewErrorList()
	if q.Question == "" {
		el.Add(fmt.Errorf("kingdom %q: quiz question must be set", kingdomID))
	}
	if len(q.Options) < 2 {
		el.Add(fmt.Errorf("kingdom %q: quiz needs at least two options", kingdomID))
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		el.Add(fmt.Errorf("kingdom %q: quiz correct index %d out of range", kingdomID, q.Correct))
	}
	return el.Err()
}

// Get looks up a kingdom by id.
func (c *Catalog) Get(id string) (Kingdom, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Kingdom{}, false
	}
	return c.Kingdoms[i], true
}

// IDs returns kingdom ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Kingdoms))
	for _, k := range c.Kingdoms {
		ids = append(ids, k.ID)
	}
	return ids
}

// Seed registers every kingdom's collectibles in the store.
func (c *Catalog) Seed(store *collectibles.Store) error {
	for _, k := range c.Kingdoms {
		recs := make([]collectibles.Record, 0, len(k.Collectibles))
		for _, item := range k.Collectibles {
			recs = append(recs, collectibles.Record{ID: item.ID, Name: item.Name, Icon: item.Icon})
		}
		if err := store.Add(k.ID, recs...); err != nil {
			return fmt.Errorf("seed %s: %w", k.ID, err)
		}
	}
	return nil
}
