package world

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	goerrors "github.com/pixil98/go-errors"
	"github.com/sirupsen/logrus"

	"nusantara/internal/kingdoms"
)

// ErrUnknownZone is returned for zone ids with no layout.
var ErrUnknownZone = errors.New("unknown zone")

// Provider builds zones on demand.
type Provider interface {
	Has(zoneID string) bool
	LoadZone(zoneID string) (*Zone, error)
}

// FileProvider reads zone layouts from <dir>/<id>.json in fsys.
type FileProvider struct {
	fsys    fs.FS
	dir     string
	catalog *kingdoms.Catalog
	log     logrus.FieldLogger
	ids     map[string]bool
}

func NewFileProvider(fsys fs.FS, dir string, catalog *kingdoms.Catalog, log logrus.FieldLogger) (*FileProvider, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	p := &FileProvider{
		fsys:    fsys,
		dir:     dir,
		catalog: catalog,
		log:     log,
		ids:     make(map[string]bool),
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		p.ids[strings.TrimSuffix(e.Name(), ".json")] = true
	}
	return p, nil
}

func (p *FileProvider) Has(zoneID string) bool {
	return p.ids[zoneID]
}

// IDs returns the known zone ids, sorted.
func (p *FileProvider) IDs() []string {
	ids := make([]string, 0, len(p.ids))
	for id := range p.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadZone parses, validates and instantiates a zone.
func (p *FileProvider) LoadZone(zoneID string) (*Zone, error) {
	if !p.Has(zoneID) {
		return nil, fmt.Errorf("load %q: %w", zoneID, ErrUnknownZone)
	}
	zf, err := p.read(zoneID)
	if err != nil {
		return nil, err
	}

	z := zf.Build(p.catalog)
	p.log.WithFields(logrus.Fields{
		"zone":     zoneID,
		"entities": len(z.Entities),
		"scenery":  len(z.Scenery),
	}).Debug("Zone built")
	return z, nil
}

func (p *FileProvider) read(zoneID string) (*ZoneFile, error) {
	data, err := fs.ReadFile(p.fsys, path.Join(p.dir, zoneID+".json"))
	if err != nil {
		return nil, fmt.Errorf("read zone %q: %w", zoneID, err)
	}
	zf, err := ParseZoneFile(data)
	if err != nil {
		return nil, fmt.Errorf("zone %q: %w", zoneID, err)
	}
	if zf.ID != zoneID {
		return nil, fmt.Errorf("zone %q: file declares id %q", zoneID, zf.ID)
	}
	if err := zf.Validate(p.catalog); err != nil {
		return nil, fmt.Errorf("validate zone %q: %w", zoneID, err)
	}
	return zf, nil
}

// ValidateAll checks every zone layout without building it, and that every
// kingdom in the catalog has a layout.
func (p *FileProvider) ValidateAll() error {
	el := goerrors.NewErrorList()
	if !p.Has(kingdoms.LobbyID) {
		el.Add(fmt.Errorf("missing %s layout", kingdoms.LobbyID))
	}
	for _, id := range p.catalog.IDs() {
		if !p.Has(id) {
			el.Add(fmt.Errorf("kingdom %q has no layout", id))
		}
	}
	for _, id := range p.IDs() {
		if _, err := p.read(id); err != nil {
			el.Add(err)
		}
	}
	return el.Err()
}
