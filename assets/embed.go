// Package assets holds the zone layouts and the kingdom catalog that ship
// inside the binary.
package assets

import "embed"

//go:embed kingdoms.yaml zones/*.json
var FS embed.FS

// KingdomsFile is the catalog path inside FS.
const KingdomsFile = "kingdoms.yaml"

// ZonesDir is the directory of zone layouts inside FS.
const ZonesDir = "zones"
