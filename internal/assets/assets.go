package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var manager *Manager

type Manager struct {
	root     string
	textures map[string]rl.Texture2D
	missing  map[string]bool
}

// Color name mapping for zone files
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// ParseColor accepts a color name or a hex value written as #RRGGBB,
// #RRGGBBAA or 0xRRGGBB.
func ParseColor(s string) (rl.Color, error) {
	if c, ok := colorByName[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) != 6 && len(hex) != 8 {
		return rl.Color{}, fmt.Errorf("color %q: unknown name or malformed hex", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// LookupColor returns a raylib color from a name or hex string, or white
// when it cannot be parsed.
func LookupColor(s string) rl.Color {
	c, err := ParseColor(s)
	if err != nil {
		return rl.White
	}
	return c
}

// Init sets the directory that image paths are resolved against.
func Init(root string) {
	manager = &Manager{
		root:     root,
		textures: make(map[string]rl.Texture2D),
		missing:  make(map[string]bool),
	}
}

// Resolve maps a content image path such as /images/artifacts/yupa.jpg to
// a file under the image root.
func Resolve(path string) string {
	root := "."
	if manager != nil {
		root = manager.root
	}
	return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(path, "/")))
}

// Exists reports whether an image file is present for path.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(Resolve(path))
	return err == nil && !info.IsDir()
}

// LoadTexture returns a cached texture for path. ok is false when the image
// is missing, in which case callers should leave the image out.
func LoadTexture(path string) (rl.Texture2D, bool) {
	if manager == nil {
		Init(".")
	}

	if texture, exists := manager.textures[path]; exists {
		return texture, true
	}
	if manager.missing[path] || !Exists(path) {
		manager.missing[path] = true
		return rl.Texture2D{}, false
	}

	texture := rl.LoadTexture(Resolve(path))
	if texture.ID == 0 {
		manager.missing[path] = true
		return rl.Texture2D{}, false
	}
	manager.textures[path] = texture
	return texture, true
}

func Unload() {
	if manager == nil {
		return
	}

	for _, texture := range manager.textures {
		rl.UnloadTexture(texture)
	}

	manager.textures = make(map[string]rl.Texture2D)
	manager.missing = make(map[string]bool)
}
