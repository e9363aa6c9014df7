package pegdrop

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ErrAssetNotFound is wrapped by every Assets lookup that finds no file.
var ErrAssetNotFound = errors.New("pegdrop: asset not found")

// Assets loads images, fonts and particle descriptors by name from a file
// system. Names carry no extension: Image("background") reads
// "background.png", Face("Chalkduster", 32) reads "Chalkduster.ttf", and
// Emitter("FireParticles") reads "FireParticles.json".
//
// Loaded images and font sources are cached. A nil file system is valid and
// misses on every lookup.
type Assets struct {
	fsys    fs.FS
	images  map[string]*ebiten.Image
	sources map[string]*text.GoTextFaceSource
}

// NewAssets creates an asset loader over fsys.
func NewAssets(fsys fs.FS) *Assets {
	return &Assets{
		fsys:    fsys,
		images:  make(map[string]*ebiten.Image),
		sources: make(map[string]*text.GoTextFaceSource),
	}
}

// find returns the first candidate path present in the file system.
func (a *Assets) find(name string, exts ...string) (string, error) {
	if a == nil || a.fsys == nil {
		return "", fmt.Errorf("%s: %w", name, ErrAssetNotFound)
	}
	for _, ext := range exts {
		path := name + ext
		if _, err := fs.Stat(a.fsys, path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrAssetNotFound)
}

// Image loads a PNG image by name.
func (a *Assets) Image(name string) (*ebiten.Image, error) {
	if img, ok := a.images[name]; ok {
		return img, nil
	}
	path, err := a.find(name, ".png")
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromFileSystem(a.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	a.images[name] = img
	return img, nil
}

// Face loads a TrueType or OpenType font by name at the given size.
func (a *Assets) Face(name string, size float64) (*text.GoTextFace, error) {
	src, ok := a.sources[name]
	if !ok {
		path, err := a.find(name, ".ttf", ".otf")
		if err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(a.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		src, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		a.sources[name] = src
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// Emitter loads a JSON particle descriptor by name.
func (a *Assets) Emitter(name string) (EmitterConfig, error) {
	path, err := a.find(name, ".json")
	if err != nil {
		return EmitterConfig{}, err
	}
	data, err := fs.ReadFile(a.fsys, path)
	if err != nil {
		return EmitterConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg EmitterConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return EmitterConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// faceOrDefault loads name, falling back to the built-in face when the font
// is missing or unreadable.
func (s *Scene) faceOrDefault(name string, size float64) *text.GoTextFace {
	face, err := s.assets.Face(name, size)
	if err == nil {
		return face
	}
	s.debugf("font %s: %v", name, err)
	face, err = DefaultFace(size)
	if err != nil {
		s.debugf("default font: %v", err)
		return nil
	}
	return face
}
