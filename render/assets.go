package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/patrickmn/go-cache"
	"golang.org/x/image/font/opentype"
)

// Rendering errors. IO errors indicate a deployment defect (a configured file
// is missing or unreadable); decode and parse errors indicate a bad asset.
var (
	ErrImageRead   = errors.New("render: base image could not be read")
	ErrImageDecode = errors.New("render: base image is not a supported format")
	ErrFontRead    = errors.New("render: font file could not be read")
	ErrFontParse   = errors.New("render: font file is invalid")
)

// AssetCache holds decoded base images and parsed fonts keyed by path.
// Entries never expire; the slot table is fixed at startup, so the working
// set is bounded by the configuration. Cached values are shared read-only
// handles - renders always copy pixels before drawing.
type AssetCache struct {
	fonts  *cache.Cache
	images *cache.Cache
}

// NewAssetCache creates an empty asset cache.
func NewAssetCache() *AssetCache {
	return &AssetCache{
		fonts:  cache.New(cache.NoExpiration, 0),
		images: cache.New(cache.NoExpiration, 0),
	}
}

// Font returns the parsed font for the given path, loading and caching it on
// first use.
func (c *AssetCache) Font(path string) (*opentype.Font, error) {
	if cached, ok := c.fonts.Get(path); ok {
		return cached.(*opentype.Font), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontRead, path, err)
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontParse, path, err)
	}

	c.fonts.Set(path, fnt, cache.NoExpiration)
	return fnt, nil
}

// Image returns the decoded base image for the given path, loading and
// caching it on first use. Callers must not mutate the returned image.
func (c *AssetCache) Image(path string) (image.Image, error) {
	if cached, ok := c.images.Get(path); ok {
		return cached.(image.Image), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageRead, path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, err)
	}

	c.images.Set(path, img, cache.NoExpiration)
	return img, nil
}
