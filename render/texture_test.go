package render

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func rgbaImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestLoadCapacity(t *testing.T) {
	dir := t.TempDir()
	dev := newFakeTextureDevice()
	reg := NewTextureRegistry(dev)

	for i := 0; i < MaxTextureSlots; i++ {
		path := filepath.Join(dir, fmt.Sprintf("tex%d.png", i))
		writePNG(t, path, rgbaImage(2, 2, color.NRGBA{R: byte(i), A: 255}))
		require.NoError(t, reg.Load(path, fmt.Sprintf("tag%d", i)))
	}
	require.Equal(t, MaxTextureSlots, reg.Count())

	// one more valid image must be refused without touching the table
	extra := filepath.Join(dir, "extra.png")
	writePNG(t, extra, rgbaImage(2, 2, color.NRGBA{G: 255, A: 255}))
	err := reg.Load(extra, "extra")
	require.Error(t, err)

	assert.Equal(t, MaxTextureSlots, reg.Count())
	assert.Len(t, dev.uploads, MaxTextureSlots)

	slot, ok := reg.FindSlot("tag0")
	require.True(t, ok)
	assert.Equal(t, 0, slot)

	_, ok = reg.FindSlot("extra")
	assert.False(t, ok)
}

func TestLoadDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	dev := newFakeTextureDevice()
	reg := NewTextureRegistry(dev)

	err := reg.Load(filepath.Join(dir, "missing.png"), "missing")
	require.Error(t, err)
	assert.Equal(t, 0, reg.Count())

	corrupt := filepath.Join(dir, "corrupt.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not an image"), 0o644))
	err = reg.Load(corrupt, "corrupt")
	require.Error(t, err)

	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, dev.uploads)
}

func TestLoadUnsupportedChannels(t *testing.T) {
	dir := t.TempDir()
	dev := newFakeTextureDevice()
	reg := NewTextureRegistry(dev)

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	path := filepath.Join(dir, "gray.png")
	writePNG(t, path, gray)

	err := reg.Load(path, "gray")
	require.Error(t, err)
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, dev.uploads, "nothing should reach the GPU for an unsupported format")
}

func TestLoadJPEGIsThreeChannels(t *testing.T) {
	dir := t.TempDir()
	dev := newFakeTextureDevice()
	reg := NewTextureRegistry(dev)

	path := filepath.Join(dir, "photo.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, rgbaImage(4, 4, color.NRGBA{R: 200, G: 100, B: 50, A: 255}), nil))
	require.NoError(t, f.Close())

	require.NoError(t, reg.Load(path, "photo"))
	require.Len(t, dev.uploads, 1)
	assert.Equal(t, 3, dev.uploads[0].channels)
}

func TestFindMissIsSentinel(t *testing.T) {
	reg := NewTextureRegistry(newFakeTextureDevice())

	_, ok := reg.FindHandle("nope")
	assert.False(t, ok)
	slot, ok := reg.FindSlot("nope")
	assert.False(t, ok)
	assert.Equal(t, -1, slot)

	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	writePNG(t, path, rgbaImage(2, 2, color.NRGBA{A: 255}))
	require.NoError(t, reg.Load(path, "a"))

	// a hit followed by a miss must not leak the hit's result
	_, ok = reg.FindHandle("a")
	require.True(t, ok)
	_, ok = reg.FindHandle("b")
	assert.False(t, ok)
}

func TestDuplicateTagResolvesToFirst(t *testing.T) {
	dir := t.TempDir()
	dev := newFakeTextureDevice()
	reg := NewTextureRegistry(dev)

	for i := 0; i < 2; i++ {
		path := filepath.Join(dir, fmt.Sprintf("dup%d.png", i))
		writePNG(t, path, rgbaImage(2, 2, color.NRGBA{B: byte(100 + i), A: 255}))
		require.NoError(t, reg.Load(path, "dup"))
	}

	slot, ok := reg.FindSlot("dup")
	require.True(t, ok)
	assert.Equal(t, 0, slot)

	handle, ok := reg.FindHandle("dup")
	require.True(t, ok)
	assert.Equal(t, reg.slots[0].Handle, handle)
}

func TestBindAllMatchesSlotIndices(t *testing.T) {
	dir := t.TempDir()
	dev := newFakeTextureDevice()
	reg := NewTextureRegistry(dev)

	for i := 0; i < 3; i++ {
		path := filepath.Join(dir, fmt.Sprintf("b%d.png", i))
		writePNG(t, path, rgbaImage(2, 2, color.NRGBA{A: 255}))
		require.NoError(t, reg.Load(path, fmt.Sprintf("b%d", i)))
	}

	reg.BindAll()
	require.Len(t, dev.bound, 3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, reg.slots[i].Handle, dev.bound[i])
	}
}

func TestReleaseAll(t *testing.T) {
	dir := t.TempDir()
	dev := newFakeTextureDevice()
	reg := NewTextureRegistry(dev)

	path := filepath.Join(dir, "r.png")
	writePNG(t, path, rgbaImage(2, 2, color.NRGBA{A: 255}))
	require.NoError(t, reg.Load(path, "r"))

	handle, ok := reg.FindHandle("r")
	require.True(t, ok)

	reg.ReleaseAll()
	assert.Equal(t, 0, reg.Count())
	assert.Contains(t, dev.released, handle)

	_, ok = reg.FindHandle("r")
	assert.False(t, ok)

	// releasing twice is harmless
	reg.ReleaseAll()
	assert.Len(t, dev.released, 1)
}

func TestDecodeFlipsVertically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flip.png")

	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255}) // top
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255}) // bottom
	writePNG(t, path, img)

	pixels, w, h, channels, err := decodeTexture(path)
	require.NoError(t, err)
	assert.Equal(t, 1, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, 4, channels)

	// first row out is the image's bottom row
	assert.Equal(t, byte(0), pixels[0])
	assert.Equal(t, byte(255), pixels[2])
	// second row is the top
	assert.Equal(t, byte(255), pixels[4])
}

func TestLoadUploadFailure(t *testing.T) {
	dir := t.TempDir()
	dev := newFakeTextureDevice()
	dev.fail = true
	reg := NewTextureRegistry(dev)

	path := filepath.Join(dir, "u.png")
	writePNG(t, path, rgbaImage(2, 2, color.NRGBA{A: 255}))

	err := reg.Load(path, "u")
	require.Error(t, err)
	assert.Equal(t, 0, reg.Count())
}
