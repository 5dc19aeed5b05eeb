package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.uber.org/zap"

	"github.com/tabletop3d/tabletop/logger"
)

// MaxTextureSlots bounds the registry. Slot indices double as GL texture
// unit numbers, so the table must never grow past what the hardware
// guarantees.
const MaxTextureSlots = 16

type TextureSlot struct {
	Tag    string
	Handle uint32
}

// TextureDevice is the GPU side of the registry: upload decoded pixels,
// bind a handle to a texture unit, release handles. GLTextureDevice is the
// real one; tests substitute a fake.
type TextureDevice interface {
	Upload(pixels []byte, width, height, channels int) (uint32, error)
	Bind(unit int, handle uint32)
	Release(handles []uint32)
}

// TextureRegistry maps tags to uploaded textures. A slot's index is its
// insertion position and stays stable for the registry's lifetime; lookups
// are linear scans with first-match-wins, so duplicate tags resolve to the
// earliest insertion.
type TextureRegistry struct {
	device TextureDevice
	slots  []TextureSlot
}

func NewTextureRegistry(device TextureDevice) *TextureRegistry {
	return &TextureRegistry{device: device}
}

// Load decodes the image at path and registers it under tag in the next
// sequential slot. Failures (capacity, decode, unsupported channel layout,
// upload) leave the registry untouched.
func (r *TextureRegistry) Load(path, tag string) error {
	if len(r.slots) >= MaxTextureSlots {
		logger.Log.Warn("texture limit reached",
			zap.Int("limit", MaxTextureSlots),
			zap.String("path", path))
		return fmt.Errorf("texture limit (%d) reached, cannot load %s", MaxTextureSlots, path)
	}

	pixels, width, height, channels, err := decodeTexture(path)
	if err != nil {
		logger.Log.Warn("could not load image", zap.String("path", path), zap.Error(err))
		return err
	}

	handle, err := r.device.Upload(pixels, width, height, channels)
	if err != nil {
		logger.Log.Warn("could not upload texture", zap.String("path", path), zap.Error(err))
		return err
	}

	r.slots = append(r.slots, TextureSlot{Tag: tag, Handle: handle})

	logger.Log.Info("loaded texture",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("channels", channels),
		zap.Int("slot", len(r.slots)-1))
	return nil
}

// BindAll binds every slot to the texture unit matching its index.
func (r *TextureRegistry) BindAll() {
	for i, slot := range r.slots {
		r.device.Bind(i, slot.Handle)
	}
}

// FindHandle returns the GPU handle registered under tag. Not found is a
// normal outcome, reported through the bool.
func (r *TextureRegistry) FindHandle(tag string) (uint32, bool) {
	for _, slot := range r.slots {
		if slot.Tag == tag {
			return slot.Handle, true
		}
	}
	return 0, false
}

// FindSlot returns the texture unit index registered under tag.
func (r *TextureRegistry) FindSlot(tag string) (int, bool) {
	for i, slot := range r.slots {
		if slot.Tag == tag {
			return i, true
		}
	}
	return -1, false
}

func (r *TextureRegistry) Count() int {
	return len(r.slots)
}

// ReleaseAll frees every GPU texture and empties the registry.
func (r *TextureRegistry) ReleaseAll() {
	if len(r.slots) == 0 {
		return
	}
	handles := make([]uint32, len(r.slots))
	for i, slot := range r.slots {
		handles[i] = slot.Handle
	}
	r.device.Release(handles)
	r.slots = r.slots[:0]
}

// decodeTexture reads an image and returns tightly packed pixel rows,
// flipped vertically so row 0 is the bottom of the image. The channel count
// follows the decoded color model: 3 for opaque formats, 4 for formats with
// alpha. Anything else is refused.
func decodeTexture(path string) (pixels []byte, width, height, channels int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("decode image: %w", err)
	}

	channels, err = channelCount(img)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	bounds := img.Bounds()
	width = bounds.Dx()
	height = bounds.Dy()

	pixels = make([]byte, 0, width*height*channels)
	for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if channels == 3 {
				pixels = append(pixels, byte(r16>>8), byte(g16>>8), byte(b16>>8))
			} else {
				pixels = append(pixels, byte(r16>>8), byte(g16>>8), byte(b16>>8), byte(a16>>8))
			}
		}
	}
	return pixels, width, height, channels, nil
}

func channelCount(img image.Image) (int, error) {
	switch img.(type) {
	case *image.YCbCr, *image.CMYK:
		return 3, nil
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.Paletted:
		return 4, nil
	case *image.Gray, *image.Gray16:
		return 0, fmt.Errorf("unsupported image with 1 channel")
	default:
		return 0, fmt.Errorf("unsupported image format %T", img)
	}
}
