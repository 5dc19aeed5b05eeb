package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLTextureDevice uploads textures with repeat wrapping and trilinear
// mipmapped filtering, matching the scene shader's sampling expectations.
type GLTextureDevice struct{}

func NewGLTextureDevice() GLTextureDevice {
	return GLTextureDevice{}
}

func (GLTextureDevice) Upload(pixels []byte, width, height, channels int) (uint32, error) {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	switch channels {
	case 3:
		// RGB rows are not 4-byte aligned
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(width), int32(height), 0,
			gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	case 4:
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	default:
		gl.BindTexture(gl.TEXTURE_2D, 0)
		gl.DeleteTextures(1, &id)
		return 0, fmt.Errorf("cannot upload image with %d channels", channels)
	}

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

func (GLTextureDevice) Bind(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (GLTextureDevice) Release(handles []uint32) {
	if len(handles) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(handles)), &handles[0])
}
