package rendering

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/learnopengl-go/learnopengl/lib/metrics"
)

// TextureParams selects the sampling state of an uploaded texture.
type TextureParams struct {
	WrapS       int32
	WrapT       int32
	MinFilter   int32
	MagFilter   int32
	BorderColor mgl32.Vec4
	Mipmaps     bool
}

// DefaultTextureParams mirrors the wrap, filter and mipmap choices of the
// texture chapter.
func DefaultTextureParams() TextureParams {
	return TextureParams{
		WrapS:     gl.MIRRORED_REPEAT,
		WrapT:     gl.MIRRORED_REPEAT,
		MinFilter: gl.NEAREST,
		MagFilter: gl.LINEAR,
		Mipmaps:   true,
	}
}

var TextureUploadCounter uint64

// UploadTexture creates a 2D texture from an RGB image and returns its id.
// The texture stays bound to the active texture unit.
func UploadTexture(img *Image, params TextureParams) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, params.WrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, params.WrapT)
	if params.WrapS == gl.CLAMP_TO_BORDER || params.WrapT == gl.CLAMP_TO_BORDER {
		gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &params.BorderColor[0])
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, params.MinFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, params.MagFilter)

	// rows of RGB8 data are not 4-byte aligned for odd widths
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGB,
		int32(img.Width),
		int32(img.Height),
		0,
		gl.RGB,
		gl.UNSIGNED_BYTE,
		gl.Ptr(&img.Data[0]),
	)
	if params.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	TextureUploadCounter += uint64(len(img.Data))
	metrics.TextureUploadBytes.Add(float64(len(img.Data)))
	return id
}

// BindTexture binds a texture to the given texture unit.
func BindTexture(unit int, id uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}
