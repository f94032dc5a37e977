package rayops

import "honnef.co/go/wgpu"

// PixelFormat enumerates raylib's pixel data layouts. The values match
// raylib's PixelFormat enum.
type PixelFormat int32

const (
	UncompressedGrayscale PixelFormat = 1 + iota // 8 bit per pixel (no alpha)
	UncompressedGrayAlpha                        // 8*2 bpp (2 channels)
	UncompressedR5G6B5                           // 16 bpp
	UncompressedR8G8B8                           // 24 bpp
	UncompressedR5G5B5A1                         // 16 bpp (1 bit alpha)
	UncompressedR4G4B4A4                         // 16 bpp (4 bit alpha)
	UncompressedR8G8B8A8                         // 32 bpp
	UncompressedR32                              // 32 bpp (1 channel - float)
	UncompressedR32G32B32                        // 32*3 bpp (3 channels - float)
	UncompressedR32G32B32A32                     // 32*4 bpp (4 channels - float)
	CompressedDXT1RGB                            // 4 bpp (no alpha)
	CompressedDXT1RGBA                           // 4 bpp (1 bit alpha)
	CompressedDXT3RGBA                           // 8 bpp
	CompressedDXT5RGBA                           // 8 bpp
	CompressedETC1RGB                            // 4 bpp
	CompressedETC2RGB                            // 4 bpp
	CompressedETC2EACRGBA                        // 8 bpp
	CompressedPVRTRGB                            // 4 bpp
	CompressedPVRTRGBA                           // 4 bpp
	CompressedASTC4x4RGBA                        // 8 bpp
	CompressedASTC8x8RGBA                        // 2 bpp
)

// Desc describes a pixel format the way raylib's header does. It is
// total: unknown codes get a fallback description, never an error.
func (pf PixelFormat) Desc() string {
	switch pf {
	case UncompressedGrayscale:
		return "PIXELFORMAT_UNCOMPRESSED_GRAYSCALE, 8 bit per pixel (no alpha)"
	case UncompressedGrayAlpha:
		return "PIXELFORMAT_UNCOMPRESSED_GRAY_ALPHA, 8*2 bpp (2 channels)"
	case UncompressedR5G6B5:
		return "PIXELFORMAT_UNCOMPRESSED_R5G6B5, 16 bpp"
	case UncompressedR8G8B8:
		return "PIXELFORMAT_UNCOMPRESSED_R8G8B8, 24 bpp"
	case UncompressedR5G5B5A1:
		return "PIXELFORMAT_UNCOMPRESSED_R5G5B5A1, 16 bpp (1 bit alpha)"
	case UncompressedR4G4B4A4:
		return "PIXELFORMAT_UNCOMPRESSED_R4G4B4A4, 16 bpp (4 bit alpha)"
	case UncompressedR8G8B8A8:
		return "PIXELFORMAT_UNCOMPRESSED_R8G8B8A8, 32 bpp"
	case UncompressedR32:
		return "PIXELFORMAT_UNCOMPRESSED_R32, 32 bpp (1 channel - float)"
	case UncompressedR32G32B32:
		return "PIXELFORMAT_UNCOMPRESSED_R32G32B32, 32*3 bpp (3 channels - float)"
	case UncompressedR32G32B32A32:
		return "PIXELFORMAT_UNCOMPRESSED_R32G32B32A32, 32*4 bpp (4 channels - float)"
	case CompressedDXT1RGB:
		return "PIXELFORMAT_COMPRESSED_DXT1_RGB, 4 bpp (no alpha)"
	case CompressedDXT1RGBA:
		return "PIXELFORMAT_COMPRESSED_DXT1_RGBA, 4 bpp (1 bit alpha)"
	case CompressedDXT3RGBA:
		return "PIXELFORMAT_COMPRESSED_DXT3_RGBA, 8 bpp"
	case CompressedDXT5RGBA:
		return "PIXELFORMAT_COMPRESSED_DXT5_RGBA, 8 bpp"
	case CompressedETC1RGB:
		return "PIXELFORMAT_COMPRESSED_ETC1_RGB, 4 bpp"
	case CompressedETC2RGB:
		return "PIXELFORMAT_COMPRESSED_ETC2_RGB, 4 bpp"
	case CompressedETC2EACRGBA:
		return "PIXELFORMAT_COMPRESSED_ETC2_EAC_RGBA, 8 bpp"
	case CompressedPVRTRGB:
		return "PIXELFORMAT_COMPRESSED_PVRT_RGB, 4 bpp"
	case CompressedPVRTRGBA:
		return "PIXELFORMAT_COMPRESSED_PVRT_RGBA, 4 bpp"
	case CompressedASTC4x4RGBA:
		return "PIXELFORMAT_COMPRESSED_ASTC_4x4_RGBA, 8 bpp"
	case CompressedASTC8x8RGBA:
		return "PIXELFORMAT_COMPRESSED_ASTC_8x8_RGBA, 2 bpp"
	default:
		return "Unrecognized PixelFormat number"
	}
}

// SurfaceFormat maps pf to the wgpu texture format a surface holding
// it would use. Only the uncompressed 8-bit RGBA layout has a direct
// counterpart; everything else reports ok == false.
func (pf PixelFormat) SurfaceFormat() (format wgpu.TextureFormat, ok bool) {
	if pf == UncompressedR8G8B8A8 {
		return wgpu.TextureFormatRGBA8Unorm, true
	}
	return format, false
}
