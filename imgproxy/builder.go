package imgproxy

import (
	"time"

	"github.com/google/uuid"
)

// Builder accumulates Settings through chained calls. Each call overwrites
// the field it targets; sub-records are replaced as a whole. A Builder is
// not safe for concurrent use.
type Builder struct {
	client   *Client
	settings Settings
}

// Width sets the target width.
func (b *Builder) Width(width int) *Builder {
	b.settings.Width = width

	return b
}

// Height sets the target height.
func (b *Builder) Height(height int) *Builder {
	b.settings.Height = height

	return b
}

// Size sets both the target width and height.
func (b *Builder) Size(width, height int) *Builder {
	b.settings.Width = width
	b.settings.Height = height

	return b
}

// DPR sets the device pixel ratio.
func (b *Builder) DPR(dpr float64) *Builder {
	b.settings.DPR = dpr

	return b
}

// Enlarge allows the image to be enlarged past its original size.
func (b *Builder) Enlarge() *Builder {
	b.settings.Enlarge = true

	return b
}

// Resize sets the resize options. An empty algorithm encodes as
// DefaultResizeAlgorithm.
func (b *Builder) Resize(r Resize) *Builder {
	b.settings.Resize = &r

	return b
}

// Gravity sets the gravity type and its offsets.
func (b *Builder) Gravity(gravity GravityType, xOffset, yOffset float64) *Builder {
	b.settings.Gravity = &Gravity{Type: gravity, XOffset: xOffset, YOffset: yOffset}

	return b
}

// Crop crops the image to width x height. gravity may be empty.
func (b *Builder) Crop(width, height int, gravity GravityType) *Builder {
	b.settings.Crop = &Crop{Width: width, Height: height, Gravity: gravity}

	return b
}

// Padding sets the padding from any PaddingSpec shape.
func (b *Builder) Padding(p PaddingSpec) *Builder {
	if p == nil {
		b.settings.Padding = nil

		return b
	}

	sides := p.sides()
	b.settings.Padding = &sides

	return b
}

// Extend extends the canvas to the requested size. gravity may be empty.
func (b *Builder) Extend(gravity GravityType) *Builder {
	b.settings.Extend = &Extend{Gravity: gravity}

	return b
}

// Trim sets the trim options.
func (b *Builder) Trim(t Trim) *Builder {
	b.settings.Trim = &t

	return b
}

// AutoRotate rotates the image according to its EXIF orientation.
func (b *Builder) AutoRotate() *Builder {
	b.settings.AutoRotate = true

	return b
}

// Rotate sets the rotation angle.
func (b *Builder) Rotate(angle Rotation) *Builder {
	b.settings.Rotation = angle

	return b
}

// Background sets the background color, keeping a previously set alpha.
func (b *Builder) Background(color BackgroundColor) *Builder {
	bg := b.background()
	bg.Color = color

	return b
}

// BackgroundAlpha sets the background alpha, keeping a previously set
// color.
func (b *Builder) BackgroundAlpha(alpha float64) *Builder {
	bg := b.background()
	bg.Alpha = alpha

	return b
}

func (b *Builder) background() *Background {
	if b.settings.Background == nil {
		b.settings.Background = &Background{}
	}

	return b.settings.Background
}

// Blur sets the gaussian blur sigma.
func (b *Builder) Blur(sigma float64) *Builder {
	b.settings.Blur = sigma

	return b
}

// Sharpen sets the sharpen sigma.
func (b *Builder) Sharpen(sigma float64) *Builder {
	b.settings.Sharpen = sigma

	return b
}

// Pixelate sets the pixelation block size.
func (b *Builder) Pixelate(size float64) *Builder {
	b.settings.Pixelate = size

	return b
}

// StripMetadata removes metadata from the result.
func (b *Builder) StripMetadata() *Builder {
	b.settings.StripMetadata = true

	return b
}

// StripColorProfile removes the embedded color profile from the result.
func (b *Builder) StripColorProfile() *Builder {
	b.settings.StripColorProfile = true

	return b
}

// Quality sets the output quality.
func (b *Builder) Quality(quality int) *Builder {
	b.settings.Quality = quality

	return b
}

// MaxBytes limits the size of the result in bytes.
func (b *Builder) MaxBytes(bytes int) *Builder {
	b.settings.MaxBytes = bytes

	return b
}

// Format sets the output extension, e.g. "webp".
func (b *Builder) Format(extension string) *Builder {
	b.settings.Format = extension

	return b
}

// CacheBuster sets the cache buster token.
func (b *Builder) CacheBuster(token string) *Builder {
	b.settings.CacheBuster = token

	return b
}

// RandomCacheBuster sets the cache buster to a fresh random UUID.
func (b *Builder) RandomCacheBuster() *Builder {
	b.settings.CacheBuster = uuid.NewString()

	return b
}

// Expires sets the time after which the URL is rejected. The zero time
// clears it.
func (b *Builder) Expires(t time.Time) *Builder {
	if t.IsZero() {
		b.settings.Expires = 0
	} else {
		b.settings.Expires = t.Unix()
	}

	return b
}

// FileName sets the file name of the result.
func (b *Builder) FileName(name string) *Builder {
	b.settings.FileName = name

	return b
}

// Settings returns a copy of the accumulated settings.
func (b *Builder) Settings() Settings {
	return b.settings.Clone()
}

// Generate returns the URL for source using the accumulated settings. The
// settings are left in place, so the Builder can be adjusted and reused.
func (b *Builder) Generate(source string) string {
	return b.client.Encode(b.settings, source)
}

// SourceSet returns a srcset value for source using the accumulated
// settings as the base for every width. The Builder is not modified.
func (b *Builder) SourceSet(source string, sizes ...int) (string, error) {
	return b.client.SourceSet(source, b.settings, sizes...)
}
