package imgproxy

// GravityType is a named anchor point used by crop, gravity and extend.
type GravityType string

const (
	GravityNorth     GravityType = "no"
	GravitySouth     GravityType = "so"
	GravityEast      GravityType = "ea"
	GravityWest      GravityType = "we"
	GravityNorthEast GravityType = "noea"
	GravityNorthWest GravityType = "nowe"
	GravitySouthEast GravityType = "soea"
	GravitySouthWest GravityType = "sowe"
	GravityCenter    GravityType = "ce"
	GravitySmart     GravityType = "sm"
)

// ResizeType selects how the image is fitted into the requested size.
type ResizeType string

const (
	ResizeFit      ResizeType = "fit"
	ResizeFill     ResizeType = "fill"
	ResizeFillDown ResizeType = "fill-down"
	ResizeForce    ResizeType = "force"
	ResizeAuto     ResizeType = "auto"
)

// ResizeAlgorithm selects the interpolation used while resizing.
type ResizeAlgorithm string

const (
	ResizeNearest  ResizeAlgorithm = "nearest"
	ResizeLinear   ResizeAlgorithm = "linear"
	ResizeCubic    ResizeAlgorithm = "cubic"
	ResizeLanczos2 ResizeAlgorithm = "lanczos2"
	ResizeLanczos3 ResizeAlgorithm = "lanczos3"
)

// Rotation is a clockwise right-angle rotation in degrees. Rotate0 is
// treated as absent.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Resize describes the rs and ra segments. Empty Type and Algorithm fall
// back to DefaultResizeType and DefaultResizeAlgorithm.
type Resize struct {
	Type      ResizeType
	Width     int
	Height    int
	Enlarge   bool
	Extend    bool
	Algorithm ResizeAlgorithm
}

// Gravity describes the g segment.
type Gravity struct {
	Type    GravityType
	XOffset float64
	YOffset float64
}

// Crop describes the c segment. Gravity is optional.
type Crop struct {
	Width   int
	Height  int
	Gravity GravityType
}

// Extend describes the ex segment. Gravity is optional.
type Extend struct {
	Gravity GravityType
}

// Trim describes the t segment.
type Trim struct {
	Threshold float64
	Color     string
	EqualHor  bool
	EqualVer  bool
}

// Background holds a background color and its alpha. Either part may be
// unset: a nil Color emits only the alpha segment, a zero Alpha emits only
// the color segment.
type Background struct {
	Color BackgroundColor
	Alpha float64
}

// Settings is a sparse record of requested transformations. The zero value
// of every scalar field and a nil sub-record mean "not requested".
type Settings struct {
	Width             int
	Height            int
	Enlarge           bool
	Resize            *Resize
	DPR               float64
	Gravity           *Gravity
	Crop              *Crop
	Padding           *Padding
	Extend            *Extend
	Trim              *Trim
	AutoRotate        bool
	Rotation          Rotation
	Background        *Background
	Blur              float64
	Sharpen           float64
	Pixelate          float64
	StripMetadata     bool
	StripColorProfile bool
	Quality           int
	MaxBytes          int
	Format            string
	CacheBuster       string
	Expires           int64
	FileName          string
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	out := s

	if s.Resize != nil {
		v := *s.Resize
		out.Resize = &v
	}

	if s.Gravity != nil {
		v := *s.Gravity
		out.Gravity = &v
	}

	if s.Crop != nil {
		v := *s.Crop
		out.Crop = &v
	}

	if s.Padding != nil {
		v := *s.Padding
		out.Padding = &v
	}

	if s.Extend != nil {
		v := *s.Extend
		out.Extend = &v
	}

	if s.Trim != nil {
		v := *s.Trim
		out.Trim = &v
	}

	if s.Background != nil {
		v := *s.Background
		out.Background = &v
	}

	return out
}
