package imgproxy

// Values applied to absent sub-record fields right before encoding. Settings
// themselves never carry defaults.
const (
	DefaultResizeType      = ResizeFit
	DefaultResizeAlgorithm = ResizeLanczos2
)

func (r Resize) withDefaults() Resize {
	if r.Type == "" {
		r.Type = DefaultResizeType
	}

	if r.Algorithm == "" {
		r.Algorithm = DefaultResizeAlgorithm
	}

	return r
}

// Gravity offsets and trim color/equalization default to their zero values
// (0, "" and 0), which are emitted as-is by the encoder.
