package imgproxy

import (
	"strconv"
	"strings"
)

// segmentWriter accumulates "code:v1:v2/" processing segments.
type segmentWriter struct {
	b strings.Builder
}

func (w *segmentWriter) add(code string, values ...string) {
	w.b.WriteString(code)

	for _, v := range values {
		w.b.WriteByte(':')
		w.b.WriteString(v)
	}

	w.b.WriteByte('/')
}

func (w *segmentWriter) flag(code string, set bool) {
	if set {
		w.add(code, "1")
	}
}

func formatInt(v int) string { return strconv.Itoa(v) }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func formatBool(v bool) string {
	if v {
		return "1"
	}

	return "0"
}

// encodePath returns the unsigned path for s and source: every requested
// processing segment in wire order, followed by the encoded source. The
// order of the blocks below is relied upon by the signature and must not
// change.
func encodePath(s Settings, source string) string {
	var w segmentWriter

	if s.Width != 0 {
		w.add("w", formatInt(s.Width))
	}

	if s.Height != 0 {
		w.add("h", formatInt(s.Height))
	}

	w.flag("el", s.Enlarge)

	if s.Resize != nil {
		r := s.Resize.withDefaults()
		w.add("rs", string(r.Type), formatInt(r.Width), formatInt(r.Height), formatBool(r.Enlarge), formatBool(r.Extend))
		w.add("ra", string(r.Algorithm))
	}

	if s.DPR != 0 {
		w.add("dpr", formatFloat(s.DPR))
	}

	if g := s.Gravity; g != nil {
		w.add("g", string(g.Type), formatFloat(g.XOffset), formatFloat(g.YOffset))
	}

	if c := s.Crop; c != nil {
		if c.Gravity != "" {
			w.add("c", formatInt(c.Width), formatInt(c.Height), string(c.Gravity))
		} else {
			w.add("c", formatInt(c.Width), formatInt(c.Height))
		}
	}

	if p := s.Padding; p != nil {
		w.add("pd", formatInt(p.Top), formatInt(p.Left), formatInt(p.Right), formatInt(p.Bottom))
	}

	if e := s.Extend; e != nil {
		if e.Gravity != "" {
			w.add("ex", "1", string(e.Gravity))
		} else {
			w.add("ex", "1")
		}
	}

	if t := s.Trim; t != nil {
		w.add("t", formatFloat(t.Threshold), t.Color, formatBool(t.EqualHor), formatBool(t.EqualVer))
	}

	w.flag("ar", s.AutoRotate)

	if s.Rotation != Rotate0 {
		w.add("rot", formatInt(int(s.Rotation)))
	}

	if bg := s.Background; bg != nil {
		if bg.Color != nil {
			if values := bg.Color.values(); len(values) > 0 {
				w.add("bg", values...)
			}
		}

		if bg.Alpha != 0 {
			w.add("ba", formatFloat(bg.Alpha))
		}
	}

	if s.Blur != 0 {
		w.add("bl", formatFloat(s.Blur))
	}

	if s.Sharpen != 0 {
		w.add("sh", formatFloat(s.Sharpen))
	}

	if s.Pixelate != 0 {
		w.add("pix", formatFloat(s.Pixelate))
	}

	w.flag("sm", s.StripMetadata)
	w.flag("scp", s.StripColorProfile)

	if s.Quality != 0 {
		w.add("q", formatInt(s.Quality))
	}

	if s.MaxBytes != 0 {
		w.add("mb", formatInt(s.MaxBytes))
	}

	if s.Format != "" {
		w.add("f", s.Format)
	}

	if s.CacheBuster != "" {
		w.add("cb", s.CacheBuster)
	}

	if s.Expires != 0 {
		w.add("exp", strconv.FormatInt(s.Expires, 10))
	}

	if s.FileName != "" {
		w.add("fn", s.FileName)
	}

	w.b.WriteString(EncodeSource([]byte(source)))

	return w.b.String()
}
