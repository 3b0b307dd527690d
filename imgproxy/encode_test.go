package imgproxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullSettings() Settings {
	return Settings{
		Width:             100,
		Height:            200,
		Enlarge:           true,
		Resize:            &Resize{Type: ResizeFill, Width: 300, Height: 400, Enlarge: true},
		DPR:               2,
		Gravity:           &Gravity{Type: GravityCenter, XOffset: 0.5, YOffset: -3},
		Crop:              &Crop{Width: 50, Height: 60, Gravity: GravityNorth},
		Padding:           &Padding{Top: 1, Left: 2, Right: 3, Bottom: 4},
		Extend:            &Extend{Gravity: GravitySouth},
		Trim:              &Trim{Threshold: 10, Color: "fff", EqualHor: true},
		AutoRotate:        true,
		Rotation:          Rotate90,
		Background:        &Background{Color: RGBColor{R: "255", G: "0", B: "0"}, Alpha: 0.5},
		Blur:              1.5,
		Sharpen:           0.7,
		Pixelate:          4,
		StripMetadata:     true,
		StripColorProfile: true,
		Quality:           80,
		MaxBytes:          1024,
		Format:            "webp",
		CacheBuster:       "v1",
		Expires:           1700000000,
		FileName:          "photo",
	}
}

func TestEncodePath(t *testing.T) {
	t.Run("empty settings encode only the source", func(t *testing.T) {
		assert.Equal(t, testEncoded, encodePath(Settings{}, testSource))
	})

	t.Run("all segments in wire order", func(t *testing.T) {
		want := "w:100/h:200/el:1/rs:fill:300:400:1:0/ra:lanczos2/dpr:2/g:ce:0.5:-3/c:50:60:no/" +
			"pd:1:2:3:4/ex:1:so/t:10:fff:1:0/ar:1/rot:90/bg:255:0:0/ba:0.5/bl:1.5/sh:0.7/pix:4/" +
			"sm:1/scp:1/q:80/mb:1024/f:webp/cb:v1/exp:1700000000/fn:photo/" + testEncoded

		assert.Equal(t, want, encodePath(fullSettings(), testSource))
	})

	tests := []struct {
		name     string
		settings Settings
		want     string
	}{
		{name: "width", settings: Settings{Width: 300}, want: "w:300/"},
		{name: "height", settings: Settings{Height: 300}, want: "h:300/"},
		{name: "resize defaults", settings: Settings{Resize: &Resize{}}, want: "rs:fit:0:0:0:0/ra:lanczos2/"},
		{
			name:     "resize explicit algorithm",
			settings: Settings{Resize: &Resize{Type: ResizeForce, Width: 10, Height: 20, Extend: true, Algorithm: ResizeCubic}},
			want:     "rs:force:10:20:0:1/ra:cubic/",
		},
		{name: "dpr fraction", settings: Settings{DPR: 1.25}, want: "dpr:1.25/"},
		{name: "gravity default offsets", settings: Settings{Gravity: &Gravity{Type: GravitySmart}}, want: "g:sm:0:0/"},
		{name: "crop without gravity", settings: Settings{Crop: &Crop{Width: 10, Height: 20}}, want: "c:10:20/"},
		{name: "padding zero", settings: Settings{Padding: &Padding{}}, want: "pd:0:0:0:0/"},
		{name: "extend without gravity", settings: Settings{Extend: &Extend{}}, want: "ex:1/"},
		{name: "trim defaults", settings: Settings{Trim: &Trim{Threshold: 10}}, want: "t:10::0:0/"},
		{name: "trim equal both", settings: Settings{Trim: &Trim{Threshold: 2.5, EqualHor: true, EqualVer: true}}, want: "t:2.5::1:1/"},
		{name: "rotation 180", settings: Settings{Rotation: Rotate180}, want: "rot:180/"},
		{name: "background hex", settings: Settings{Background: &Background{Color: HexColor("ff00aa")}}, want: "bg:ff00aa/"},
		{name: "background alpha only", settings: Settings{Background: &Background{Alpha: 0.3}}, want: "ba:0.3/"},
		{name: "background empty hex", settings: Settings{Background: &Background{Color: HexColor("")}}, want: ""},
		{name: "format", settings: Settings{Format: "png"}, want: "f:png/"},
		{name: "expires", settings: Settings{Expires: 4102444800}, want: "exp:4102444800/"},
		{name: "negative width passes through", settings: Settings{Width: -5}, want: "w:-5/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want+testEncoded, encodePath(tt.settings, testSource))
		})
	}
}

func TestEncodePathFalsyFlags(t *testing.T) {
	s := Settings{
		Enlarge:           false,
		AutoRotate:        false,
		StripMetadata:     false,
		StripColorProfile: false,
		Rotation:          Rotate0,
		Quality:           0,
		Blur:              0,
	}

	assert.Equal(t, testEncoded, encodePath(s, testSource))
}

func TestEncodePathResizeAlgorithmFollowsResize(t *testing.T) {
	got := encodePath(Settings{Resize: &Resize{Type: ResizeFill, Width: 1}, DPR: 2}, testSource)
	assert.Equal(t, "rs:fill:1:0:0:0/ra:lanczos2/dpr:2/"+testEncoded, got)
}

func TestResizeWithDefaults(t *testing.T) {
	t.Run("fills empty fields", func(t *testing.T) {
		r := Resize{}.withDefaults()
		assert.Equal(t, DefaultResizeType, r.Type)
		assert.Equal(t, DefaultResizeAlgorithm, r.Algorithm)
	})

	t.Run("keeps explicit fields", func(t *testing.T) {
		r := Resize{Type: ResizeAuto, Algorithm: ResizeNearest}.withDefaults()
		assert.Equal(t, ResizeAuto, r.Type)
		assert.Equal(t, ResizeNearest, r.Algorithm)
	})
}

func BenchmarkEncodePath(b *testing.B) {
	s := fullSettings()

	b.ReportAllocs()

	for b.Loop() {
		encodePath(s, testSource)
	}
}
