package imgproxy

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSource(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "empty", input: []byte{}, want: ""},
		{name: "one byte drops padding", input: []byte("a"), want: "YQ"},
		{name: "two bytes drop padding", input: []byte("ab"), want: "YWI"},
		{name: "plus and slash are replaced", input: []byte{0xfb, 0xff, 0xfe}, want: "-__-"},
		{
			name:  "url",
			input: []byte("http://example.com/images/curiosity.jpg"),
			want:  "aHR0cDovL2V4YW1wbGUuY29tL2ltYWdlcy9jdXJpb3NpdHkuanBn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeSource(tt.input))
		})
	}

	t.Run("matches transformed standard encoding", func(t *testing.T) {
		input := []byte("subjects?_d=1&x=~~~")

		std := base64.StdEncoding.EncodeToString(input)
		std = strings.TrimRight(std, "=")
		std = strings.NewReplacer("+", "-", "/", "_").Replace(std)

		assert.Equal(t, std, EncodeSource(input))
	})

	t.Run("random input has no unsafe characters and round trips", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			input := make([]byte, i)
			_, err := rand.Read(input)
			require.NoError(t, err)

			encoded := EncodeSource(input)
			assert.NotContains(t, encoded, "+")
			assert.NotContains(t, encoded, "/")
			assert.NotContains(t, encoded, "=")

			decoded, err := base64.RawURLEncoding.DecodeString(encoded)
			require.NoError(t, err)
			assert.Equal(t, input, decoded)
		}
	})
}
