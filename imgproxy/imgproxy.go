package imgproxy

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// plainPrefix marks an unsigned URL.
const plainPrefix = "plain"

// Client turns Settings into imgproxy URLs for a fixed Config. A Client is
// immutable after New and safe for concurrent use.
type Client struct {
	host   string
	sizes  []int
	signer Signer
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug records. Defaults to a logger
// that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSigner replaces the HMAC signer derived from Config.Key and
// Config.Salt. A nil signer disables signing.
func WithSigner(signer Signer) Option {
	return func(c *Client) {
		c.signer = signer
	}
}

// New validates cfg and returns a Client. Key and Salt are decoded from hex
// here; decoding errors are returned wrapped and can be matched with
// errors.Is(err, hex.ErrLength) or errors.As with *hex.InvalidByteError.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	host, err := normalizeHost(cfg.Host)
	if err != nil {
		return nil, err
	}

	c := &Client{
		host:   host,
		sizes:  append([]int(nil), cfg.SourceSetSizes...),
		logger: slog.New(slog.DiscardHandler),
	}

	if cfg.Signed() {
		key, err := hex.DecodeString(cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("imgproxy: decode key: %w", err)
		}

		salt, err := hex.DecodeString(cfg.Salt)
		if err != nil {
			return nil, fmt.Errorf("imgproxy: decode salt: %w", err)
		}

		c.signer, err = NewHMACSigner(key, salt)
		if err != nil {
			return nil, err
		}
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Signed reports whether generated URLs carry a signature.
func (c *Client) Signed() bool {
	return c.signer != nil
}

// Builder returns an empty Builder bound to c.
func (c *Client) Builder() *Builder {
	return &Builder{client: c}
}

// Encode returns the URL for source processed with s. It does not modify s,
// and the same arguments always produce the same URL.
func (c *Client) Encode(s Settings, source string) string {
	path := encodePath(s, source)

	prefix := plainPrefix
	if c.signer != nil {
		prefix = c.signer.Sign(path)
	}

	c.logger.Debug("imgproxy url generated", slog.Bool("signed", c.signer != nil), slog.Int("path_length", len(path)))

	return c.host + "/" + prefix + "/" + path
}

// SourceSet returns a srcset attribute value for source: one "<url> <w>w"
// entry per width, comma separated, in the given order. Each entry uses a
// copy of base with Width replaced. When sizes is empty the Config's
// SourceSetSizes are used; if both are empty ErrNoSourceSetSizes is
// returned.
func (c *Client) SourceSet(source string, base Settings, sizes ...int) (string, error) {
	if len(sizes) == 0 {
		sizes = c.sizes
	}

	if len(sizes) == 0 {
		return "", ErrNoSourceSetSizes
	}

	var b strings.Builder

	for i, size := range sizes {
		s := base
		s.Width = size

		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(c.Encode(s, source))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(size))
		b.WriteByte('w')
	}

	c.logger.Debug("imgproxy source set generated", slog.Int("sizes", len(sizes)))

	return b.String(), nil
}
