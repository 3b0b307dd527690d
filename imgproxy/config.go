package imgproxy

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"gopkg.in/yaml.v3"
)

// Config is the static configuration of a Client. It is read once by New
// and never modified afterwards.
type Config struct {
	// Host is the base URL of the imgproxy service, e.g.
	// "https://img.example.com". Required.
	Host string `yaml:"host"`

	// Key is the hex-encoded signing key. Key and Salt must be set
	// together; when both are empty URLs are generated in plain mode.
	Key string `yaml:"key"`

	// Salt is the hex-encoded signing salt.
	Salt string `yaml:"salt"`

	// SourceSetSizes is the default list of widths used by SourceSet when
	// none are passed explicitly.
	SourceSetSizes []int `yaml:"source_set_sizes"`
}

// LoadConfig decodes a YAML document into a Config. Unknown fields are
// rejected. The returned Config is not validated; New does that.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("imgproxy: decode config: %w", err)
	}

	return cfg, nil
}

// LoadConfigFile reads and decodes the YAML config file at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("imgproxy: open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Validate checks that Host is set and that Key and Salt are either both
// present or both absent.
func (c Config) Validate() error {
	if c.Host == "" {
		return ErrNoHost
	}

	if (c.Key == "") != (c.Salt == "") {
		return ErrKeySaltMismatch
	}

	return nil
}

// Signed reports whether the Config enables URL signing.
func (c Config) Signed() bool {
	return c.Key != "" && c.Salt != ""
}

// normalizeHost trims trailing slashes and converts an internationalized
// host name to its ASCII form. Hosts that do not parse as absolute URLs are
// returned with only the trailing slashes removed.
func normalizeHost(host string) (string, error) {
	host = strings.TrimRight(host, "/")

	u, err := url.Parse(host)
	if err != nil || u.Host == "" {
		return host, nil
	}

	name := u.Hostname()
	if isASCII(name) {
		return host, nil
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("imgproxy: invalid host %q: %w", name, err)
	}

	if port := u.Port(); port != "" {
		u.Host = ascii + ":" + port
	} else {
		u.Host = ascii
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
