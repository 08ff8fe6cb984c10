package codec

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Format names a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists every supported format in a stable order.
var Formats = []Format{JSON, YAML, TOML}

// ParseFormat maps a case-insensitive name ("json", "yaml", "yml", "toml").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension in %q", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// FormatFromContentType maps an HTTP Content-Type to a format.
// An empty header means JSON.
func FormatFromContentType(ct string) (Format, error) {
	if strings.TrimSpace(ct) == "" {
		return JSON, nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", fmt.Errorf("%w: content type %q", ErrUnknownFormat, ct)
	}
	switch mt {
	case "application/json", "text/json":
		return JSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return YAML, nil
	case "application/toml", "text/toml":
		return TOML, nil
	}

	return "", fmt.Errorf("%w: content type %q", ErrUnknownFormat, ct)
}

// ContentType returns the MIME type used when writing f.
func (f Format) ContentType() string {
	switch f {
	case YAML:
		return "application/yaml"
	case TOML:
		return "application/toml"
	default:
		return "application/json"
	}
}
