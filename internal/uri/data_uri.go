package uri

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// DataURI is a parsed RFC 2397 data URI
type DataURI struct {
	MimeType    string
	Base64      bool
	DecodedData []byte
}

// ParseDataURI parses "data:[<mediatype>][;base64],<data>"
func ParseDataURI(s string) (*DataURI, error) {
	if !strings.HasPrefix(s, "data:") {
		return nil, fmt.Errorf("invalid data URI: missing data: scheme")
	}

	header, payload, found := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !found {
		return nil, fmt.Errorf("invalid data URI: missing comma separator")
	}

	params := strings.Split(header, ";")
	mimeType := strings.ToLower(strings.TrimSpace(params[0]))
	if mimeType == "" {
		mimeType = "text/plain"
	}

	isBase64 := false
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			isBase64 = true
		}
	}

	var data []byte
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// some encoders drop padding
			decoded, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
			if err != nil {
				return nil, fmt.Errorf("invalid data URI: bad base64 payload: %w", err)
			}
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("invalid data URI: bad percent encoding: %w", err)
		}
		data = []byte(unescaped)
	}

	return &DataURI{
		MimeType:    mimeType,
		Base64:      isBase64,
		DecodedData: data,
	}, nil
}

// IsDataURI reports whether s uses the data: scheme
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// IsHTTPURL reports whether s is an absolute http(s) URL
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
