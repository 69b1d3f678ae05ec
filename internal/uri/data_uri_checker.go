package uri

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DataURICheckResult represents the result of validating an avatar URI
type DataURICheckResult struct {
	Valid            bool
	Error            *string
	MimeType         string // Detected mime type from content
	DeclaredMimeType string // Declared mime type in URI
	Size             int
}

// DataURIChecker defines the interface for checking avatar URIs
//
//go:generate mockgen -source=data_uri_checker.go -destination=../mocks/data_uri_checker.go -package=mocks -mock_names=DataURIChecker=MockDataURIChecker
type DataURIChecker interface {
	// Check validates an avatar URI. Inline data URIs must:
	// 1. Follow RFC 2397
	// 2. Declare one of the allowed image mime types
	// 3. Decode to at most the size limit
	// 4. Carry content whose magic numbers match the declared type
	// Absolute http(s) URLs are accepted as is.
	Check(avatarURI string) DataURICheckResult
}

type dataURIChecker struct {
	maxSize      int
	allowedTypes []string
}

// NewDataURIChecker creates an avatar checker
func NewDataURIChecker(maxSize int, allowedTypes []string) DataURIChecker {
	return &dataURIChecker{maxSize: maxSize, allowedTypes: allowedTypes}
}

func invalid(format string, args ...interface{}) DataURICheckResult {
	errMsg := fmt.Sprintf(format, args...)
	return DataURICheckResult{Valid: false, Error: &errMsg}
}

func (c *dataURIChecker) Check(avatarURI string) DataURICheckResult {
	if IsHTTPURL(avatarURI) {
		return DataURICheckResult{Valid: true}
	}
	if !IsDataURI(avatarURI) {
		return invalid("unsupported avatar URI: only data: and http(s) URLs are accepted")
	}

	parsed, err := ParseDataURI(avatarURI)
	if err != nil {
		return invalid("%s", err.Error())
	}

	if !c.isAllowed(parsed.MimeType) {
		res := invalid("unsupported mime type: %s (allowed: %s)", parsed.MimeType, strings.Join(c.allowedTypes, ", "))
		res.DeclaredMimeType = parsed.MimeType
		return res
	}

	if len(parsed.DecodedData) == 0 {
		res := invalid("invalid data URI: empty data")
		res.DeclaredMimeType = parsed.MimeType
		return res
	}

	if c.maxSize > 0 && len(parsed.DecodedData) > c.maxSize {
		res := invalid("avatar too large: %d bytes exceeds %d", len(parsed.DecodedData), c.maxSize)
		res.DeclaredMimeType = parsed.MimeType
		res.Size = len(parsed.DecodedData)
		return res
	}

	detectedMimeType := mimetype.Detect(parsed.DecodedData).String()
	if !mimeTypesMatch(parsed.MimeType, detectedMimeType) {
		res := invalid("mime type mismatch: declared %s but detected %s", parsed.MimeType, detectedMimeType)
		res.DeclaredMimeType = parsed.MimeType
		res.MimeType = detectedMimeType
		return res
	}

	return DataURICheckResult{
		Valid:            true,
		MimeType:         detectedMimeType,
		DeclaredMimeType: parsed.MimeType,
		Size:             len(parsed.DecodedData),
	}
}

func (c *dataURIChecker) isAllowed(mimeType string) bool {
	for _, allowed := range c.allowedTypes {
		if mimeTypesMatch(allowed, mimeType) {
			return true
		}
	}
	return false
}

// mimeTypesMatch compares mime types ignoring case and parameters.
// image/jpg is treated as image/jpeg.
func mimeTypesMatch(declared, detected string) bool {
	declared = normalizeMimeType(declared)
	detected = normalizeMimeType(detected)
	return declared == detected
}

func normalizeMimeType(m string) string {
	m = strings.ToLower(strings.TrimSpace(strings.Split(m, ";")[0]))
	if m == "image/jpg" {
		return "image/jpeg"
	}
	return m
}
