// Package media stores product images and videos on local disk and builds
// their public URLs.
package media

import (
	"sort"
	"strings"
)

// Kind classifies an upload and selects its storage and validation policy.
type Kind int

const (
	Image Kind = iota + 1
	Video
)

const mib = 1 << 20

// Policy holds the per-kind rules shared by the validator, the filename
// policy and the store.
type Policy struct {
	// Segment is both the subdirectory under the storage root and the URL
	// path segment after /public/.
	Segment    string
	MaxBytes   int64
	MaxCount   int
	FieldNames []string
	// MediaTypes maps each accepted declared type to its canonical extension.
	MediaTypes map[string]string
	// Suffixes maps a recognised original-name suffix to the stored extension.
	Suffixes map[string]string
}

var policies = map[Kind]Policy{
	Image: {
		Segment:    "products",
		MaxBytes:   5 * mib,
		MaxCount:   5,
		FieldNames: []string{"files", "file"},
		MediaTypes: map[string]string{
			"image/jpeg": ".jpg",
			"image/png":  ".png",
			"image/webp": ".webp",
		},
		Suffixes: map[string]string{
			".jpg":  ".jpg",
			".jpeg": ".jpg",
			".png":  ".png",
			".webp": ".webp",
		},
	},
	Video: {
		Segment:    "videos",
		MaxBytes:   50 * mib,
		MaxCount:   1,
		FieldNames: []string{"video"},
		MediaTypes: map[string]string{
			"video/mp4":       ".mp4",
			"video/webm":      ".webm",
			"video/ogg":       ".ogg",
			"video/quicktime": ".mov",
		},
		Suffixes: map[string]string{
			".mp4":  ".mp4",
			".webm": ".webm",
			".ogg":  ".ogg",
			".ogv":  ".ogg",
			".mov":  ".mov",
		},
	},
}

// Policy returns the rules for k. It panics on an unknown kind.
func (k Kind) Policy() Policy {
	p, ok := policies[k]
	if !ok {
		panic("media: unknown kind")
	}
	return p
}

func (k Kind) String() string {
	switch k {
	case Image:
		return "image"
	case Video:
		return "video"
	default:
		return "unknown"
	}
}

// Allows reports whether mediaType is accepted for k. Parameters such as
// "; charset=..." are ignored.
func (k Kind) Allows(mediaType string) bool {
	_, ok := k.Policy().MediaTypes[normalizeMediaType(mediaType)]
	return ok
}

// AcceptsField reports whether a multipart part named field belongs to k.
func (k Kind) AcceptsField(field string) bool {
	for _, f := range k.Policy().FieldNames {
		if f == field {
			return true
		}
	}
	return false
}

// AllowedTypes lists the accepted media types in sorted order.
func (k Kind) AllowedTypes() []string {
	types := make([]string, 0, len(k.Policy().MediaTypes))
	for t := range k.Policy().MediaTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func normalizeMediaType(mediaType string) string {
	if i := strings.Index(mediaType, ";"); i != -1 {
		mediaType = mediaType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
