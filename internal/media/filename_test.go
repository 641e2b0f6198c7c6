package media

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNamer() Namer {
	return Namer{
		Now:  func() time.Time { return time.UnixMilli(1700000000123) },
		Rand: bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04}),
	}
}

func TestGenerateFileName_Format(t *testing.T) {
	name, err := fixedNamer().GenerateFileName(Image, "prod-42", "Photo.JPEG", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "prod-42-1700000000123-deadbeef01020304.jpg", name)
}

func TestGenerateFileName_DefaultNamer(t *testing.T) {
	pattern := regexp.MustCompile(`^prod-42-\d+-[0-9a-f]{16}\.png$`)

	a, err := GenerateFileName(Image, "prod-42", "x.png", "image/png")
	require.NoError(t, err)
	b, err := GenerateFileName(Image, "prod-42", "x.png", "image/png")
	require.NoError(t, err)

	assert.Regexp(t, pattern, a)
	assert.Regexp(t, pattern, b)
	assert.NotEqual(t, a, b)
}

func TestGenerateFileName_RandomSourceFailure(t *testing.T) {
	n := Namer{Rand: bytes.NewReader(nil)}
	_, err := n.GenerateFileName(Video, "p", "a.mp4", "video/mp4")
	assert.Error(t, err)
}

func TestGuessExtension(t *testing.T) {
	tests := []struct {
		name         string
		kind         Kind
		originalName string
		mediaType    string
		want         string
	}{
		{"jpeg suffix normalised", Image, "a.jpeg", "image/png", ".jpg"},
		{"upper case suffix", Image, "A.PNG", "image/jpeg", ".png"},
		{"suffix beats media type", Image, "a.webp", "image/jpeg", ".webp"},
		{"media type fallback", Image, "blob", "image/webp", ".webp"},
		{"unknown suffix falls back", Image, "a.gif", "image/png", ".png"},
		{"media type with params", Image, "blob", "image/jpeg; charset=binary", ".jpg"},
		{"nothing recognised", Image, "blob", "application/octet-stream", ""},
		{"video mp4", Video, "clip.MP4", "", ".mp4"},
		{"video quicktime type", Video, "clip", "video/quicktime", ".mov"},
		{"video ogv suffix", Video, "clip.ogv", "video/ogg", ".ogg"},
		{"image suffix on video kind ignored", Video, "clip.png", "video/webm", ".webm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessExtension(tt.kind, tt.originalName, tt.mediaType))
		})
	}
}

func TestGenerateFileName_PrefixAndExtensionFromMediaType(t *testing.T) {
	for _, k := range []Kind{Image, Video} {
		for mediaType, ext := range k.Policy().MediaTypes {
			name, err := GenerateFileName(k, "entity-7", "upload", mediaType)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(name, "entity-7-"), name)
			assert.True(t, strings.HasSuffix(name, ext), name)
			assert.True(t, IsSafeFileName(name), name)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestStoreSave_NamerFailureIsWriteFailed(t *testing.T) {
	s := NewStore(Image, t.TempDir(), "http://files.test", nil, WithNamer(Namer{Rand: failingReader{}}))
	_, err := s.Save(t.Context(), "p", SaveInput{Data: []byte("x"), MediaType: "image/png"})
	assert.ErrorIs(t, err, ErrWriteFailed)
}

func TestGenerateFileName_AlwaysDeletable(t *testing.T) {
	originals := []string{"", "photo", "../../etc/passwd.jpg", `C:\tmp\clip.MOV`, "my file (1).jpeg", "x.ogv", "a.b.c.webm"}
	for _, k := range []Kind{Image, Video} {
		for _, orig := range originals {
			for mediaType := range k.Policy().MediaTypes {
				name, err := GenerateFileName(k, "prod_42.v2", orig, mediaType)
				require.NoError(t, err)
				assert.True(t, IsSafeFileName(name), "%s from %q", name, orig)
			}
		}
	}
}
