package media

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"strconv"
	"strings"
	"time"
)

// Namer generates stored file names. The zero value uses the wall clock and
// crypto/rand.
type Namer struct {
	Now  func() time.Time
	Rand io.Reader
}

// GenerateFileName returns {entityID}-{unixMillis}-{16 hex chars}{ext}.
// Uniqueness is probabilistic: 64 random bits per call.
func (n Namer) GenerateFileName(kind Kind, entityID, originalName, mediaType string) (string, error) {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	src := rand.Reader
	if n.Rand != nil {
		src = n.Rand
	}

	var buf [8]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(entityID)
	b.WriteByte('-')
	b.WriteString(strconv.FormatInt(now().UnixMilli(), 10))
	b.WriteByte('-')
	b.WriteString(hex.EncodeToString(buf[:]))
	b.WriteString(GuessExtension(kind, originalName, mediaType))
	return b.String(), nil
}

// GenerateFileName uses the default Namer.
func GenerateFileName(kind Kind, entityID, originalName, mediaType string) (string, error) {
	return Namer{}.GenerateFileName(kind, entityID, originalName, mediaType)
}

// GuessExtension picks the stored extension: a recognised suffix of the
// lowercased original name wins, then the declared media type, then "".
func GuessExtension(kind Kind, originalName, mediaType string) string {
	p := kind.Policy()
	lower := strings.ToLower(originalName)
	if i := strings.LastIndexByte(lower, '.'); i != -1 {
		if ext, ok := p.Suffixes[lower[i:]]; ok {
			return ext
		}
	}
	if ext, ok := p.MediaTypes[normalizeMediaType(mediaType)]; ok {
		return ext
	}
	return ""
}
