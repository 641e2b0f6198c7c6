package media

import (
	"fmt"
	"regexp"
	"strings"
)

// Candidate is one multipart part awaiting validation.
type Candidate struct {
	Data         []byte
	MediaType    string
	OriginalName string
	FieldName    string
}

// Validate applies the kind's rules to parts and returns the accepted ones in
// their original order. Rule order: declared type, field filter, count, size.
// Nothing is written to disk here, so a rejected request has no side effects.
func Validate(parts []Candidate, kind Kind) ([]Candidate, error) {
	p := kind.Policy()

	for _, c := range parts {
		if !kind.Allows(c.MediaType) {
			return nil, newError(CodeUnsupportedMediaType,
				fmt.Sprintf("only %s are allowed, got %q", strings.Join(kind.AllowedTypes(), ", "), c.MediaType), nil)
		}
	}

	accepted := make([]Candidate, 0, len(parts))
	for _, c := range parts {
		if len(c.Data) == 0 || !kind.AcceptsField(c.FieldName) {
			continue
		}
		accepted = append(accepted, c)
	}

	if len(accepted) == 0 {
		return nil, newError(CodeNoFileProvided, fmt.Sprintf("%s file(s) are required", kind), nil)
	}
	if len(accepted) > p.MaxCount {
		return nil, newError(CodeTooManyFiles,
			fmt.Sprintf("at most %d %s file(s) per request, got %d", p.MaxCount, kind, len(accepted)), nil)
	}
	for _, c := range accepted {
		if int64(len(c.Data)) > p.MaxBytes {
			return nil, newError(CodeFileTooLarge,
				fmt.Sprintf("%q exceeds %d bytes", c.OriginalName, p.MaxBytes), nil)
		}
	}
	return accepted, nil
}

var safeFileName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// IsSafeFileName reports whether name can be joined to a storage directory
// without escaping it.
func IsSafeFileName(name string) bool {
	if name == "" {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return safeFileName.MatchString(name)
}

// CheckFileName returns ErrInvalidFileName for unsafe names.
func CheckFileName(name string) error {
	if !IsSafeFileName(name) {
		return newError(CodeInvalidFileName, "invalid file name", nil)
	}
	return nil
}
