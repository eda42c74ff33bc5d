// Package receipt holds the rules shared by every component that handles
// receipt attachments.
package receipt

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AllowedExtensions holds the receipt image extensions accepted for upload.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

var contentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// ValidationTag is the struct tag registered by RegisterValidation.
const ValidationTag = "receipt_ext"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Ext returns the normalized extension of a file name.
func Ext(fileName string) string {
	return NormalizeExt(filepath.Ext(strings.TrimSpace(fileName)))
}

// IsAllowed reports whether the file name carries an accepted image extension.
func IsAllowed(fileName string) bool {
	_, ok := AllowedExtensions[Ext(fileName)]
	return ok
}

// ContentType returns the MIME type for an accepted file name, or
// application/octet-stream.
func ContentType(fileName string) string {
	if ct, ok := contentTypes[Ext(fileName)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// RegisterValidation installs the receipt_ext tag on v.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation(ValidationTag, func(fl validator.FieldLevel) bool {
		return IsAllowed(fl.Field().String())
	})
}
