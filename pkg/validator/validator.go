package validator

import (
	"mime"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

// Init registers the custom validations with gin's binding engine. Call
// once at startup, before any request binds.
func Init() {
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidations(engine)
	}
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("dotpath", validateDotPath)
	v.RegisterValidation("layout_tag", validateLayoutTag)
	v.RegisterValidation("no_html", validateNoHTML)
}

func SanitizeHTML(html string) string {
	return sanitizer.Sanitize(html)
}

// SanitizeString strips all markup from a plain-text value and collapses
// the whitespace the stripping leaves behind. Used for titles and
// subtitles before they are persisted.
func SanitizeString(s string) string {
	return TrimSpaces(NormalizeSpaces(bluemonday.StrictPolicy().Sanitize(s)))
}

// validateDotPath accepts dot-separated content paths like "cta.link.url" or "items.2.title".
func validateDotPath(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9_]+(\.[a-zA-Z0-9_]+)*$`, path)
	return matched
}

func validateLayoutTag(fl validator.FieldLevel) bool {
	tag := fl.Field().String()
	matched, _ := regexp.MatchString(`^[A-Z][A-Z_]*$`, tag)
	return matched
}

func validateNoHTML(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.Contains(value, "<") && !strings.Contains(value, ">")
}

func TrimSpaces(s string) string {
	return strings.TrimSpace(s)
}

func NormalizeSpaces(s string) string {
	space := regexp.MustCompile(`\s+`)
	return space.ReplaceAllString(s, " ")
}

func ValidateImageExtension(filename string) bool {
	allowedExtensions := []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}
	filename = strings.ToLower(filename)

	for _, ext := range allowedExtensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

func ValidateFileSize(size int64, maxSize int64) bool {
	return size > 0 && size <= maxSize
}

// ValidateContentType validates that the provided MIME type is in the allowed list.
func ValidateContentType(contentType string, allowedMimeTypes []string) bool {
	if contentType == "" || len(allowedMimeTypes) == 0 {
		return false
	}

	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	mimeType = strings.ToLower(strings.TrimSpace(mimeType))

	for _, allowed := range allowedMimeTypes {
		allowed = strings.ToLower(strings.TrimSpace(allowed))

		if mimeType == allowed {
			return true
		}

		// Wildcard match (e.g., "image/*" matches "image/png")
		if strings.HasSuffix(allowed, "/*") {
			prefix := strings.TrimSuffix(allowed, "/*")
			if strings.HasPrefix(mimeType, prefix+"/") {
				return true
			}
		}
	}

	return false
}

// ValidateImageContentType validates image MIME types accepted by IMAGE fields.
func ValidateImageContentType(contentType string) bool {
	allowedMimeTypes := []string{
		"image/jpeg",
		"image/png",
		"image/gif",
		"image/webp",
		"image/svg+xml",
	}
	return ValidateContentType(contentType, allowedMimeTypes)
}
