package application

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// maxSanitizePasses bounds the decode/sanitize loop in sanitizeText.
const maxSanitizePasses = 4

// sanitizeText strips markup from a free-text answer, including markup hidden
// behind HTML entities. Input is decoded and sanitized until a pass changes
// nothing; only then is the plain text returned with "&" and quotes readable.
// Input that never settles is returned in its escaped form.
func sanitizeText(raw string) string {
	text := strings.TrimSpace(raw)
	for i := 0; i < maxSanitizePasses; i++ {
		if text == "" {
			return ""
		}
		next := strings.TrimSpace(html.UnescapeString(textSanitizer().Sanitize(html.UnescapeString(text))))
		if next == text {
			return text
		}
		text = next
	}
	return strings.TrimSpace(textSanitizer().Sanitize(text))
}

// optionalText returns nil for absent or blank answers.
func optionalText(raw *string) *string {
	if raw == nil {
		return nil
	}
	v := sanitizeText(*raw)
	if v == "" {
		return nil
	}
	return &v
}

// listText keeps a "; "-joined multi-select answer, absent becomes "".
func listText(raw *string) string {
	if raw == nil {
		return ""
	}
	return sanitizeText(*raw)
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
