package policy

import (
	"strings"
)

type Field struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
}

// Template is a legal policy body with {{key}} tokens for each of its fields.
type Template struct {
	Type    string  `json:"type"`
	Title   string  `json:"title"`
	Version string  `json:"version"`
	Fields  []Field `json:"fields"`
	Content string  `json:"content"`
}

type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
}

// Render substitutes every {{key}} token of t. An absent or empty value
// falls back to the field's placeholder. Tokens with no declared field are
// left untouched.
func Render(t Template, values map[string]string) string {
	if len(t.Fields) == 0 {
		return t.Content
	}

	pairs := make([]string, 0, len(t.Fields)*2)
	for _, f := range t.Fields {
		v := values[f.Key]
		if v == "" {
			v = f.Placeholder
		}
		pairs = append(pairs, "{{"+f.Key+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(t.Content)
}

// RequiredFields returns the required fields of t in declaration order.
func RequiredFields(t Template) []Field {
	out := []Field{}
	for _, f := range t.Fields {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// Validate lists the labels of required fields whose value is missing or blank.
// It does not stop a render.
func Validate(t Template, values map[string]string) ValidationResult {
	missing := []string{}
	for _, f := range RequiredFields(t) {
		if strings.TrimSpace(values[f.Key]) == "" {
			missing = append(missing, f.Label)
		}
	}
	return ValidationResult{Valid: len(missing) == 0, Missing: missing}
}
