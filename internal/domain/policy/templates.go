package policy

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
)

var ErrUnknownType = errors.New("unknown policy type")

const (
	TypeTermsOfService = "terms_of_service"
	TypePrivacyPolicy  = "privacy_policy"
	TypeRefundPolicy   = "refund_policy"
	TypeShippingPolicy = "shipping_policy"
)

//go:embed templates/*.json
var templateFS embed.FS

var builtin = mustLoad()

func mustLoad() map[string]Template {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		panic(err)
	}

	out := make(map[string]Template, len(entries))
	for _, e := range entries {
		raw, err := templateFS.ReadFile(path.Join("templates", e.Name()))
		if err != nil {
			panic(err)
		}
		var t Template
		if err := json.Unmarshal(raw, &t); err != nil {
			panic(fmt.Errorf("policy template %s: %w", e.Name(), err))
		}
		out[t.Type] = t
	}
	return out
}

// Lookup returns a copy of the built-in template for policyType.
func Lookup(policyType string) (Template, error) {
	t, ok := builtin[policyType]
	if !ok {
		return Template{}, ErrUnknownType
	}
	t.Fields = append([]Field(nil), t.Fields...)
	return t, nil
}

func Types() []string {
	out := make([]string, 0, len(builtin))
	for k := range builtin {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
