package service

import "landing-platform/internal/domain/policy"

type PolicySummary struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Version  string         `json:"version"`
	Fields   []policy.Field `json:"fields"`
	Required int            `json:"required"`
}

type PolicyRender struct {
	Type       string                  `json:"type"`
	Title      string                  `json:"title"`
	Content    string                  `json:"content"`
	Validation policy.ValidationResult `json:"validation"`
}

// PolicyService serves the built-in legal policy templates.
type PolicyService struct{}

func NewPolicyService() *PolicyService {
	return &PolicyService{}
}

func (s *PolicyService) List() []PolicySummary {
	out := []PolicySummary{}
	for _, typ := range policy.Types() {
		t, err := policy.Lookup(typ)
		if err != nil {
			continue
		}
		out = append(out, PolicySummary{
			Type:     t.Type,
			Title:    t.Title,
			Version:  t.Version,
			Fields:   t.Fields,
			Required: len(policy.RequiredFields(t)),
		})
	}
	return out
}

// Render fills a template and validates the values alongside. Missing
// required values are reported, not rejected.
func (s *PolicyService) Render(policyType string, values map[string]string) (*PolicyRender, error) {
	t, err := policy.Lookup(policyType)
	if err != nil {
		return nil, err
	}
	return &PolicyRender{
		Type:       t.Type,
		Title:      t.Title,
		Content:    policy.Render(t, values),
		Validation: policy.Validate(t, values),
	}, nil
}
