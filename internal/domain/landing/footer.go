package landing

import "strings"

// Footer links to legal pages are served through ?policy=<type>.
var policyLinkTypes = map[string]bool{
	"about-us":         true,
	"terms-of-service": true,
	"privacy-policy":   true,
	"refund-policy":    true,
	"shipping-policy":  true,
	"guarantee":        true,
}

// NormalizeFooterLinks rewrites in-page policy anchors ("#refund-policy")
// into the query form the policy viewer reads ("?policy=refund-policy").
// Other links are kept as they are.
func NormalizeFooterLinks(links []FooterLink) []FooterLink {
	out := make([]FooterLink, 0, len(links))
	for _, l := range links {
		if strings.HasPrefix(l.URL, "#") && len(l.URL) > 1 {
			if t := l.URL[1:]; policyLinkTypes[t] {
				l.URL = "?policy=" + t
			}
		}
		out = append(out, l)
	}
	return out
}
