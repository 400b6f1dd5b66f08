package locale

// Two code systems live side by side:
//   - landing pages and products store short codes ("tw") next to a country ("HK")
//   - FAQ / knowledge tables store ISO codes ("zh-TW")
var urlToDB = map[string]string{
	"tw": "zh-TW",
	"cn": "zh-CN",
	"en": "en",
	"vi": "vi",
}

var dbToURL = map[string]string{
	"zh-TW": "tw",
	"zh-CN": "cn",
	"en":    "en",
	"vi":    "vi",
}

// ToDBLanguage maps a URL/short language code to the ISO code.
// Unknown codes pass through unchanged.
func ToDBLanguage(urlCode string) string {
	if v, ok := urlToDB[urlCode]; ok {
		return v
	}
	return urlCode
}

// ToURLLanguage maps an ISO language code back to the short code.
// Unknown codes pass through unchanged.
func ToURLLanguage(dbCode string) string {
	if v, ok := dbToURL[dbCode]; ok {
		return v
	}
	return dbCode
}

func SupportedURLLanguages() []string {
	return []string{"en", "tw", "cn", "vi"}
}
