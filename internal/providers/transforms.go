package providers

import (
	"strings"

	"resource-mapper/internal/mapping"
)

var regions = map[string]string{
	"alberta":                   "AB",
	"british columbia":          "BC",
	"manitoba":                  "MB",
	"new brunswick":             "NB",
	"newfoundland and labrador": "NL",
	"northwest territories":     "NT",
	"nova scotia":               "NS",
	"nunavut":                   "NU",
	"ontario":                   "ON",
	"prince edward island":      "PE",
	"quebec":                    "QC",
	"saskatchewan":              "SK",
	"yukon":                     "YT",
}

var languages = map[string]string{
	"english":  "en",
	"french":   "fr",
	"anglais":  "en",
	"français": "fr",
	"francais": "fr",
}

// regionCode maps a Canadian province or territory, by name or postal
// abbreviation, to its country/region list value (e.g. "CA/ON"). Unknown
// regions yield nil.
func regionCode(_ mapping.FieldMappingContext, in any) any {
	s, ok := in.(string)
	if !ok {
		return in
	}

	s = strings.TrimSpace(s)

	if code, ok := regions[strings.ToLower(s)]; ok {
		return "CA/" + code
	}

	upper := strings.ToUpper(s)
	for _, code := range regions {
		if code == upper {
			return "CA/" + code
		}
	}

	return nil
}

// languageCode maps a language name or code to a two-letter code.
func languageCode(_ mapping.FieldMappingContext, in any) any {
	s, ok := in.(string)
	if !ok {
		return in
	}

	s = strings.ToLower(strings.TrimSpace(s))
	if code, ok := languages[s]; ok {
		return code
	}

	if len(s) == 2 {
		return s
	}

	return nil
}
