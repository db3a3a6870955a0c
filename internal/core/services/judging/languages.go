package judging

import "strings"

// languageIDs maps canonical language names to the runner's numeric ids
// (Judge0 CE). Unknown names fail closed; there is no default language.
var languageIDs = map[string]int{
	"javascript": 93, // Node.js 18.15.0
	"python":     92, // Python 3.11.2
	"cpp":        54, // GCC 9.2.0, C++17
	"c":          50, // GCC 9.2.0
	"java":       91, // JDK 17.0.6
}

// LanguageID resolves a language name to its runner id. Lookup is
// case-insensitive.
func LanguageID(name string) (int, bool) {
	id, ok := languageIDs[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// SupportedLanguages returns the canonical names accepted by LanguageID.
func SupportedLanguages() []string {
	names := make([]string, 0, len(languageIDs))
	for name := range languageIDs {
		names = append(names, name)
	}
	return names
}
