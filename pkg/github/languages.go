package github

import (
	"path/filepath"
	"strings"
)

// languageByExtension maps file extensions to display languages
var languageByExtension = map[string]string{
	".cs":   "C#",
	".vb":   "VB.NET",
	".sql":  "T-SQL",
	".js":   "JavaScript",
	".jsx":  "React",
	".tsx":  "React",
	".ts":   "TypeScript",
	".java": "Java",
	".go":   "Go",
	".py":   "Python",
	".rb":   "Ruby",
	".php":  "PHP",
	".css":  "CSS",
	".html": "HTML",
	".md":   "Markdown",
	".yml":  "YAML",
	".yaml": "YAML",
	".json": "JSON",
}

// reviewableLanguages is the allow-list of languages supported for AI review.
// Files in any other language are silently excluded from analysis.
var reviewableLanguages = map[string]bool{
	"C#":         true,
	"VB.NET":     true,
	"T-SQL":      true,
	"JavaScript": true,
	"React":      true,
	"Java":       true,
}

// LanguageForFile derives a language tag from the file extension
func LanguageForFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if lang, ok := languageByExtension[ext]; ok {
		return lang
	}
	return "Unknown"
}

// IsReviewableLanguage reports whether a language is supported for review
func IsReviewableLanguage(language string) bool {
	return reviewableLanguages[language]
}
