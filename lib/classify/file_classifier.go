package classify

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/pescuma/gitscore/lib/model"
)

// File maps a path to a category. Rules run in a fixed order and the first
// match wins: exact special filenames, then filename patterns, then
// extensions, then a language lookup as last resort. A file named schema.md
// must come out as database, not documentation: domain intent beats the
// generic extension.
func File(path string) model.FileCategory {
	name := strings.ToLower(filepath.Base(path))

	if cat, ok := specialFilenames[name]; ok {
		return cat
	}

	lower := strings.ToLower(filepath.ToSlash(path))
	for _, rule := range filenamePatterns {
		if strings.Contains(lower, rule.pattern) {
			return rule.category
		}
	}

	if cat, ok := extensions[filepath.Ext(name)]; ok {
		return cat
	}

	if lang := enry.GetLanguage(filepath.Base(path), nil); lang != "" {
		if enry.GetLanguageType(lang) == enry.Programming {
			return model.FileCode
		}
	}

	return model.FileUnclassified
}

var specialFilenames = map[string]model.FileCategory{
	"readme":       model.FileDocumentation,
	"license":      model.FileDocumentation,
	"licence":      model.FileDocumentation,
	"changelog":    model.FileDocumentation,
	"contributing": model.FileDocumentation,
	"authors":      model.FileDocumentation,
	"notice":       model.FileDocumentation,
	"dockerfile":   model.FileConfiguration,
	"makefile":     model.FileConfiguration,
	"jenkinsfile":  model.FileConfiguration,
	"vagrantfile":  model.FileConfiguration,
	".gitignore":   model.FileConfiguration,
	".gitattributes": model.FileConfiguration,
	".editorconfig":  model.FileConfiguration,
	".dockerignore":  model.FileConfiguration,
}

type patternRule struct {
	pattern  string
	category model.FileCategory
}

// Substring rules, evaluated top to bottom. More specific intents first.
var filenamePatterns = []patternRule{
	{"_test.", model.FileTest},
	{".test.", model.FileTest},
	{".spec.", model.FileTest},
	{"/test/", model.FileTest},
	{"/tests/", model.FileTest},
	{"/spec/", model.FileTest},
	{"schema", model.FileDatabase},
	{"migration", model.FileDatabase},
	{"migrations", model.FileDatabase},
	{"seed_data", model.FileDatabase},
	{"stored_procedure", model.FileDatabase},
	{"architecture", model.FileArchitecture},
	{"uml", model.FileArchitecture},
	{"diagram", model.FileArchitecture},
	{"adr-", model.FileArchitecture},
	{"backlog", model.FileManagement},
	{"sprint-plan", model.FileManagement},
	{"roadmap", model.FileManagement},
	{"retrospective", model.FileManagement},
}

var extensions = map[string]model.FileCategory{
	".go":    model.FileCode,
	".py":    model.FileCode,
	".js":    model.FileCode,
	".jsx":   model.FileCode,
	".ts":    model.FileCode,
	".tsx":   model.FileCode,
	".java":  model.FileCode,
	".kt":    model.FileCode,
	".c":     model.FileCode,
	".h":     model.FileCode,
	".cpp":   model.FileCode,
	".hpp":   model.FileCode,
	".cs":    model.FileCode,
	".rb":    model.FileCode,
	".rs":    model.FileCode,
	".php":   model.FileCode,
	".swift": model.FileCode,
	".scala": model.FileCode,
	".sh":    model.FileCode,
	".css":   model.FileCode,
	".scss":  model.FileCode,
	".html":  model.FileCode,
	".vue":   model.FileCode,

	".md":   model.FileDocumentation,
	".rst":  model.FileDocumentation,
	".txt":  model.FileDocumentation,
	".adoc": model.FileDocumentation,
	".rtf":  model.FileDocumentation,

	".yml":        model.FileConfiguration,
	".yaml":       model.FileConfiguration,
	".json":       model.FileConfiguration,
	".toml":       model.FileConfiguration,
	".ini":        model.FileConfiguration,
	".cfg":        model.FileConfiguration,
	".conf":       model.FileConfiguration,
	".env":        model.FileConfiguration,
	".properties": model.FileConfiguration,
	".lock":       model.FileConfiguration,

	".sql": model.FileDatabase,
	".ddl": model.FileDatabase,

	".puml":   model.FileArchitecture,
	".drawio": model.FileArchitecture,
	".dot":    model.FileArchitecture,
}
