package model

type FileCategory int

const (
	FileUnclassified FileCategory = iota
	FileCode
	FileDocumentation
	FileConfiguration
	FileTest
	FileDatabase
	FileArchitecture
	FileManagement
)

// Weights discount non-code artifacts in volume metrics. They are fixed
// configuration, never contributor-specific. Unclassified files count as
// touched but contribute no weighted volume.
var fileCategoryWeights = map[FileCategory]float64{
	FileUnclassified:  0,
	FileCode:          1,
	FileDocumentation: 0.4,
	FileConfiguration: 0.5,
	FileTest:          0.9,
	FileDatabase:      0.8,
	FileArchitecture:  0.6,
	FileManagement:    0.3,
}

func (c FileCategory) Weight() float64 {
	return fileCategoryWeights[c]
}

func (c FileCategory) String() string {
	switch c {
	case FileCode:
		return "code"
	case FileDocumentation:
		return "documentation"
	case FileConfiguration:
		return "configuration"
	case FileTest:
		return "test"
	case FileDatabase:
		return "database"
	case FileArchitecture:
		return "architecture"
	case FileManagement:
		return "management"
	default:
		return "unclassified"
	}
}

func FileCategories() []FileCategory {
	return []FileCategory{
		FileCode, FileDocumentation, FileConfiguration, FileTest,
		FileDatabase, FileArchitecture, FileManagement, FileUnclassified,
	}
}
