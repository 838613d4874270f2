package xcmerge

// LanguageTable maps a message key to its raw translated text for one language.
type LanguageTable map[string]string

// Tables holds every loaded LanguageTable indexed by language code.
type Tables map[string]LanguageTable

// State is the translation state recorded on a string unit.
type State string

const (
	StateNew        State = "new"
	StateTranslated State = "translated"
)

// CatalogVersion is the format version written to every catalog.
const CatalogVersion = "1.0"

type StringUnit struct {
	State State  `json:"state"`
	Value string `json:"value"`
}

type Localization struct {
	StringUnit StringUnit `json:"stringUnit"`
}

type CatalogEntry struct {
	Comment       string                  `json:"comment"`
	Localizations map[string]Localization `json:"localizations"`
}

// Catalog is the consolidated string catalog. Field order matches the
// on-disk layout.
type Catalog struct {
	SourceLanguage string                  `json:"sourceLanguage"`
	Strings        map[string]CatalogEntry `json:"strings"`
	Version        string                  `json:"version"`
}

// LanguageFile pairs a language code with the table file that holds it.
type LanguageFile struct {
	Code string `yaml:"code"`
	File string `yaml:"file"`
}
