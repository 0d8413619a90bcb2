package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Builder Errors (T001-T019)
	// ============================================

	"T001": {
		Category: CategoryBuilder,
		Message:  "Unrecognized builder item",
		DocURL:   "https://topus.dev/docs/errors/T001",
	},
	"T002": {
		Category: CategoryBuilder,
		Message:  "Attribute assignment without a value",
		DocURL:   "https://topus.dev/docs/errors/T002",
	},
	"T003": {
		Category: CategoryBuilder,
		Message:  "Attribute assignment without a key",
		DocURL:   "https://topus.dev/docs/errors/T003",
	},
	"T004": {
		Category: CategoryBuilder,
		Message:  "Incomplete hyphenated attribute key",
		DocURL:   "https://topus.dev/docs/errors/T004",
	},
	"T005": {
		Category: CategoryBuilder,
		Message:  "Empty name",
		DocURL:   "https://topus.dev/docs/errors/T005",
	},
	"T006": {
		Category: CategoryBuilder,
		Message:  "Duplicate separator",
		DocURL:   "https://topus.dev/docs/errors/T006",
	},
	"T007": {
		Category: CategoryBuilder,
		Message:  "Attribute after separator",
		DocURL:   "https://topus.dev/docs/errors/T007",
	},
	"T008": {
		Category: CategoryBuilder,
		Message:  "Nil node",
		DocURL:   "https://topus.dev/docs/errors/T008",
	},
	"T009": {
		Category: CategoryBuilder,
		Message:  "Leaf node cannot be extended",
		DocURL:   "https://topus.dev/docs/errors/T009",
	},
	"T010": {
		Category: CategoryBuilder,
		Message:  "Invalid custom element name",
		DocURL:   "https://topus.dev/docs/errors/T010",
	},

	// ============================================
	// Output Errors (T100-T119)
	// ============================================

	"T100": {
		Category: CategoryIO,
		Message:  "Could not create output",
		DocURL:   "https://topus.dev/docs/errors/T100",
	},
	"T101": {
		Category: CategoryIO,
		Message:  "Could not write output",
		DocURL:   "https://topus.dev/docs/errors/T101",
	},
	"T102": {
		Category: CategoryIO,
		Message:  "Invalid output destination",
		DocURL:   "https://topus.dev/docs/errors/T102",
	},

	// ============================================
	// Configuration Errors (T120-T139)
	// ============================================

	"T120": {
		Category: CategoryConfig,
		Message:  "Invalid topus.json",
		DocURL:   "https://topus.dev/docs/errors/T120",
	},
	"T121": {
		Category: CategoryConfig,
		Message:  "Invalid preview port",
		DocURL:   "https://topus.dev/docs/errors/T121",
	},
	"T122": {
		Category: CategoryConfig,
		Message:  "Invalid duration",
		DocURL:   "https://topus.dev/docs/errors/T122",
	},
	"T123": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		DocURL:   "https://topus.dev/docs/errors/T123",
	},

	// ============================================
	// CLI Errors (T140-T159)
	// ============================================

	"T140": {
		Category: CategoryCLI,
		Message:  "Missing argument",
		DocURL:   "https://topus.dev/docs/errors/T140",
	},
	"T141": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		DocURL:   "https://topus.dev/docs/errors/T141",
	},

	// ============================================
	// Page File Errors (T200-T219)
	// ============================================

	"T200": {
		Category: CategoryPage,
		Message:  "Could not read page file",
		DocURL:   "https://topus.dev/docs/errors/T200",
	},
	"T201": {
		Category: CategoryPage,
		Message:  "Invalid page YAML",
		DocURL:   "https://topus.dev/docs/errors/T201",
	},
	"T202": {
		Category: CategoryPage,
		Message:  "Invalid page node",
		DocURL:   "https://topus.dev/docs/errors/T202",
	},
	"T203": {
		Category: CategoryPage,
		Message:  "Invalid attribute entry",
		DocURL:   "https://topus.dev/docs/errors/T203",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
