package errors

// Codes used by the builder. They are exported because the root package
// derives its sentinels from them.
const (
	CodeMissingContext = "E001"
	CodeRejected       = "E002"
	CodeShapeMismatch  = "E003"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	// Explain is printed by Format under the message.
	Explain string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Builder Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryBuilder,
		Message:  "No active document",
		Explain:  "Elements and text nodes can only be created while a document is available. In the browser this is the window's document; elsewhere call dom.SetCurrent or pass a document to elt.New.",
	},
	"E002": {
		Category: CategoryBuilder,
		Message:  "DOM rejected the operation",
		Explain:  "The document refused to create an element, set an attribute, register a listener or append a child.",
	},
	"E003": {
		Category: CategoryBuilder,
		Message:  "Property shape mismatch",
		Explain:  "Keys starting with \"on\" must carry a callback; every other key must carry an attribute string.",
	},

	// ============================================
	// Config Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Explain:  "elt.json could not be read or parsed.",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Explain:  "The dev server port must be between 0 and 65535.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Project not found",
		Explain:  "No elt.json was found in the directory or any of its parents.",
	},

	// ============================================
	// Build Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryBuild,
		Message:  "Build failed",
		Explain:  "The wasm build failed. Check the output for compiler errors.",
	},
	"E121": {
		Category: CategoryBuild,
		Message:  "Go not found",
		Explain:  "Go is not installed or not in PATH.",
	},
	"E122": {
		Category: CategoryBuild,
		Message:  "wasm_exec.js not found",
		Explain:  "The JavaScript support file shipped with the Go toolchain could not be located under GOROOT.",
	},
	"E123": {
		Category: CategoryBuild,
		Message:  "Dev server failed",
		Explain:  "The development server could not start or stopped unexpectedly.",
	},

	// ============================================
	// Tree Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryTree,
		Message:  "Invalid tree file",
		Explain:  "The tree file is not valid YAML or JSON.",
	},
	"E141": {
		Category: CategoryTree,
		Message:  "Invalid node",
		Explain:  "A node must be a scalar (text) or a mapping with a tag, optional props and optional children.",
	},
	"E142": {
		Category: CategoryTree,
		Message:  "Unknown action",
		Explain:  "An event property names an action that was not provided.",
	},

	// ============================================
	// Publish Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Explain:  "Uploading the build output failed.",
	},
	"E161": {
		Category: CategoryPublish,
		Message:  "No bucket configured",
		Explain:  "Set publish.bucket in elt.json or pass --bucket.",
	},

	// ============================================
	// CLI Errors (E180-E199)
	// ============================================

	"E180": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Explain:  "The command was called with invalid arguments or flags.",
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

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
