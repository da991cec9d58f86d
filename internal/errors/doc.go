// Package errors provides the coded, structured errors used across elt.
//
// Every error carries a short code (e.g. "E003") that maps to a registered
// template holding its category, a one-line message and a longer detail.
// Call sites add what they know: a location in a tree file, a suggestion,
// an example, or the underlying error.
//
// # Error Categories
//
//   - builder: element construction (missing document, DOM rejection,
//     property shape mismatch)
//   - config: elt.json loading and validation
//   - build: wasm compilation and bundling
//   - tree: declarative tree files
//   - publish: bundle upload
//   - cli: command-line usage
//
// # Matching
//
// Two errors match with errors.Is when their codes are equal, so a
// template created with New can serve as a sentinel:
//
//	var ErrMissingContext = errors.New(errors.CodeMissingContext)
//
//	if errors.Is(err, ErrMissingContext) { ... }
//
// # Usage
//
//	err := errors.New(errors.CodeShapeMismatch).
//	    WithDetail(`property "onclick" needs a callback`).
//	    WithSuggestion("Wrap the handler with elt.Callback")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E003: Property shape mismatch
//	//
//	//   property "onclick" needs a callback
//	//
//	//   Hint: Wrap the handler with elt.Callback
package errors
