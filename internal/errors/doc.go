// Package errors provides structured, actionable errors for topus.
//
// Every error carries a registered code (e.g., "T001") and a category. The
// categories that callers usually branch on have sentinels:
//
//	if errors.Is(err, errors.ErrMalformedBuilderInput) { ... }
//	if errors.Is(err, errors.ErrIOFailure) { ... }
//
// # Codes
//
//   - T001-T019: grouping grammar and element construction
//   - T100-T119: output sinks (files, object storage)
//   - T120-T139: topus.json
//   - T140-T159: command line
//   - T200-T219: page files
//
// # Usage
//
//	err := errors.New("T002").
//	    WithIndex(3).
//	    WithDetailf("key %q is followed by '=' but no value", "style")
//
//	fmt.Println(err.Format())
package errors
