// Package escape decodes backslash escape notation coming from raw command-line text.
//
// Recognized pairs map to their C literals:
//
//	\n \t \v \b \r \f \a \\ \? \' \"
//
// Any other pair \X decodes to X itself. A lone trailing backslash has nothing to
// escape and is kept as a literal '\'.
//
// Decoding works on bytes: multi-byte UTF-8 sequences and invalid bytes are copied
// through untouched.
package escape
