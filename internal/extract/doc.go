// Package extract converts binary document payloads into plain text.
//
// Two backends are provided: PDFExtractor, a pure Go PDF reader that also
// reports the page count, and DocconvExtractor, which delegates to docconv
// and its external converters. New selects one by name.
package extract
