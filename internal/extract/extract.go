// Package extract pulls the embedded text layer out of PDF bytes.
//
// Only the text layer is read; scanned (image-only) pages contribute
// nothing, silently. A document with no extractable text yields the
// empty string, which is a valid result, not an error.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	rpdf "rsc.io/pdf"
)

// ExtractedText is the text of one source document, tagged with the
// filename it came from. Immutable once produced.
type ExtractedText struct {
	Name string
	Text string
}

// FromBytes extracts the concatenated page text of a single PDF. Pages
// whose text cannot be read are skipped; the document failing to open
// or to resolve is the only error condition. The library resolves PDF
// objects lazily and panics on corrupt ones, so the page walk runs
// behind a recover that turns the panic into the per-file error.
func FromBytes(data []byte, name string) (doc ExtractedText, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc = ExtractedText{}
			err = fmt.Errorf("read pdf %s: %v", name, rec)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ExtractedText{}, fmt.Errorf("open pdf %s: %w", name, err)
	}

	fonts := make(map[string]*pdf.Font)
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, fname := range p.Fonts() {
			if _, ok := fonts[fname]; !ok {
				f := p.Font(fname)
				fonts[fname] = &f
			}
		}
		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			sb.WriteString(trimmed)
			sb.WriteString("\n")
		}
	}
	return ExtractedText{Name: name, Text: sb.String()}, nil
}

// PageCount probes the PDF for its page count. Returns 0 when the bytes
// do not parse as a PDF at all, which callers use to reject unreadable
// uploads early. The reader panics on corrupt page trees; that counts
// as unreadable too.
func PageCount(data []byte) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()
	doc, err := rpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}
	return doc.NumPage()
}
