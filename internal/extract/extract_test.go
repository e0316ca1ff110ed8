package extract

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalPDF builds a syntactically complete PDF with the given number
// of empty pages, computing xref offsets so both readers accept it.
func minimalPDF(pages int) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	contentObj := 3 + pages
	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), pages))
	for i := 0; i < pages; i++ {
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> /Contents %d 0 R >>\nendobj\n",
			3+i, contentObj))
	}
	stream := "BT ET"
	writeObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
		contentObj, len(stream), stream))

	xrefPos := buf.Len()
	size := contentObj + 1
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefPos)
	return buf.Bytes()
}

// corruptKids breaks the page tree's Kids array in place, keeping the
// byte length (and so the xref offsets) intact: the document still
// opens, but resolving any page hits the bad token.
func corruptKids(data []byte) []byte {
	return bytes.Replace(data, []byte("[3 0 R"), []byte("[) 0 R"), 1)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 3, PageCount(minimalPDF(3)))
	assert.Equal(t, 1, PageCount(minimalPDF(1)))
}

func TestPageCountRejectsNonPDF(t *testing.T) {
	assert.Equal(t, 0, PageCount([]byte("plain text, not a pdf")))
	assert.Equal(t, 0, PageCount(nil))
}

func TestFromBytesEmptyTextIsValid(t *testing.T) {
	// Pages without a text layer contribute nothing, silently.
	doc, err := FromBytes(minimalPDF(2), "empty.pdf")
	require.NoError(t, err)
	assert.Equal(t, "empty.pdf", doc.Name)
	assert.Empty(t, doc.Text)
}

func TestFromBytesRejectsNonPDF(t *testing.T) {
	_, err := FromBytes([]byte("plain text, not a pdf"), "junk.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "junk.pdf")
}

func TestFromBytesCorruptPageTreeIsAnError(t *testing.T) {
	// The document opens fine; the corruption only surfaces while
	// resolving pages, where the library panics instead of returning.
	_, err := FromBytes(corruptKids(minimalPDF(2)), "corrupt.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt.pdf")
}

func TestPageCountCorruptPageTreeIsZero(t *testing.T) {
	assert.Equal(t, 0, PageCount(corruptKids(minimalPDF(2))))
}
