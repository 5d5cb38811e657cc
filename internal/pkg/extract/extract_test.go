package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// buildDocx packs a word/document.xml body into an in-memory .docx archive.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

const docxHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`

func TestFromUploadDocx(t *testing.T) {
	Convey("FromUpload extracts paragraph text from .docx files", t, func() {
		Convey("paragraphs are joined with newlines in document order", func() {
			data := buildDocx(t, docxHeader+`<w:body>
<w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
<w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t> paragraph.</w:t></w:r></w:p>
</w:body></w:document>`)

			So(FromUpload("requirements.docx", data), ShouldEqual,
				"First paragraph.\nSecond paragraph.")
		})

		Convey("empty paragraphs survive as blank lines", func() {
			data := buildDocx(t, docxHeader+`<w:body>
<w:p><w:r><w:t>above</w:t></w:r></w:p>
<w:p/>
<w:p><w:r><w:t>below</w:t></w:r></w:p>
</w:body></w:document>`)

			So(FromUpload("report.DOCX", data), ShouldEqual, "above\n\nbelow")
		})

		Convey("a corrupt archive becomes a readable placeholder, not an error", func() {
			text := FromUpload("broken.docx", []byte("this is not a zip"))

			So(text, ShouldStartWith, "Error reading file: ")
		})

		Convey("an archive without a document part becomes a placeholder too", func() {
			var buf bytes.Buffer
			zw := zip.NewWriter(&buf)
			w, _ := zw.Create("unrelated.txt")
			_, _ = w.Write([]byte("nope"))
			_ = zw.Close()

			So(FromUpload("odd.docx", buf.Bytes()), ShouldStartWith, "Error reading file: ")
		})
	})
}

func TestFromUploadPlainText(t *testing.T) {
	Convey("FromUpload decodes non-docx uploads as UTF-8", t, func() {
		Convey("valid UTF-8 passes through unchanged", func() {
			So(FromUpload("notes.txt", []byte("hello world")), ShouldEqual, "hello world")
		})

		Convey("invalid byte sequences are dropped rather than failing", func() {
			So(FromUpload("notes.txt", []byte("hel\xfflo\xfe")), ShouldEqual, "hello")
		})

		Convey("unknown extensions take the plain-text path", func() {
			So(FromUpload("script.py", []byte("print('hi')")), ShouldEqual, "print('hi')")
		})
	})
}
