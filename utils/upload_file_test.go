package utils

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func parseUpload(t *testing.T, parts map[string]string, contents map[string][]byte) []*multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for filename, contentType := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		if contentType != "" {
			h.Set("Content-Type", contentType)
		}
		pw, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		pw.Write(contents[filename])
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return req.MultipartForm.File["file"]
}

func TestReadUploadedFileSniffsMissingContentType(t *testing.T) {
	headers := parseUpload(t, map[string]string{"cover.png": ""}, map[string][]byte{"cover.png": pngHeader})

	f, err := ReadUploadedFile(headers[0], 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if f.ContentType != "image/png" {
		t.Fatalf("expected image/png, got %q", f.ContentType)
	}
	if f.Filename != "cover.png" || !bytes.Equal(f.Content, pngHeader) {
		t.Fatalf("unexpected file %+v", f)
	}
}

func TestReadUploadedFileKeepsBrowserContentType(t *testing.T) {
	headers := parseUpload(t, map[string]string{"syllabus.pdf": "application/pdf"}, map[string][]byte{"syllabus.pdf": []byte("hello")})

	f, err := ReadUploadedFile(headers[0], 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if f.ContentType != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", f.ContentType)
	}
}

func TestReadUploadedFileTooLarge(t *testing.T) {
	headers := parseUpload(t, map[string]string{"big.bin": "application/octet-stream"}, map[string][]byte{"big.bin": make([]byte, 64)})

	if _, err := ReadUploadedFiles(headers, 16); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}
