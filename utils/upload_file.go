package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/vnkhanh/e-course-admin/models"
)

var ErrFileTooLarge = errors.New("file exceeds upload limit")

// ReadUploadedFile loads a browser upload into memory. When the browser sent
// no content type it is sniffed from the bytes.
func ReadUploadedFile(fh *multipart.FileHeader, maxBytes int64) (models.UploadedFile, error) {
	if maxBytes > 0 && fh.Size > maxBytes {
		return models.UploadedFile{}, ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(content).String()
	}

	return models.UploadedFile{
		Filename:    fh.Filename,
		ContentType: contentType,
		Content:     content,
	}, nil
}

func ReadUploadedFiles(headers []*multipart.FileHeader, maxBytes int64) ([]models.UploadedFile, error) {
	files := make([]models.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		if fh == nil || fh.Filename == "" {
			continue
		}
		f, err := ReadUploadedFile(fh, maxBytes)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
