package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// FormData builds a multipart/form-data request body. The client forwards it
// unchanged and uses its own content type, never forcing JSON on it.
type FormData struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	closed bool
}

// NewFormData creates an empty multipart body.
func NewFormData() *FormData {
	fd := &FormData{}
	fd.writer = multipart.NewWriter(&fd.buf)
	return fd
}

// AddField appends a plain text field.
func (f *FormData) AddField(name, value string) error {
	if f.closed {
		return fmt.Errorf("apiclient: form data already sent")
	}
	return f.writer.WriteField(name, value)
}

// AddFile appends a file part streamed from r.
func (f *FormData) AddFile(fieldName, fileName string, r io.Reader) error {
	if f.closed {
		return fmt.Errorf("apiclient: form data already sent")
	}
	part, err := f.writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return fmt.Errorf("apiclient: create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("apiclient: copy form file: %w", err)
	}
	return nil
}

// ContentType returns the multipart content type including the boundary.
func (f *FormData) ContentType() string {
	return f.writer.FormDataContentType()
}

// Reader finalizes the body and returns it for sending. A FormData is
// single-use.
func (f *FormData) Reader() (io.Reader, error) {
	if !f.closed {
		if err := f.writer.Close(); err != nil {
			return nil, fmt.Errorf("apiclient: finalize form data: %w", err)
		}
		f.closed = true
	}
	return bytes.NewReader(f.buf.Bytes()), nil
}
