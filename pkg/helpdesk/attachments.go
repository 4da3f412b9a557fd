package helpdesk

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
)

// UploadResponse is the server's answer to a file upload.
type UploadResponse struct {
	Message    string     `json:"message"`
	Attachment Attachment `json:"attachment"`
}

// AttachmentService wraps the attachment endpoints.
type AttachmentService struct {
	client *apiclient.Client
}

// NewAttachmentService creates the attachment API wrapper.
func NewAttachmentService(client *apiclient.Client) *AttachmentService {
	return &AttachmentService{client: client}
}

// Upload streams a file to a ticket as multipart/form-data.
func (s *AttachmentService) Upload(ctx context.Context, ticketID int, fileName string, file io.Reader, userID int) (UploadResponse, error) {
	form := apiclient.NewFormData()
	if err := form.AddFile("file", fileName, file); err != nil {
		return UploadResponse{}, err
	}

	return apiclient.Call[UploadResponse](ctx, s.client, apiclient.Request{
		Path:   fmt.Sprintf("/attachments/upload/%d", ticketID),
		Method: http.MethodPost,
		Params: map[string]any{"userId": userID},
		Body:   form,
	})
}

// ListByTicket returns a ticket's attachments.
func (s *AttachmentService) ListByTicket(ctx context.Context, ticketID int) ([]Attachment, error) {
	return apiclient.Call[[]Attachment](ctx, s.client, apiclient.Request{
		Path: fmt.Sprintf("/attachments/ticket/%d", ticketID),
	})
}

// Delete removes an attachment.
func (s *AttachmentService) Delete(ctx context.Context, id, userID int) error {
	_, err := s.client.Do(ctx, apiclient.Request{
		Path:   fmt.Sprintf("/attachments/%d", id),
		Method: http.MethodDelete,
		Params: map[string]any{"userId": userID},
	})
	return err
}

// DownloadURL returns the relative path a browser or curl can fetch the file
// from; downloads bypass the JSON envelope.
func (s *AttachmentService) DownloadURL(id int) string {
	return fmt.Sprintf("/attachments/%d/download", id)
}
