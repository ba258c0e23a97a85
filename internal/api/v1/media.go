package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/media"
)

type CreateUploadURLInput struct {
	Body struct {
		Filename      string `json:"filename" minLength:"1" doc:"Original filename"`
		ContentType   string `json:"contentType" minLength:"1" doc:"MIME type of the upload"`
		ContentLength int64  `json:"contentLength" minimum:"1" doc:"Upload size in bytes"`
	}
}

type CreateUploadURLOutput struct {
	Body Envelope[*media.UploadGrant]
}

// RegisterMediaRoutes wires presigned upload grants. Mounted behind the
// admin group; only layout editors upload tile imagery.
func RegisterMediaRoutes(api huma.API, svc MediaService) {
	huma.Register(api, huma.Operation{
		OperationID: "create-upload-url",
		Method:      http.MethodPost,
		Path:        "/media/upload-url",
		Summary:     "Mint a presigned upload URL for tile imagery",
		Tags:        []string{"Media"},
	}, func(ctx context.Context, input *CreateUploadURLInput) (*CreateUploadURLOutput, error) {
		grant, err := svc.CreateUploadURL(ctx, media.UploadRequest{
			Filename:      input.Body.Filename,
			ContentType:   input.Body.ContentType,
			ContentLength: input.Body.ContentLength,
		})
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				return nil, huma.Error400BadRequest(err.Error())
			}
			return nil, huma.Error500InternalServerError("failed to create upload URL", err)
		}

		return &CreateUploadURLOutput{Body: envelope(grant)}, nil
	})
}
