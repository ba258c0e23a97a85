package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/vishal-Gehlot-DrJoe/youth-portal/internal/api/v1"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/media"
)

func TestCreateUploadURL(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockMediaService{
			createUploadURLFunc: func(_ context.Context, req media.UploadRequest) (*media.UploadGrant, error) {
				assert.Equal(t, "camp.png", req.Filename)
				assert.Equal(t, "image/png", req.ContentType)
				assert.EqualValues(t, 1024, req.ContentLength)
				return &media.UploadGrant{
					UploadURL: "https://bucket.s3.us-east-2.amazonaws.com/abc.png?X-Amz-Signature=sig",
					PublicURL: "https://bucket.s3.us-east-2.amazonaws.com/abc.png",
					ViewURL:   "https://bucket.s3.us-east-2.amazonaws.com/abc.png?X-Amz-Signature=view",
					Key:       "abc.png",
				}, nil
			},
		}

		v1.RegisterMediaRoutes(api, svc)

		resp := api.PostCtx(adminCtx("leader@troop.org"), "/media/upload-url", map[string]any{
			"filename":      "camp.png",
			"contentType":   "image/png",
			"contentLength": 1024,
		})

		require.Equal(t, http.StatusOK, resp.Code)

		var body struct {
			Success bool               `json:"success"`
			Data    *media.UploadGrant `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, "abc.png", body.Data.Key)
		assert.Contains(t, body.Data.UploadURL, "X-Amz-Signature")
	})

	t.Run("disallowed_type_400", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockMediaService{
			createUploadURLFunc: func(_ context.Context, _ media.UploadRequest) (*media.UploadGrant, error) {
				return nil, domain.ErrValidation
			},
		}

		v1.RegisterMediaRoutes(api, svc)

		resp := api.PostCtx(adminCtx("leader@troop.org"), "/media/upload-url", map[string]any{
			"filename":      "malware.exe",
			"contentType":   "application/octet-stream",
			"contentLength": 1024,
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		code, _ := errBody(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", code)
	})

	t.Run("zero_length_rejected_by_schema", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		v1.RegisterMediaRoutes(api, &mockMediaService{})

		resp := api.PostCtx(adminCtx("leader@troop.org"), "/media/upload-url", map[string]any{
			"filename":      "camp.png",
			"contentType":   "image/png",
			"contentLength": 0,
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}
