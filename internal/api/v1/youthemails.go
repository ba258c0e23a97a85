package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

type ListYouthEmailsInput struct {
	Page      int    `query:"page" minimum:"0" doc:"Page number (1-based)"`
	PageSize  int    `query:"pageSize" minimum:"0" maximum:"200" doc:"Entries per page"`
	Search    string `query:"search" doc:"Substring match on email"`
	IsActive  string `query:"isActive" enum:",true,false" doc:"Filter by active flag"`
	StartDate string `query:"startDate" doc:"Earliest creation date (YYYY-MM-DD)"`
	EndDate   string `query:"endDate" doc:"Latest creation date, inclusive (YYYY-MM-DD)"`
	SortBy    string `query:"sortBy" enum:",createdAt,email" doc:"Sort field"`
	SortOrder string `query:"sortOrder" enum:",asc,desc" doc:"Sort direction"`
}

type ListYouthEmailsOutput struct {
	Body Envelope[*domain.YouthEmailPage]
}

type AddYouthEmailInput struct {
	Body struct {
		Email string `json:"email" minLength:"1" doc:"Email to whitelist"`
	}
}

type AddYouthEmailOutput struct {
	Body Envelope[*domain.YouthEmail]
}

type BulkAddYouthEmailsInput struct {
	Body struct {
		Emails []string `json:"emails" doc:"Raw emails as uploaded; cleaned and deduplicated server-side"`
	}
}

type BulkAddYouthEmailsOutput struct {
	Body Envelope[domain.BulkUploadResult]
}

type SetYouthEmailStatusInput struct {
	Body struct {
		IDs      []uuid.UUID `json:"ids" minItems:"1" doc:"Whitelist entry IDs"`
		IsActive bool        `json:"isActive" doc:"Target active flag"`
	}
}

type DeleteYouthEmailsInput struct {
	Body struct {
		IDs []uuid.UUID `json:"ids" minItems:"1" doc:"Whitelist entry IDs"`
	}
}

type YouthEmailAckOutput struct {
	Body Envelope[*struct{}]
}

// RegisterYouthEmailRoutes wires whitelist management. All routes here are
// mounted behind the admin group, so handlers skip per-request role checks.
func RegisterYouthEmailRoutes(api huma.API, svc YouthEmailService) {
	huma.Register(api, huma.Operation{
		OperationID: "list-youth-emails",
		Method:      http.MethodGet,
		Path:        "/youth-emails",
		Summary:     "List whitelist entries",
		Tags:        []string{"YouthEmails"},
	}, func(ctx context.Context, input *ListYouthEmailsInput) (*ListYouthEmailsOutput, error) {
		q := domain.YouthEmailQuery{
			Page:     input.Page,
			PageSize: input.PageSize,
			Search:   input.Search,
			SortBy:   domain.YouthEmailSortField(input.SortBy),
			SortDesc: input.SortOrder != "asc",
		}

		if input.IsActive != "" {
			active := input.IsActive == "true"
			q.IsActive = &active
		}
		if input.StartDate != "" {
			t, err := time.Parse("2006-01-02", input.StartDate)
			if err != nil {
				return nil, huma.Error400BadRequest("invalid startDate: " + input.StartDate)
			}
			q.StartDate = &t
		}
		if input.EndDate != "" {
			t, err := time.Parse("2006-01-02", input.EndDate)
			if err != nil {
				return nil, huma.Error400BadRequest("invalid endDate: " + input.EndDate)
			}
			q.EndDate = &t
		}

		page, err := svc.List(ctx, q)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list whitelist entries", err)
		}

		return &ListYouthEmailsOutput{Body: envelope(page)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "add-youth-email",
		Method:        http.MethodPost,
		Path:          "/youth-emails",
		Summary:       "Add a single whitelist entry",
		Tags:          []string{"YouthEmails"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *AddYouthEmailInput) (*AddYouthEmailOutput, error) {
		entry, err := svc.Add(ctx, input.Body.Email)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrValidation):
				return nil, huma.Error400BadRequest("invalid email address")
			case errors.Is(err, domain.ErrConflict):
				return nil, huma.Error409Conflict("email is already whitelisted")
			default:
				return nil, huma.Error500InternalServerError("failed to add whitelist entry", err)
			}
		}

		return &AddYouthEmailOutput{Body: envelope(entry)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "bulk-add-youth-emails",
		Method:      http.MethodPost,
		Path:        "/youth-emails/bulk",
		Summary:     "Bulk-add whitelist entries, ignoring duplicates",
		Tags:        []string{"YouthEmails"},
	}, func(ctx context.Context, input *BulkAddYouthEmailsInput) (*BulkAddYouthEmailsOutput, error) {
		result, err := svc.BulkAdd(ctx, input.Body.Emails)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to bulk-add whitelist entries", err)
		}

		return &BulkAddYouthEmailsOutput{Body: envelope(result)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "set-youth-email-status",
		Method:      http.MethodPatch,
		Path:        "/youth-emails/status",
		Summary:     "Activate or deactivate whitelist entries",
		Tags:        []string{"YouthEmails"},
	}, func(ctx context.Context, input *SetYouthEmailStatusInput) (*YouthEmailAckOutput, error) {
		if err := svc.SetStatus(ctx, input.Body.IDs, input.Body.IsActive); err != nil {
			return nil, huma.Error500InternalServerError("failed to update whitelist status", err)
		}

		return &YouthEmailAckOutput{Body: envelope[*struct{}](nil)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-youth-emails",
		Method:      http.MethodPost,
		Path:        "/youth-emails/delete",
		Summary:     "Delete whitelist entries",
		Tags:        []string{"YouthEmails"},
	}, func(ctx context.Context, input *DeleteYouthEmailsInput) (*YouthEmailAckOutput, error) {
		if err := svc.Delete(ctx, input.Body.IDs); err != nil {
			return nil, huma.Error500InternalServerError("failed to delete whitelist entries", err)
		}

		return &YouthEmailAckOutput{Body: envelope[*struct{}](nil)}, nil
	})
}
