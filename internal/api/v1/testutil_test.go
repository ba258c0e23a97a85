package v1_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/media"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/server/middleware"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/tile"
)

// ---------------------------------------------------------------------------
// Context helpers — inject email/role into context for DoCtx
// ---------------------------------------------------------------------------

func authedCtx(email string) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, middleware.ContextKeyEmail, email)
	return ctx
}

func adminCtx(email string) context.Context {
	ctx := authedCtx(email)
	ctx = context.WithValue(ctx, middleware.ContextKeyUserRole, domain.RoleAdmin)
	return ctx
}

func youthCtx(email string) context.Context {
	ctx := authedCtx(email)
	ctx = context.WithValue(ctx, middleware.ContextKeyUserRole, domain.RoleYouth)
	return ctx
}

// ---------------------------------------------------------------------------
// Mock AccessResolver
// ---------------------------------------------------------------------------

type mockAccessResolver struct {
	validateAccessFunc func(ctx context.Context, email string) (*domain.AccessGrant, error)
	resolveRoleFunc    func(ctx context.Context, email string) (*domain.RoleInfo, error)
}

func (m *mockAccessResolver) ValidateAccess(ctx context.Context, email string) (*domain.AccessGrant, error) {
	return m.validateAccessFunc(ctx, email)
}

func (m *mockAccessResolver) ResolveRole(ctx context.Context, email string) (*domain.RoleInfo, error) {
	return m.resolveRoleFunc(ctx, email)
}

// ---------------------------------------------------------------------------
// Mock TileService
// ---------------------------------------------------------------------------

type mockTileService struct {
	createFunc       func(ctx context.Context, in tile.CreateInput, createdBy string) (*domain.Tile, error)
	listByStatusFunc func(ctx context.Context, status domain.TileStatus) ([]*domain.Tile, error)
	getFunc          func(ctx context.Context, id uuid.UUID) (*domain.Tile, error)
	updateFunc       func(ctx context.Context, id uuid.UUID, in tile.UpdateInput) (*domain.Tile, error)
}

func (m *mockTileService) Create(ctx context.Context, in tile.CreateInput, createdBy string) (*domain.Tile, error) {
	return m.createFunc(ctx, in, createdBy)
}

func (m *mockTileService) ListByStatus(ctx context.Context, status domain.TileStatus) ([]*domain.Tile, error) {
	return m.listByStatusFunc(ctx, status)
}

func (m *mockTileService) Get(ctx context.Context, id uuid.UUID) (*domain.Tile, error) {
	return m.getFunc(ctx, id)
}

func (m *mockTileService) Update(ctx context.Context, id uuid.UUID, in tile.UpdateInput) (*domain.Tile, error) {
	return m.updateFunc(ctx, id, in)
}

// ---------------------------------------------------------------------------
// Mock LayoutService
// ---------------------------------------------------------------------------

type mockLayoutService struct {
	saveDraftFunc func(ctx context.Context, tiles []domain.TilePosition) (*domain.Layout, error)
	publishFunc   func(ctx context.Context, tiles []domain.TilePosition) (*domain.Layout, error)
	draftFunc     func(ctx context.Context) (*domain.Layout, error)
	activeFunc    func(ctx context.Context) (*domain.Layout, error)
}

func (m *mockLayoutService) SaveDraft(ctx context.Context, tiles []domain.TilePosition) (*domain.Layout, error) {
	return m.saveDraftFunc(ctx, tiles)
}

func (m *mockLayoutService) Publish(ctx context.Context, tiles []domain.TilePosition) (*domain.Layout, error) {
	return m.publishFunc(ctx, tiles)
}

func (m *mockLayoutService) Draft(ctx context.Context) (*domain.Layout, error) {
	return m.draftFunc(ctx)
}

func (m *mockLayoutService) Active(ctx context.Context) (*domain.Layout, error) {
	return m.activeFunc(ctx)
}

// ---------------------------------------------------------------------------
// Mock YouthEmailService
// ---------------------------------------------------------------------------

type mockYouthEmailService struct {
	addFunc       func(ctx context.Context, raw string) (*domain.YouthEmail, error)
	bulkAddFunc   func(ctx context.Context, raw []string) (domain.BulkUploadResult, error)
	listFunc      func(ctx context.Context, q domain.YouthEmailQuery) (*domain.YouthEmailPage, error)
	setStatusFunc func(ctx context.Context, ids []uuid.UUID, active bool) error
	deleteFunc    func(ctx context.Context, ids []uuid.UUID) error
}

func (m *mockYouthEmailService) Add(ctx context.Context, raw string) (*domain.YouthEmail, error) {
	return m.addFunc(ctx, raw)
}

func (m *mockYouthEmailService) BulkAdd(ctx context.Context, raw []string) (domain.BulkUploadResult, error) {
	return m.bulkAddFunc(ctx, raw)
}

func (m *mockYouthEmailService) List(ctx context.Context, q domain.YouthEmailQuery) (*domain.YouthEmailPage, error) {
	return m.listFunc(ctx, q)
}

func (m *mockYouthEmailService) SetStatus(ctx context.Context, ids []uuid.UUID, active bool) error {
	return m.setStatusFunc(ctx, ids, active)
}

func (m *mockYouthEmailService) Delete(ctx context.Context, ids []uuid.UUID) error {
	return m.deleteFunc(ctx, ids)
}

// ---------------------------------------------------------------------------
// Mock MediaService
// ---------------------------------------------------------------------------

type mockMediaService struct {
	createUploadURLFunc func(ctx context.Context, req media.UploadRequest) (*media.UploadGrant, error)
}

func (m *mockMediaService) CreateUploadURL(ctx context.Context, req media.UploadRequest) (*media.UploadGrant, error) {
	return m.createUploadURLFunc(ctx, req)
}
