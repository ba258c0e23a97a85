package server

import (
	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/vishal-Gehlot-DrJoe/youth-portal/internal/api/v1"
)

func registerPublicRoutes(api huma.API, svcs Services) {
	v1.RegisterAccessRoutes(api, svcs.Resolver)
}

func registerAuthenticatedRoutes(api huma.API, svcs Services) {
	v1.RegisterRoleRoutes(api, svcs.Resolver)
	v1.RegisterTileRoutes(api, svcs.Tiles)
	v1.RegisterLayoutRoutes(api, svcs.Layouts)
}

func registerAdminRoutes(api huma.API, svcs Services) {
	v1.RegisterYouthEmailRoutes(api, svcs.YouthEmails)
	v1.RegisterMediaRoutes(api, svcs.Media)
}
