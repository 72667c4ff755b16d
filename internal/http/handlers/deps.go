package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/config"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/repos"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/services"
)

type Deps struct {
	PhoneHandler    *PhoneHandler
	ListingHandler  *ListingHandler
	OverrideHandler *OverrideHandler
	ImportHandler   *ImportHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	phoneRepo := repos.NewPhoneRepo(db)

	invSvc := services.NewInventoryService(phoneRepo)
	listSvc := services.NewListingService(phoneRepo)
	importSvc := services.NewImportService(phoneRepo)

	return &Deps{
		PhoneHandler:    &PhoneHandler{Inv: invSvc, Phones: phoneRepo},
		ListingHandler:  &ListingHandler{Listings: listSvc, Phones: phoneRepo},
		OverrideHandler: &OverrideHandler{Listings: listSvc, Phones: phoneRepo},
		ImportHandler:   &ImportHandler{Importer: importSvc, UploadDir: cfg.UploadDir},
	}
}
