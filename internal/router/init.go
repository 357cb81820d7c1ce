package router

import (
	"github.com/profissaovlog/profissaovlog-api/internal/application"
	"github.com/profissaovlog/profissaovlog-api/internal/container"
	handlers "github.com/profissaovlog/profissaovlog-api/internal/interface/http"
	"github.com/profissaovlog/profissaovlog-api/internal/router/modules"
)

// InitModules builds the services and handlers from the container
// singletons and adds every feature module to the registry.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	store := container.GetStore()
	jwt := container.GetJWT()

	catalogSvc := application.NewCatalogService(
		store.Users, store.Categories, store.Videos, store.Ratings,
		logger,
		container.GetGCS(), cfg.GCSBucket,
		container.GetES(), cfg.ESVideosIndex,
	)
	commerceSvc := application.NewCommerceService(store.Videos, store.Purchases, store.Ratings, catalogSvc, logger)
	accountSvc := application.NewAccountService(store.Users, jwt, container.GetRedis(), logger)

	r.Add(modules.NewAccount(handlers.NewAccountHandler(accountSvc, logger, cfg.CookieDomain, cfg.CookieSecure), jwt))
	r.Add(modules.NewCatalog(handlers.NewCatalogHandler(catalogSvc, logger), jwt))
	r.Add(modules.NewCommerce(handlers.NewCommerceHandler(commerceSvc, logger), jwt))
	r.Add(modules.NewDashboard(handlers.NewDashboardHandler(commerceSvc, logger), jwt))
}
