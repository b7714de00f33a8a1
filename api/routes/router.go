package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/serhatpolat/maktek-admin/api/controllers"
	"github.com/serhatpolat/maktek-admin/api/middleware"
	auditsvc "github.com/serhatpolat/maktek-admin/internal/audit"
	authsvc "github.com/serhatpolat/maktek-admin/internal/auth"
	bannersvc "github.com/serhatpolat/maktek-admin/internal/banners"
	brandsvc "github.com/serhatpolat/maktek-admin/internal/brands"
	catalogsvc "github.com/serhatpolat/maktek-admin/internal/catalogs"
	categorysvc "github.com/serhatpolat/maktek-admin/internal/categories"
	groupsvc "github.com/serhatpolat/maktek-admin/internal/groups"
	productsvc "github.com/serhatpolat/maktek-admin/internal/products"
	"github.com/serhatpolat/maktek-admin/pkg/config"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
)

// Services bundles everything the router wires into controllers.
type Services struct {
	Auth       authsvc.Service
	Products   productsvc.Service
	Groups     groupsvc.Service
	Brands     brandsvc.Service
	Categories categorysvc.Service
	Banners    bannersvc.Service
	Catalogs   catalogsvc.Service
	Audit      auditsvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	db controllers.Pinger,
	cache controllers.Pinger,
	registry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, db, cache))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(svcs.Auth, cfg, logg))
		r.Post("/logout", controllers.AuthLogout(cfg, logg))
		r.With(middleware.Auth(cfg.Session, logg)).Get("/me", controllers.AuthMe(svcs.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Session, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(svcs.Products, logg))
			r.Post("/", controllers.ProductSave(svcs.Products, logg))
			r.Get("/select", controllers.ProductSelectList(svcs.Products, logg))
			r.Get("/{productId}", controllers.ProductDetail(svcs.Products, logg))
			r.Put("/{productId}", controllers.ProductUpdate(svcs.Products, logg))
			r.Delete("/{productId}", controllers.ProductDelete(svcs.Products, logg))
			r.Delete("/{productId}/group", controllers.GroupRemoveProduct(svcs.Groups, logg))
		})

		r.Route("/product-groups", func(r chi.Router) {
			r.Get("/", controllers.GroupList(svcs.Groups, logg))
			r.Post("/", controllers.GroupCreate(svcs.Groups, logg))
			r.Get("/{groupId}", controllers.GroupDetail(svcs.Groups, logg))
			r.Put("/{groupId}", controllers.GroupUpdate(svcs.Groups, logg))
			r.Delete("/{groupId}", controllers.GroupDelete(svcs.Groups, logg))
			r.Get("/{groupId}/products", controllers.GroupProducts(svcs.Groups, logg))
			r.Post("/{groupId}/products", controllers.GroupAddProduct(svcs.Groups, logg))
		})

		r.Route("/brands", func(r chi.Router) {
			r.Get("/", controllers.BrandList(svcs.Brands, logg))
			r.Post("/", controllers.BrandCreate(svcs.Brands, logg))
			r.Get("/{brandId}", controllers.BrandDetail(svcs.Brands, logg))
			r.Put("/{brandId}", controllers.BrandUpdate(svcs.Brands, logg))
			r.Delete("/{brandId}", controllers.BrandDelete(svcs.Brands, logg))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.CategoryList(svcs.Categories, logg))
			r.Post("/", controllers.CategoryCreate(svcs.Categories, logg))
			r.Get("/{categoryId}", controllers.CategoryDetail(svcs.Categories, logg))
			r.Put("/{categoryId}", controllers.CategoryUpdate(svcs.Categories, logg))
			r.Delete("/{categoryId}", controllers.CategoryDelete(svcs.Categories, logg))
		})

		r.Route("/banners", func(r chi.Router) {
			r.Get("/", controllers.BannerList(svcs.Banners, logg))
			r.Post("/", controllers.BannerCreate(svcs.Banners, logg))
			r.Post("/reorder", controllers.BannerReorder(svcs.Banners, logg))
			r.Get("/{bannerId}", controllers.BannerDetail(svcs.Banners, logg))
			r.Put("/{bannerId}", controllers.BannerUpdate(svcs.Banners, logg))
			r.Delete("/{bannerId}", controllers.BannerDelete(svcs.Banners, logg))
		})

		r.Route("/catalogs", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(svcs.Catalogs, logg))
			r.Post("/", controllers.CatalogCreate(svcs.Catalogs, logg))
			r.Get("/{catalogId}", controllers.CatalogDetail(svcs.Catalogs, logg))
			r.Put("/{catalogId}", controllers.CatalogUpdate(svcs.Catalogs, logg))
			r.Delete("/{catalogId}", controllers.CatalogDelete(svcs.Catalogs, logg))
		})

		r.Get("/audit", controllers.AuditList(svcs.Audit, logg))
	})

	return r
}
