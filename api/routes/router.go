package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/broger/storefront-backend/api/controllers"
	"github.com/broger/storefront-backend/api/middleware"
	cartsvc "github.com/broger/storefront-backend/internal/cart"
	checkoutsvc "github.com/broger/storefront-backend/internal/checkout"
	menusvc "github.com/broger/storefront-backend/internal/menu"
	paymentsvc "github.com/broger/storefront-backend/internal/payments"
	reviewsvc "github.com/broger/storefront-backend/internal/reviews"
	optionsvc "github.com/broger/storefront-backend/internal/serviceoptions"
	settingsvc "github.com/broger/storefront-backend/internal/settings"
	sidebarsvc "github.com/broger/storefront-backend/internal/sidebar"
	"github.com/broger/storefront-backend/pkg/config"
	"github.com/broger/storefront-backend/pkg/logger"
	"github.com/broger/storefront-backend/pkg/metrics"
)

// Services bundles everything the router wires into controllers.
type Services struct {
	Menu           menusvc.Service
	Reviews        reviewsvc.Service
	Cart           cartsvc.Service
	Checkout       checkoutsvc.Service
	ServiceOptions optionsvc.Service
	Payments       paymentsvc.Service
	Settings       settingsvc.Service
	Sidebar        sidebarsvc.Service
}

// Deps carries the infrastructure handles the router needs beyond services.
type Deps struct {
	DB          controllers.Pinger
	Redis       controllers.Pinger
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
}

// NewRouter assembles the full HTTP surface: health probes, the public
// storefront API, and the back-office admin API.
func NewRouter(cfg *config.Config, logg *logger.Logger, svcs Services, deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.ExtraCORSOrigins...),
		middleware.Metrics(deps.HTTPMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": deps.DB,
			"redis":    deps.Redis,
		}))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Get("/ping", controllers.PublicPing())
		r.Get("/menu", controllers.GetMenu(svcs.Menu, logg))
		r.Get("/service-options", controllers.ListServiceOptions(svcs.ServiceOptions, logg))
		r.Get("/payment-methods", controllers.ListPaymentMethods(svcs.Payments, logg))
		r.Get("/settings", controllers.ListSettings(svcs.Settings, logg))
		r.Get("/sidebar-content", controllers.GetSidebar(svcs.Sidebar, logg))

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", controllers.ListReviews(svcs.Reviews, logg))
			r.Post("/", controllers.SubmitReview(svcs.Reviews, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(svcs.Cart, logg))
			r.Delete("/", controllers.ClearCart(svcs.Cart, logg))
			r.Post("/items", controllers.AddCartItem(svcs.Cart, logg))
			r.Patch("/items/{lineId}", controllers.UpdateCartItem(svcs.Cart, logg))
			r.Delete("/items/{lineId}", controllers.RemoveCartItem(svcs.Cart, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/quote", controllers.QuoteCheckout(svcs.Checkout, logg))
			r.Post("/place", controllers.PlaceOrder(svcs.Checkout, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Get("/ping", controllers.AdminPing())

		r.Route("/menu-items", func(r chi.Router) {
			r.Get("/", controllers.AdminListMenuItems(svcs.Menu, logg))
			r.Post("/", controllers.AdminCreateMenuItem(svcs.Menu, logg))
			r.Put("/{itemId}", controllers.AdminUpdateMenuItem(svcs.Menu, logg))
			r.Delete("/{itemId}", controllers.AdminDeleteMenuItem(svcs.Menu, logg))
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", controllers.AdminListReviews(svcs.Reviews, logg))
			r.Patch("/{reviewId}", controllers.AdminModerateReview(svcs.Reviews, logg))
			r.Delete("/{reviewId}", controllers.AdminDeleteReview(svcs.Reviews, logg))
		})

		r.Route("/service-options", func(r chi.Router) {
			r.Get("/", controllers.AdminListServiceOptions(svcs.ServiceOptions, logg))
			r.Post("/", controllers.AdminCreateServiceOption(svcs.ServiceOptions, logg))
			r.Put("/{optionId}", controllers.AdminUpdateServiceOption(svcs.ServiceOptions, logg))
			r.Delete("/{optionId}", controllers.AdminDeleteServiceOption(svcs.ServiceOptions, logg))
		})

		r.Route("/payment-methods", func(r chi.Router) {
			r.Get("/", controllers.AdminListPaymentMethods(svcs.Payments, logg))
			r.Post("/", controllers.AdminCreatePaymentMethod(svcs.Payments, logg))
			r.Put("/{methodId}", controllers.AdminUpdatePaymentMethod(svcs.Payments, logg))
			r.Delete("/{methodId}", controllers.AdminDeletePaymentMethod(svcs.Payments, logg))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", controllers.AdminListSettings(svcs.Settings, logg))
			r.Put("/", controllers.AdminSetSetting(svcs.Settings, logg))
		})

		r.Put("/sidebar-content", controllers.AdminSetSidebarContent(svcs.Sidebar, logg))
	})

	return r
}
