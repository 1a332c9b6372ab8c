package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kojoantwi/shoppoint-backend/api/controllers"
	"github.com/kojoantwi/shoppoint-backend/api/middleware"
	"github.com/kojoantwi/shoppoint-backend/internal/expenditures"
	"github.com/kojoantwi/shoppoint-backend/internal/inventory"
	"github.com/kojoantwi/shoppoint-backend/internal/pos"
	"github.com/kojoantwi/shoppoint-backend/internal/sales"
	"github.com/kojoantwi/shoppoint-backend/internal/stock"
	"github.com/kojoantwi/shoppoint-backend/internal/stockpayments"
	"github.com/kojoantwi/shoppoint-backend/pkg/config"
	"github.com/kojoantwi/shoppoint-backend/pkg/logger"
	pkgredis "github.com/kojoantwi/shoppoint-backend/pkg/redis"
)

// RouterParams carries everything the HTTP surface needs. Idempotency and
// Pinger are usually the same redis client; callers must leave them nil
// (not a nil concrete pointer) when redis is not configured.
type RouterParams struct {
	Config        *config.Config
	Logger        *logger.Logger
	Idempotency   pkgredis.IdempotencyStore
	Pinger        pkgredis.Pinger
	Ledger        *inventory.Ledger
	Sessions      *pos.Sessions
	Sales         sales.Service
	Expenditures  expenditures.Service
	Stock         stock.Service
	StockPayments stockpayments.Service
	Registry      *prometheus.Registry
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.Pinger))
	})

	if cfg.Metrics.Enabled && p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(p.Idempotency, cfg.Retail, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(p.Ledger, logg))
			r.Post("/", controllers.ProductUpsert(p.Ledger, logg))
			r.Get("/{productId}", controllers.ProductGet(p.Ledger, logg))
		})

		r.Route("/pos", func(r chi.Router) {
			r.Get("/", controllers.PosTillList(p.Sessions, logg))
			r.Route("/{tillId}", func(r chi.Router) {
				r.Get("/", controllers.PosSessionFetch(p.Sessions, logg))
				r.Patch("/", controllers.PosSetFields(p.Sessions, logg))
				r.Put("/mode-of-payment", controllers.PosSetModeOfPayment(p.Sessions, logg))
				r.Post("/lines", controllers.PosAddLine(p.Sessions, p.Ledger, logg))
				r.Route("/lines/{productId}", func(r chi.Router) {
					r.Delete("/", controllers.PosRemoveLine(p.Sessions, logg))
					r.Put("/", controllers.PosSetLineQuantity(p.Sessions, logg))
					r.Post("/increment", controllers.PosIncrementLine(p.Sessions, logg))
					r.Post("/decrement", controllers.PosDecrementLine(p.Sessions, logg))
				})
				r.Post("/checkout", controllers.Checkout(p.Sales, logg))
				r.Post("/cancel", controllers.CancelSession(p.Sales, logg))
			})
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", controllers.SaleList(p.Sales, logg))
			r.Get("/{saleId}", controllers.SaleDetail(p.Sales, logg))
		})

		r.Route("/expenditures", func(r chi.Router) {
			r.Get("/", controllers.ExpenditureList(p.Expenditures, logg))
			r.Post("/", controllers.ExpenditureCreate(p.Expenditures, logg))
			r.Route("/{expenditureId}", func(r chi.Router) {
				r.Get("/", controllers.ExpenditureDetail(p.Expenditures, logg))
				r.Patch("/", controllers.ExpenditureUpdate(p.Expenditures, logg))
				r.Delete("/", controllers.ExpenditureDelete(p.Expenditures, logg))
			})
		})

		r.Route("/stock", func(r chi.Router) {
			r.Get("/", controllers.StockList(p.Stock, logg))
			r.Post("/", controllers.StockCreate(p.Stock, logg))
			r.Route("/{batchId}", func(r chi.Router) {
				r.Get("/", controllers.StockDetail(p.Stock, logg))
				r.Post("/approve", controllers.StockApprove(p.Stock, logg))
				r.Post("/reject", controllers.StockReject(p.Stock, logg))
			})
		})

		r.Route("/creditors", func(r chi.Router) {
			r.Get("/", controllers.CreditorList(p.Stock, logg))
			r.Get("/{creditorId}", controllers.CreditorDetail(p.Stock, logg))
			r.Get("/{creditorId}/payments", controllers.CreditorPayments(p.StockPayments, logg))
		})

		r.Route("/stock-payments", func(r chi.Router) {
			r.Get("/", controllers.StockPaymentList(p.StockPayments, logg))
			r.Post("/", controllers.StockPaymentCreate(p.StockPayments, logg))
			r.Get("/{paymentId}", controllers.StockPaymentDetail(p.StockPayments, logg))
		})
	})

	return r
}
