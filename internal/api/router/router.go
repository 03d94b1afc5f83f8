package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "partstock/docs" // Registra a especificação Swagger gerada pelo swag

	"partstock/internal/api/color"
	"partstock/internal/api/order"
	"partstock/internal/api/part"
	"partstock/internal/api/report"
	"partstock/internal/api/stock"
	"partstock/internal/api/user"
	"partstock/internal/domain"
	"partstock/internal/pkg/cache"
	"partstock/internal/pkg/logger"
	"partstock/internal/pkg/middleware"
)

// Handlers agrupa os Handlers já inicializados por injeção de dependências.
type Handlers struct {
	User   *user.Handler
	Part   *part.Handler
	Color  *color.Handler
	Stock  *stock.Handler
	Order  *order.Handler
	Report *report.Handler
}

// Options reúne a infraestrutura usada pelos middlewares.
type Options struct {
	TokenService middleware.TokenService
	Cache        cache.Client // nil desativa o rate limiting
	RateLimit    int
	RateWindow   time.Duration
	Logger       logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
//
// Leituras são públicas; escritas exigem JWT; ajuste de estoque, entregas
// e remoções exigem o papel admin.
func NewRouter(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares globais ---
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if opts.Cache != nil && opts.RateLimit > 0 {
		r.Use(middleware.RateLimiter(opts.Cache, opts.RateLimit, opts.RateWindow, opts.Logger))
	}

	// --- 2. Health Check e documentação ---
	r.Get("/ping", PingHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	authenticated := middleware.NewAuthMiddleware(opts.TokenService, opts.Logger)
	adminOnly := middleware.PermissionMiddleware(opts.Logger, domain.RoleAdmin)
	writers := middleware.PermissionMiddleware(opts.Logger, domain.RoleAdmin, domain.RoleUser)

	// --- 3. Rotas v1 ---
	r.Route("/v1", func(r chi.Router) {
		// A. Usuários
		r.Post("/register", h.User.RegisterUserHandler)
		r.Post("/login", h.User.LoginHandler)

		// B. Leituras públicas
		r.Get("/parts", h.Part.ListPartsHandler)
		r.Get("/parts/{id}", h.Part.GetPartByIDHandler)
		r.Get("/colors", h.Color.GetAllColorsHandler)
		r.Get("/colors/{id}", h.Color.GetColorByIDHandler)
		r.Get("/stocks", h.Stock.ListStocksHandler)
		r.Get("/stocks/{id}", h.Stock.GetStockByIDHandler)
		r.Get("/stocks/{id}/transactions", h.Stock.ListTransactionsHandler)
		r.Get("/stocks/{id}/ledger/verify", h.Stock.VerifyLedgerHandler)
		r.Get("/orders", h.Order.ListOrdersHandler)
		r.Get("/orders/{id}", h.Order.GetOrderByIDHandler)
		r.Get("/reports/transactions", h.Report.TransactionsReportHandler)
		r.Get("/reports/orders", h.Report.OrdersReportHandler)
		r.Get("/reports/dashboard", h.Report.DashboardHandler)

		// C. Escritas (usuário autenticado)
		r.Group(func(r chi.Router) {
			r.Use(authenticated)

			r.With(writers).Post("/parts", h.Part.CreatePartHandler)
			r.With(writers).Put("/parts/{id}", h.Part.UpdatePartHandler)
			r.With(writers).Post("/colors", h.Color.CreateColorHandler)
			r.With(writers).Put("/colors/{id}", h.Color.UpdateColorHandler)
			r.With(writers).Post("/stocks", h.Stock.CreateStockHandler)
			r.With(writers).Put("/stocks/{id}", h.Stock.UpdateStockHandler)
			r.With(writers).Post("/orders", h.Order.CreateOrderHandler)
			r.With(writers).Patch("/orders/{id}/status", h.Order.UpdateStatusHandler)

			// D. Operações administrativas
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/stocks/{id}/adjust", h.Stock.AdjustStockHandler)
				r.Post("/orders/{id}/deliveries", h.Order.RecordDeliveryHandler)
				r.Delete("/parts/{id}", h.Part.DeletePartHandler)
				r.Delete("/colors/{id}", h.Color.DeleteColorHandler)
			})
		})
	})

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
