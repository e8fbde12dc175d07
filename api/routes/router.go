package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lcervantes/bistro-backend/api/controllers"
	"github.com/lcervantes/bistro-backend/api/middleware"
	cartsvc "github.com/lcervantes/bistro-backend/internal/carts"
	menusvc "github.com/lcervantes/bistro-backend/internal/menu"
	paymentsvc "github.com/lcervantes/bistro-backend/internal/payments"
	reviewsvc "github.com/lcervantes/bistro-backend/internal/reviews"
	statsvc "github.com/lcervantes/bistro-backend/internal/stats"
	usersvc "github.com/lcervantes/bistro-backend/internal/users"
	"github.com/lcervantes/bistro-backend/pkg/config"
	"github.com/lcervantes/bistro-backend/pkg/logger"
	"github.com/lcervantes/bistro-backend/pkg/metrics"
	"github.com/lcervantes/bistro-backend/pkg/redis"
	"github.com/lcervantes/bistro-backend/pkg/stripe"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	redisClient *redis.Client,
	userFinder middleware.UserFinder,
	usersService usersvc.Service,
	menuService menusvc.Service,
	reviewsService reviewsvc.Service,
	cartsService cartsvc.Service,
	paymentsService paymentsvc.Service,
	statsService statsvc.Service,
	intents stripe.IntentCreator,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	tokenPolicy := middleware.NewAuthRateLimitPolicy(
		"token",
		cfg.AuthRateLimit.TokenWindow,
		cfg.AuthRateLimit.TokenIPLimit,
		cfg.AuthRateLimit.TokenEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	// the gates compose explicitly: authed always runs before adminGate
	authed := middleware.Auth(cfg.JWT, logg)
	adminGate := middleware.RequireAdmin(userFinder, logg)

	r.Get("/", controllers.Root(cfg))
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.With(middleware.AuthRateLimit(tokenPolicy, redisClient, logg)).
		Post("/jwt", controllers.IssueToken(cfg.JWT, logg))
	r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).
		Post("/users", controllers.RegisterUser(usersService, logg))

	r.With(authed, adminGate).Get("/users", controllers.ListUsers(usersService, logg))
	r.With(authed, adminGate).Patch("/users/admin/{id}", controllers.GrantAdmin(usersService, logg))
	r.With(authed).Get("/users/admin/{email}", controllers.CheckAdmin(usersService, logg))

	r.Get("/menu", controllers.ListMenu(menuService, logg))
	r.With(authed, adminGate).Post("/menu", controllers.CreateMenuItem(menuService, logg))
	r.With(authed, adminGate).Delete("/menu/{id}", controllers.DeleteMenuItem(menuService, logg))
	r.With(authed).Get("/menu-stats", controllers.MenuStats(statsService, logg))

	r.Get("/review", controllers.ListReviews(reviewsService, logg))

	r.With(authed).Get("/carts", controllers.ListCart(cartsService, logg))
	r.With(authed).Post("/carts", controllers.AddCartItem(cartsService, logg))
	r.With(authed).Delete("/carts/{id}", controllers.RemoveCartItem(cartsService, logg))

	r.With(authed).Post("/create-payment-intent", controllers.CreatePaymentIntent(intents, logg))
	r.With(authed).Post("/payments", controllers.SettlePayment(paymentsService, logg))
	r.With(authed).Get("/payments", controllers.ListPayments(paymentsService, logg))

	r.With(authed, adminGate).Get("/admin-stats", controllers.AdminStats(statsService, logg))
	r.With(authed, adminGate).Get("/order-stats", controllers.OrderStats(statsService, logg))

	return r
}
