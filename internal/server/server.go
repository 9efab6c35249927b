package server

import (
	"fundflow/internal/config"
	"fundflow/internal/handler"
	authmw "fundflow/internal/middleware"
	"fundflow/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo             *echo.Echo
	cfg              *config.Config
	authService      service.AuthService
	authHandler      *handler.AuthHandler
	campaignHandler  *handler.CampaignHandler
	paywayHandler    *handler.PaywayHandler
	dashboardHandler *handler.DashboardHandler
	mockGateway      *handler.MockGatewayHandler
}

func NewServer(
	cfg *config.Config,
	authService service.AuthService,
	campaignService service.CampaignService,
	paymentService service.PaymentService,
	dashboardService service.DashboardService,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:             e,
		cfg:              cfg,
		authService:      authService,
		authHandler:      handler.NewAuthHandler(authService),
		campaignHandler:  handler.NewCampaignHandler(campaignService),
		paywayHandler:    handler.NewPaywayHandler(paymentService),
		dashboardHandler: handler.NewDashboardHandler(dashboardService),
		mockGateway:      handler.NewMockGatewayHandler(cfg.BaseURL),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/register", s.authHandler.Register)
	auth.POST("/login", s.authHandler.Login)

	// -------- campaigns --------
	requireAuth := authmw.RequireAuth(s.authService)

	api.GET("/campaigns", s.campaignHandler.List)
	api.GET("/campaigns/:id", s.campaignHandler.Get)
	api.GET("/campaigns/:id/comments", s.campaignHandler.Comments)
	api.POST("/campaigns", s.campaignHandler.Create, requireAuth)
	api.POST("/comments/clear", s.campaignHandler.ClearComments, requireAuth)

	// -------- payway --------
	payway := api.Group("/payway")
	payway.POST("/create", s.paywayHandler.CreateSession, requireAuth)
	payway.GET("/qr", s.paywayHandler.QRCode)

	// -------- payway callbacks --------
	payway.GET("/callback", s.paywayHandler.HandleCallback)

	// the mock gateway route only exists in development builds
	if s.cfg.IsDevelopment() {
		payway.GET("/mock-gateway", s.mockGateway.Show)
	}

	// -------- dashboard --------
	dashboard := api.Group("/dashboard", requireAuth)
	dashboard.GET("/donations", s.dashboardHandler.GetDonations)
	dashboard.POST("/donations", s.dashboardHandler.AddDonation)
	dashboard.GET("/goals", s.dashboardHandler.GetGoals)
	dashboard.POST("/goals", s.dashboardHandler.AddGoal)
	dashboard.DELETE("/goals/:id", s.dashboardHandler.DeleteGoal)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
