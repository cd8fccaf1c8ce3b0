package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "alu_portal/docs"
	"alu_portal/internal/adapter/http/handlers"
	"alu_portal/internal/app"
	"alu_portal/internal/infrastructure/config"
	"alu_portal/internal/infrastructure/telemetry"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "alu-portal"

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	shutdownTracer, err := telemetry.SetupTracer(ctx, serviceName, cfg.OTLPEndpoint, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialise tracer: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Printf("tracer shutdown error: %v", err)
		}
	}()

	container, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Printf("close error: %v", err)
		}
	}()

	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: NewRouter(container)}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("ALU portal listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("Failed to startup the application: %v", err)
	}
}

// NewRouter builds the gin engine over an already wired container.
func NewRouter(c *app.Container) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if c.Metrics != nil {
		router.GET("/metrics", gin.WrapH(c.Metrics.Handler()))
	}

	cartHandler := handlers.NewCartHandler(c.Carts)
	orderHandler := handlers.NewOrderHandler(c.Orders, c.OrderStatus)
	documentHandler := handlers.NewDocumentHandler(c.Documents)
	productHandler := handlers.NewProductHandler(c.Products)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPortalRoutes(v1, cartHandler, orderHandler, documentHandler, productHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(otelgin.Middleware(serviceName))
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
