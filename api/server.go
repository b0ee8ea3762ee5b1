package api

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/banachtech/vasicek/data"
	db "github.com/banachtech/vasicek/db/sqlc"
	"github.com/banachtech/vasicek/mc"
	"github.com/banachtech/vasicek/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// Server serves HTTP requests for the short rate model service.
type Server struct {
	config   util.Config
	store    db.Store
	router   *gin.Engine
	limiters *limiters
	// source refreshes stored series, nil without a FRED api key.
	source data.Source
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config util.Config, store db.Store) *Server {
	server := &Server{
		config:   config,
		store:    store,
		limiters: newLimiters(config.Server.RateLimit, config.Server.RateBurst),
	}
	if fred, err := data.NewFredClient(config.Fred.APIKey, config.Fred.RPS); err != nil {
		log.Printf("series updates disabled: %v", err)
	} else {
		server.source = fred
	}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	router.GET("/health", server.health)
	router.POST("/users", server.createUser)

	authRoutes := router.Group("/v1").Use(server.authentication, server.rateLimit)
	authRoutes.GET("/series/:id", server.getSeries)
	authRoutes.POST("/series/:id/update", server.updateSeries)
	authRoutes.POST("/calibrate", server.calibrate)
	authRoutes.POST("/curve", server.curve)
	authRoutes.POST("/simulate", server.simulate)
	authRoutes.POST("/arbitrage", server.arbitrage)
	authRoutes.POST("/backtest", server.backtest)
	server.router = router
}

// Handler wraps the router with CORS handling.
func (server *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: server.config.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(server.router)
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (server *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// statusCode maps model and storage errors to HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, mc.ErrInvalidInput), errors.Is(err, mc.ErrDomain):
		return http.StatusBadRequest
	case errors.Is(err, mc.ErrCalibration):
		return http.StatusUnprocessableEntity
	case errors.Is(err, sql.ErrNoRows):
		return http.StatusNotFound
	}
	var upstream *data.HTTPError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusCode(err), errorResponse(err))
}
