// Package mockapi serves a local stand-in for the skip catalog service.
//
// It answers GET /skips/by-location with the bundled example offers so the
// selection UI can be run and demonstrated without network access. A fixed
// failure status can be configured to exercise the error and retry paths.
package mockapi

import (
	"context"
	_ "embed"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/httpclient"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/logging"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
)

//go:embed fixtures/offers.json
var fixture []byte

// OffersPath is the route that lists offers for a location.
const OffersPath = "/skips/by-location"

const shutdownTimeout = 5 * time.Second

// Server is the mock catalog service.
type Server struct {
	offers     []skip.Offer
	failStatus int
	logger     *logging.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithFailStatus makes every offers request answer with status. Zero
// disables the failure.
func WithFailStatus(status int) Option {
	return func(s *Server) { s.failStatus = status }
}

// WithLogger sets the logger used for request logging.
func WithLogger(l *logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithOffers replaces the bundled offers.
func WithOffers(offers []skip.Offer) Option {
	return func(s *Server) { s.offers = offers }
}

// New creates a Server backed by the bundled offers.
func New(opts ...Option) (*Server, error) {
	offers, err := skip.DecodeOffers(fixture)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bundled offers")
	}

	s := &Server{offers: offers, logger: logging.NopLogger()}
	for _, opt := range opts {
		opt(s)
	}
	if s.failStatus != 0 && (s.failStatus < 400 || s.failStatus > 599) {
		return nil, errors.NewValidationError("must be an HTTP error status").
			WithField("fail_status").WithValue(s.failStatus)
	}
	s.logger = s.logger.WithComponent("mockapi")
	return s, nil
}

// Offers returns the offers the server knows about.
func (s *Server) Offers() []skip.Offer {
	out := make([]skip.Offer, len(s.offers))
	copy(out, s.offers)
	return out
}

// Handler builds the gin engine serving the mock routes.
func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Accept", "Content-Type", httpclient.RequestIDHeader},
		ExposeHeaders:   []string{httpclient.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET(OffersPath, s.listOffers)
	return router
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mock catalog listening", "addr", addr, "fail_status", s.failStatus)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "mock catalog stopped")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to shut down mock catalog")
	}
	s.logger.Info("mock catalog stopped")
	return nil
}

func (s *Server) listOffers(c *gin.Context) {
	postcode := strings.TrimSpace(c.Query("postcode"))
	area := strings.TrimSpace(c.Query("area"))
	if postcode == "" || area == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "postcode and area are required"})
		return
	}

	if s.failStatus != 0 {
		c.JSON(s.failStatus, gin.H{"error": http.StatusText(s.failStatus)})
		return
	}

	c.JSON(http.StatusOK, s.match(postcode, area))
}

// match returns the offers for a location. Unknown locations get an empty
// list rather than an error, like the real service.
func (s *Server) match(postcode, area string) []skip.Offer {
	out := make([]skip.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		if strings.EqualFold(o.Postcode, postcode) && strings.EqualFold(o.Area, area) {
			out = append(out, o)
		}
	}
	return out
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logger := s.logger
		if id := c.GetHeader(httpclient.RequestIDHeader); id != "" {
			logger = logger.WithRequestID(id)
			c.Header(httpclient.RequestIDHeader, id)
		}

		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
