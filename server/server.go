// Package server serves the disambiguation web form and a JSON endpoint.
package server

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/revelaction/wordsense/disambig"
	"github.com/revelaction/wordsense/render"
)

const (
	DefaultSentence = "default"
	DefaultIndex    = -1

	shutdownTimeout = 5 * time.Second
)

// Disambiguator is implemented by disambig.Driver.
type Disambiguator interface {
	Disambiguate(sentence string, index int) (disambig.Result, error)
}

type Config struct {
	Title        string
	Stylesheet   string
	StaticDir    string
	Metrics      bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Server struct {
	app     *fiber.App
	d       Disambiguator
	cfg     Config
	logger  *zap.Logger
	metrics *metrics
}

func New(d Disambiguator, cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Title == "" {
		cfg.Title = render.DefaultTitle
	}
	if cfg.Stylesheet == "" {
		cfg.Stylesheet = render.DefaultStylesheet
	}

	s := &Server{d: d, cfg: cfg, logger: logger, metrics: newMetrics()}

	s.app = fiber.New(fiber.Config{
		AppName:               "wsd",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(recover.New())
	s.app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	s.app.Use(requestLogger(logger))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/", s.handleForm)

	s.app.Get("/wsd", s.handlePage)
	s.app.Post("/wsd", s.handlePage)
	// old CGI links
	s.app.Get("/cgi-bin/wsdfinal.py", s.handlePage)
	s.app.Post("/cgi-bin/wsdfinal.py", s.handlePage)

	s.app.Get("/api/disambiguate", s.handleAPI)

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if s.cfg.Metrics {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
	}

	if s.cfg.StaticDir != "" {
		s.app.Static("/static", s.cfg.StaticDir)
	}
}

// App returns the fiber application, f.ex. for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves on addr until ctx is canceled.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	}
}

func (s *Server) htmlRenderer(c *fiber.Ctx) *render.HTML {
	r := render.NewHTML(c)
	r.Title = s.cfg.Title
	r.Stylesheet = s.cfg.Stylesheet
	return r
}

func (s *Server) handleForm(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return s.htmlRenderer(c).Form("", DefaultIndex)
}

// handlePage answers the form with parameters sent and index.
func (s *Server) handlePage(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	r := s.htmlRenderer(c)

	sentence := c.FormValue("sent", DefaultSentence)
	indexStr := c.FormValue("index", strconv.Itoa(DefaultIndex))

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		s.metrics.failures.WithLabelValues(strconv.Itoa(fiber.StatusBadRequest)).Inc()
		c.Status(fiber.StatusBadRequest)
		return r.Error(sentence, DefaultIndex, errBadIndex(indexStr))
	}

	res, err := s.disambiguate(sentence, index)
	if err != nil {
		c.Status(StatusFor(err))
		return r.Error(sentence, index, err)
	}

	return r.Result(sentence, index, res)
}

func (s *Server) handleAPI(c *fiber.Ctx) error {
	sentence := c.Query("sent", DefaultSentence)
	indexStr := c.Query("index", strconv.Itoa(DefaultIndex))

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		s.metrics.failures.WithLabelValues(strconv.Itoa(fiber.StatusBadRequest)).Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errBadIndex(indexStr).Error()})
	}

	res, err := s.disambiguate(sentence, index)
	if err != nil {
		return c.Status(StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(render.NewResult(res))
}

func (s *Server) disambiguate(sentence string, index int) (disambig.Result, error) {
	start := time.Now()
	res, err := s.d.Disambiguate(sentence, index)
	s.metrics.duration.Observe(time.Since(start).Seconds())

	if err != nil {
		status := StatusFor(err)
		s.metrics.failures.WithLabelValues(strconv.Itoa(status)).Inc()
		if status == fiber.StatusInternalServerError {
			s.logger.Error("disambiguate", zap.String("sentence", sentence), zap.Int("index", index), zap.Error(err))
		}
		return disambig.Result{}, err
	}

	s.metrics.disambiguations.WithLabelValues(res.Method.String()).Inc()
	return res, nil
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code == fiber.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
