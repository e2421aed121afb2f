package serverdebug

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zestagio/web-ble/internal/buildinfo"
	"github.com/zestagio/web-ble/internal/logger"
	"github.com/zestagio/web-ble/internal/server"
	"github.com/zestagio/web-ble/internal/server/errhandler"
)

const nameServerDebug = "server-debug"

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	addr string `option:"mandatory" validate:"required,hostname_port"`
}

// Server exposes operator pages next to the web server. It is never bound to the public port.
type Server struct {
	lg  *zap.Logger
	srv *server.Server
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	s := &Server{lg: zap.L().Named(nameServerDebug)}

	errHandler, err := errhandler.New(errhandler.NewOptions(s.lg, false))
	if err != nil {
		return nil, fmt.Errorf("create err handler: %v", err)
	}

	srv, err := server.New(server.NewOptions(s.lg, opts.addr, s.registerHandlers, errHandler.Handle))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}
	s.srv = srv

	return s, nil
}

func (s *Server) registerHandlers(e *echo.Echo) {
	index := newIndexPage()

	e.GET("/version", s.Version)
	index.addPage("/version", "Get build information")

	e.GET("/log/level", echo.WrapHandler(logger.Level))
	e.PUT("/log/level", echo.WrapHandler(logger.Level))
	index.addPage("/log/level", "Get current log level")

	pprofMux := http.NewServeMux()
	pprofMux.HandleFunc("/debug/pprof/", pprof.Index)
	pprofMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	pprofMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	pprofMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	pprofMux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	e.GET("/debug/pprof/*", echo.WrapHandler(pprofMux))
	index.addPage("/debug/pprof/", "Go std profiler")
	index.addPage("/debug/pprof/profile?seconds=30", "Take half-min profile")

	e.GET("/debug/error", s.DebugError)
	index.addPage("/debug/error", "Send an error event to Sentry")

	e.GET("/", index.handler)
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler()
}

func (s *Server) Run(ctx context.Context) error {
	return s.srv.Run(ctx)
}

func (s *Server) Version(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, buildinfo.BuildInfo)
}

func (s *Server) DebugError(eCtx echo.Context) error {
	s.lg.Error("debug error event",
		zap.String("version", buildinfo.Version()),
		zap.String("request_id", eCtx.Response().Header().Get(echo.HeaderXRequestID)),
	)

	return eCtx.String(http.StatusOK, "event sent")
}
