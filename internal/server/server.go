package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/web-ble/internal/middlewares"
)

const (
	readHeaderTimeout = time.Second
	shutdownTimeout   = 3 * time.Second
)

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	logger            *zap.Logger           `option:"mandatory" validate:"required"`
	addr              string                `option:"mandatory" validate:"required,hostname_port"`
	handlersRegistrar func(e *echo.Echo)    `option:"mandatory" validate:"required"`
	errorHandler      echo.HTTPErrorHandler `option:"mandatory" validate:"required"`
}

type Server struct {
	lg  *zap.Logger
	srv *http.Server
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = opts.errorHandler

	e.Use(
		middlewares.NewRequestID(),
		middlewares.NewRequestLogger(opts.logger),
		middlewares.NewRecovery(opts.logger),
	)

	opts.handlersRegistrar(e)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           e,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return &Server{
		lg:  opts.logger,
		srv: srv,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run binds the address before serving, so a busy port fails fast.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %q: %v", s.srv.Addr, err)
	}

	_, port, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		return multierr.Append(fmt.Errorf("split listener addr: %v", err), ln.Close())
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return s.srv.Shutdown(ctx) //nolint:contextcheck // graceful shutdown with new context
	})

	eg.Go(func() error {
		s.lg.Info("Running app on port http://localhost:"+port, zap.String("addr", s.srv.Addr))

		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %v", err)
		}
		return nil
	})

	return eg.Wait()
}
