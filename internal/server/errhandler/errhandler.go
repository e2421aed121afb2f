package errhandler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/web-ble/internal/errors"
)

var _ echo.HTTPErrorHandler = Handler{}.Handle

//go:generate options-gen -out-filename=errhandler_options.gen.go -from-struct=Options
type Options struct {
	logger         *zap.Logger `option:"mandatory" validate:"required"`
	productionMode bool        `option:"mandatory"`
}

// Handler keeps echo's default status codes and bodies, logs internal errors
// and hides their details in production mode.
type Handler struct {
	lg             *zap.Logger
	productionMode bool
}

func New(opts Options) (Handler, error) {
	if err := opts.Validate(); err != nil {
		return Handler{}, fmt.Errorf("validate options: %v", err)
	}

	return Handler{
		lg:             opts.logger,
		productionMode: opts.productionMode,
	}, nil
}

func (h Handler) Handle(err error, eCtx echo.Context) {
	if eCtx.Response().Committed {
		return
	}

	code, msg, details := h.processError(err)

	if code >= http.StatusInternalServerError {
		h.lg.Error("internal error",
			zap.Int("code", code),
			zap.String("path", eCtx.Request().URL.Path),
			zap.Error(err),
		)
	}

	if details != "" {
		msg = details
	}
	eCtx.Echo().DefaultHTTPErrorHandler(echo.NewHTTPError(code, msg), eCtx)
}

func (h Handler) processError(err error) (code int, msg string, details string) {
	code, msg, details = internalerrors.ProcessServerError(err)

	// Only internal errors carry details worth showing, and only outside production.
	if h.productionMode || code < http.StatusInternalServerError {
		details = ""
	}

	return code, msg, details
}
