package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const recoveryStackSize = 4 << 10

// NewRecovery turns a panic into a 500 and logs the request that caused it.
func NewRecovery(lg *zap.Logger) echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize:       recoveryStackSize,
		DisableStackAll: true,
		LogErrorFunc: func(eCtx echo.Context, err error, stack []byte) error {
			req := eCtx.Request()
			lg.Error("panic recovered",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.String("route", eCtx.Path()),
				zap.String("request_id", eCtx.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Error(err),
				zap.ByteString("stack", stack),
			)
			return err
		},
	})
}
