// Package serverweb serves the Web Bluetooth viewer page and its assets.
package serverweb

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	cssPrefix    = "/css"
	imagesPrefix = "/images"
	indexFile    = "index.html"
)

var methods = []string{http.MethodGet, http.MethodHead}

//go:generate options-gen -out-filename=routes_options.gen.go -from-struct=Options
type Options struct {
	logger *zap.Logger `option:"mandatory" validate:"required"`
	assets fs.FS       `option:"mandatory" validate:"required"`
}

// Routes is the fixed table of the asset root: /css/*, /images/* and /.
type Routes struct {
	index  echo.HandlerFunc
	css    fs.FS
	images fs.FS
}

func New(opts Options) (*Routes, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	css, err := fs.Sub(opts.assets, "css")
	if err != nil {
		return nil, fmt.Errorf("sub css: %v", err)
	}

	images, err := fs.Sub(opts.assets, "images")
	if err != nil {
		return nil, fmt.Errorf("sub images: %v", err)
	}

	if _, err := fs.Stat(opts.assets, indexFile); err != nil {
		opts.logger.Warn("index page is not available", zap.String("file", indexFile), zap.Error(err))
	}

	return &Routes{
		index:  echo.StaticFileHandler(indexFile, opts.assets),
		css:    css,
		images: images,
	}, nil
}

// Register binds the routes. Prefixes match whole path segments only,
// so /cssfoo falls through to the not found handler.
func (r *Routes) Register(e *echo.Echo) {
	e.Match(methods, "/", r.Index)
	e.Match(methods, cssPrefix+"/*", echo.StaticDirectoryHandler(r.css, false))
	e.Match(methods, imagesPrefix+"/*", echo.StaticDirectoryHandler(r.images, false))
}

func (r *Routes) Index(eCtx echo.Context) error {
	return r.index(eCtx)
}
