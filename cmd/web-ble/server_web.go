package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/zestagio/web-ble/internal/server"
	serverweb "github.com/zestagio/web-ble/internal/server-web"
	"github.com/zestagio/web-ble/internal/server/errhandler"
)

const nameServerWeb = "server-web"

func initServerWeb(
	productionMode bool,
	addr string,
	root string,
) (*server.Server, error) {
	lg := zap.L().Named(nameServerWeb)

	routes, err := serverweb.New(serverweb.NewOptions(lg, os.DirFS(root)))
	if err != nil {
		return nil, fmt.Errorf("create routes: %v", err)
	}

	errHandler, err := errhandler.New(errhandler.NewOptions(lg, productionMode))
	if err != nil {
		return nil, fmt.Errorf("create err handler: %v", err)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		addr,
		routes.Register,
		errHandler.Handle,
	))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}

	return srv, nil
}
