package testingh

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/web-ble/internal/logger"
	"github.com/zestagio/web-ble/internal/validator"
)

var Config config

type config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"error" validate:"required,oneof=debug info warn error"`
}

func init() {
	if err := envconfig.Process("TEST", &Config); err != nil {
		panic(fmt.Sprintf("parse testing config: %v", err))
	}

	if err := validator.Validator.Struct(Config); err != nil {
		panic(fmt.Sprintf("validate testing config: %v", err))
	}

	logger.MustInit(logger.NewOptions(Config.LogLevel))
}
