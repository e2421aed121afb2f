package logger

import (
	"fmt"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap/zapcore"
)

func NewSentryClient(dsn, env, version string) (*sentry.Client, error) {
	return sentry.NewClient(sentry.ClientOptions{
		Dsn:         dsn,
		Release:     version,
		Environment: env,
	})
}

func newSentryCore(dsn, env, version string) (zapcore.Core, error) {
	client, err := NewSentryClient(dsn, env, version)
	if err != nil {
		return nil, fmt.Errorf("create sentry client: %v", err)
	}

	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   zapcore.InfoLevel,
		Tags: map[string]string{
			"component": "web-ble",
		},
	}, zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		return nil, fmt.Errorf("create zapsentry core: %v", err)
	}
	return core, nil
}
