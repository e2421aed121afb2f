package config

const (
	defaultEnv      = "dev"
	defaultLogLevel = "info"
	defaultWebAddr  = ":3000"
	defaultWebRoot  = "."
)

type Config struct {
	Global  GlobalConfig  `toml:"global"`
	Log     LogConfig     `toml:"log"`
	Sentry  SentryConfig  `toml:"sentry"`
	Servers ServersConfig `toml:"servers"`
}

// Default is used as is when no config file exists and as a base for partial files.
func Default() Config {
	return Config{
		Global: GlobalConfig{Env: defaultEnv},
		Log:    LogConfig{Level: defaultLogLevel},
		Servers: ServersConfig{
			Web: WebServerConfig{
				Addr: defaultWebAddr,
				Root: defaultWebRoot,
			},
		},
	}
}

type GlobalConfig struct {
	Env string `toml:"env" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Dsn string `toml:"dsn" validate:"omitempty,url"`
}

type ServersConfig struct {
	Web   WebServerConfig   `toml:"web"`
	Debug DebugServerConfig `toml:"debug"`
}

type WebServerConfig struct {
	Addr string `toml:"addr" validate:"required,hostname_port"`
	Root string `toml:"root" validate:"required"`
}

// DebugServerConfig with empty Addr disables the debug server.
type DebugServerConfig struct {
	Addr string `toml:"addr" validate:"omitempty,hostname_port"`
}
