package config

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/zestagio/web-ble/internal/validator"
)

// ParseAndValidate reads filename over Default. A missing file is not an error.
func ParseAndValidate(filename string) (Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(filename, &conf); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return conf, err
	}

	if err := validator.Validator.Struct(conf); err != nil {
		return conf, err
	}

	return conf, nil
}
