package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/folio/internal/timex"
)

const EnvPrefix = "FOLIO_CLI_"

func parseEnv(cfg *Config) error {
	opts := env.Options{
		Prefix: EnvPrefix,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(time.Duration(0)): func(v string) (any, error) {
				return timex.ParseDuration(v)
			},
		},
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
