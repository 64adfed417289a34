package main

import (
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/danmuck/lsewire/internal/config"
	"github.com/danmuck/lsewire/internal/logging"
)

const defaultDumpPath = "cmd/lsedump/config.toml"

func main() {
	kind := flag.String("kind", "dump", "config kind: dump")
	output := flag.String("output", "", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "", "config path for validation (defaults to per-kind cmd path)")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()
	logging.ConfigureRuntime()

	if *kind != "dump" {
		log.Fatal().Str("kind", *kind).Msg("unknown config kind")
	}

	if *validate {
		path := *input
		if path == "" {
			path = defaultDumpPath
		}
		if _, err := config.LoadDumpConfig(path); err != nil {
			log.Fatal().Err(err).Msg("configgen failed")
		}
		log.Info().Str("kind", *kind).Str("path", path).Msg("validated config")
		return
	}

	target := *output
	if target == "" {
		target = defaultDumpPath
	}
	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal().Err(err).Msg("configgen failed")
	}
	log.Info().Str("kind", *kind).Str("path", target).Msg("wrote config template")
}
