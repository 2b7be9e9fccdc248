package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"xcalendar-icons/pkg/badge"
	"xcalendar-icons/pkg/batch"
	"xcalendar-icons/pkg/config"
	"xcalendar-icons/pkg/fonts"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	cfg, err := config.LoadIconsConfig(config.DefaultIconsConfigPath)
	if err != nil {
		log.Fatalf("failed to load icons config %q: %v", config.DefaultIconsConfigPath, err)
	}

	provider := fonts.NewProvider(cfg.Fonts)
	if path, ok := provider.Primary(); ok {
		log.WithField("font", path).Debug("using scalable font")
	} else {
		log.Debug("no scalable font found, using built-in bitmap font")
	}

	gen := badge.NewGenerator(provider, log.StandardLogger())
	if _, err := batch.Run(cfg, gen, os.Stdout); err != nil {
		log.Fatalf("failed to generate icons: %v", err)
	}
}
