package main

import (
	"fmt"

	"scriptdex/internal/config"
	"scriptdex/internal/search"
	"scriptdex/internal/store"
)

func loadEngine() (*search.Engine, error) {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return nil, err
	}

	handle := store.NewHandle()
	if err := handle.Reload(cfg.Data.Dir); err != nil {
		return nil, err
	}
	if handle.Snapshot().Len() == 0 {
		return nil, fmt.Errorf("record store %s is empty: run scriptdex build first", cfg.Data.Dir)
	}
	return search.New(handle), nil
}
