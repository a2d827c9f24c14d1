// Package config provides type-safe environment variable loading with
// per-type caching.
//
// Configuration structs declare their variables with caarlos0/env tags:
//
//	type StorageConfig struct {
//		Driver     string `env:"STORAGE_DRIVER" envDefault:"memory"`
//		SQLitePath string `env:"STORAGE_SQLITE_PATH" envDefault:"sessionkit.db"`
//	}
//
//	var cfg StorageConfig
//	config.MustLoad(&cfg)
//
// A .env file in the working directory is loaded automatically before the
// first parse. Each struct type is parsed once per process lifetime and
// cached, so components loading the same config type always agree.
package config
