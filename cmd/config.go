package main

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath string `env:"BADGER_FILEPATH"`
	Colours        bool   `env:"COLOURS,default=false"`
}
