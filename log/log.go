// Package log holds the process wide zap logger. Logs go to stderr so that stdout carries only
// command output, which keeps `hole_combo --json ...` pipeable.
package log

import (
	"go.uber.org/zap"
)

func init() {
	// call InitLog outside if need change cfg
	InitLog(DefaultDebugCfg())
}

var L *zap.Logger

func InitLog(cfg zap.Config) {
	var err error
	if L, err = cfg.Build(); err != nil {
		panic(err)
	}
}

// UseProd switches the global logger to the production config.
func UseProd(prod bool) {
	if prod {
		InitLog(DefaultProdCfg())
		return
	}
	InitLog(DefaultDebugCfg())
}

func DefaultDebugCfg() zap.Config {
	cfg := zap.NewDevelopmentConfig()
	// combo output goes to stdout, keep logs apart
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)

	return cfg
}

func DefaultProdCfg() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	return cfg
}
