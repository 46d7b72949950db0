package calculator

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

var calCfg Config

type Config struct {
	// flow regime switches from laminar to turbulent at this Reynolds number
	TransitionRe float64
	// correlations are documented up to this Reynolds number; beyond it the
	// result carries a warning
	MaxValidRe float64
	// growth rates closer to 1 than this are rejected as ill-conditioned
	GrowthRateEps float64

	// batch worker pool size
	Workers int
	// recent results kept by the server hub
	HistorySize int
}

func init() {
	file, err := ini.LooseLoad("conf/config.ini")
	if err != nil {
		log.Warn("config load failed, using defaults: ", err)
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	calCfg = Config{
		TransitionRe:  file.Section("calculator").Key("TransitionRe").MustFloat64(5e5),
		MaxValidRe:    file.Section("calculator").Key("MaxValidRe").MustFloat64(1e9),
		GrowthRateEps: file.Section("calculator").Key("GrowthRateEps").MustFloat64(1e-9),
		Workers:       file.Section("batch").Key("Workers").MustInt(4),
		HistorySize:   file.Section("server").Key("HistorySize").MustInt(64),
	}
}

// Cfg exposes the loaded configuration to the other packages.
func Cfg() Config {
	return calCfg
}
