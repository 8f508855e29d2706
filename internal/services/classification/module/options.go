package module

import "github.com/Ancientfall/logisticsdashboard-sub006/internal/platform/config"

// Options holds configuration settings for the classification module
type Options struct {
	Workers  int
	PageSize int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("CORE_CLASSIFY_")
	return Options{
		Workers:  cf.MayInt("WORKERS", 2),
		PageSize: cf.MayInt("PAGE_SIZE", 500),
	}
}
