package config

import (
	"runtime"

	"github.com/agbru/exactsum/internal/natural"
)

// Threshold resolution chain (highest priority first):
//   1. CLI flags (--karatsuba-threshold, --bz-threshold, ...)
//   2. Environment variables (EXACTSUM_KARATSUBA_THRESHOLD, ...)
//   3. Static defaults in natural/thresholds.go

// ToThresholds overlays the configured thresholds on the engine defaults
// and validates the result.
func ToThresholds(cfg AppConfig) (natural.Thresholds, error) {
	th := natural.DefaultThresholds()
	overlay := []struct {
		value int
		dst   *int
	}{
		{cfg.KaratsubaThreshold, &th.KaratsubaMul},
		{cfg.ToomThreshold, &th.ToomCookMul},
		{cfg.KaratsubaSquareThreshold, &th.KaratsubaSquare},
		{cfg.ToomSquareThreshold, &th.ToomCookSquare},
		{cfg.BZThreshold, &th.BurnikelZiegler},
		{cfg.BZOffset, &th.BurnikelZieglerOffset},
		{cfg.MaxWords, &th.MaxWords},
	}
	for _, o := range overlay {
		if o.value != 0 {
			*o.dst = o.value
		}
	}
	if err := th.Validate(); err != nil {
		return natural.Thresholds{}, err
	}
	return th, nil
}

// ApplyAdaptiveSettings fills settings left at zero from the hardware.
func ApplyAdaptiveSettings(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers()
	}
	return cfg
}

// EstimateWorkers picks a worker count for the parallel reduction.
func EstimateWorkers() int {
	return max(runtime.NumCPU(), 1)
}
