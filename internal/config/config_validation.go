// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimitRequests < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimitRequests > 0 && cfg.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("%w: rate limit requires a positive window", ErrInvalidServerConfigs)
	}

	u, err := url.Parse(cfg.Engine.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidEngineConfigs, cfg.Engine.BaseURL)
	}
	if cfg.Engine.Project == "" || cfg.Engine.APIVersion == "" {
		return fmt.Errorf("%w: project and api version are required", ErrInvalidEngineConfigs)
	}

	if cfg.Region.Dataset == "" ||
		cfg.Region.DistrictField == "" || cfg.Region.DistrictName == "" ||
		cfg.Region.ProvinceField == "" || cfg.Region.ProvinceName == "" {
		return ErrInvalidRegionConfigs
	}

	return nil
}
