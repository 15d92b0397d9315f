package config

import (
	"fmt"
	"math"
)

var (
	validOrientations = map[string]bool{"horizontal": true, "vertical": true}
	validActivations  = map[string]bool{"automatic": true, "manual": true}
	validLogLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate checks the configuration and returns every problem found.
// The engines clamp bad values on their own, so callers usually report
// these as warnings and carry on.
func (c *Config) Validate() []error {
	var errs []error

	if p := c.Pagination; p != nil {
		if p.TotalItems < 0 {
			errs = append(errs, NewValidationError("pagination.total_items", fmt.Sprintf("must not be negative, got %d", p.TotalItems)))
		}
		if p.PageSize < 1 {
			errs = append(errs, NewValidationError("pagination.page_size", fmt.Sprintf("must be at least 1, got %d", p.PageSize)))
		}
		if p.Siblings < 0 {
			errs = append(errs, NewValidationError("pagination.siblings", fmt.Sprintf("must not be negative, got %d", p.Siblings)))
		}
	}

	if s := c.Slider; s != nil {
		if s.Max < s.Min {
			errs = append(errs, NewValidationError("slider.max", fmt.Sprintf("%g is below min %g", s.Max, s.Min)))
		}
		if s.Step <= 0 || math.IsNaN(s.Step) {
			errs = append(errs, NewValidationError("slider.step", fmt.Sprintf("must be positive, got %g", s.Step)))
		}
		if s.Default < s.Min || s.Default > s.Max {
			errs = append(errs, NewValidationError("slider.default", fmt.Sprintf("%g is outside [%g, %g]", s.Default, s.Min, s.Max)))
		}
	}

	if t := c.Tabs; t != nil {
		if t.Orientation != "" && !validOrientations[t.Orientation] {
			errs = append(errs, NewValidationError("tabs.orientation", fmt.Sprintf("must be 'horizontal' or 'vertical', got '%s'", t.Orientation)))
		}
		if t.Activation != "" && !validActivations[t.Activation] {
			errs = append(errs, NewValidationError("tabs.activation", fmt.Sprintf("must be 'automatic' or 'manual', got '%s'", t.Activation)))
		}
		seen := make(map[string]bool)
		for i, it := range t.Items {
			field := fmt.Sprintf("tabs.items[%d].id", i)
			if it.ID == "" {
				errs = append(errs, NewValidationError(field, "cannot be empty"))
				continue
			}
			if seen[it.ID] {
				errs = append(errs, NewValidationError(field, fmt.Sprintf("duplicate id '%s'", it.ID)))
			}
			seen[it.ID] = true
		}
	}

	for action, keys := range c.Keys {
		if len(keys) == 0 {
			errs = append(errs, NewValidationError("keys."+action, "at least one key is required"))
		}
	}

	if c.Log != nil && c.Log.Level != "" && !validLogLevels[c.Log.Level] {
		errs = append(errs, NewValidationError("log.level", fmt.Sprintf("unknown level '%s'", c.Log.Level)))
	}

	return errs
}
