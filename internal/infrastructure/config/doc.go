// Package config handles loading and validating statedevice configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of every field, reported together
//   - Default value handling
//
// Usage:
//
//	cfg, err := config.LoadOrDefault("configs/statedevice.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Output.Format)
package config
