// Package config provides configuration management for the hbs-render command.
//
// Configuration is loaded from environment variables and validated on startup.
// Only TEMPLATE_PATH is required; output goes to stdout unless OUTPUT_PATH is set.
//
// MAPPERS and COMPARATORS hold named CEL expressions as name=>expression pairs
// separated by semicolons:
//
//	MAPPERS="double=>item + item;name=>item.name"
//	COMPARATORS="desc=>a < b ? 1 : (a > b ? -1 : 0)"
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg)
package config
