// Package config handles loading and validating marquee's configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// Files with a .yaml or .yml extension are parsed as YAML; anything else is
// parsed as TOML.
//
// # Variants
//
// Two presentation presets exist:
//
//   - classified: reviews are classified, flagged reviews get the problem
//     colour and fill the last column, content is cut at 150 characters
//   - cycling: no classification, colours cycle by position, content is cut
//     at 400 characters
//
// The preset fills classification, flagged_column and content_limit; each
// can still be overridden individually.
//
// # Example
//
//	data_path = "~/reviews.csv"
//	columns = 3
//	variant = "classified"
//	theme = "night"
//	coast_on_manual = true
//	cell_height = 16
//	frame_rate = 60
//	log_level = "info"
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, parse errors and validation failures. Validation reports
// every bad field at once via errors.Join.
package config
