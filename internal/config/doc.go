// Package config handles configuration loading and merging for wiggle.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags and positional arguments (--height, --width, --delay, --space, ...)
//  2. Environment variables (WIGGLE_HEIGHT, WIGGLE_WIDTH, WIGGLE_DELAY, WIGGLE_SPACE, ...)
//  3. YAML config file (--config path, .wiggle.yaml in the working directory,
//     or ~/.config/wiggle/.wiggle.yaml)
//  4. Defaults from package wave
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Environment Variables
//
//   - WIGGLE_HEIGHT: steps per wave cycle (integer)
//   - WIGGLE_WIDTH: amplitude scale (integer)
//   - WIGGLE_DELAY: pause between frames in milliseconds (number)
//   - WIGGLE_SPACE: fill character
//   - WIGGLE_DEBUG: set to "true" or "1" to enable debug output
//   - WIGGLE_NO_USAGE: set to "true" or "1" to skip the usage log
//   - WIGGLE_USAGE_LOG: path of the usage log
package config
