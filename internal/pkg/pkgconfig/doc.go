// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Values come from a YAML file loaded by Viper, and every key can be
// overridden from the environment using the UDP_TESTER_ prefix with dots
// replaced by underscores (for example UDP_TESTER_LOG_LEVEL). A few legacy
// variable names, such as MONGODB_URI, are bound explicitly.
package pkgconfig
