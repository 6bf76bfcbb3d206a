// Package pkgconfig reads configuration through the Config interface.
//
// NewViper layers defaults, a YAML file, a .env file and the environment.
package pkgconfig
