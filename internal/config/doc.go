// Package config loads re-cmake settings from the environment using Viper.
//
// There is no configuration file. Every setting has a default and can be
// overridden with an environment variable prefixed with RE_CMAKE_, for
// example RE_CMAKE_CMAKE=/opt/cmake/bin/cmake.
package config
