// Package config loads the telewish configuration file. The config
// carries the wishlist service base URL, the opaque session credential
// (init data), and the theme name. The credential can also come from
// the TELEWISH_INIT_DATA environment variable, which wins over the
// file when both are set.
package config
