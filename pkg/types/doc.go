// Package types holds the results commands return and renderers display.
package types
