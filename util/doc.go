// Package util provides small shared helpers for errkit packages.
package util
