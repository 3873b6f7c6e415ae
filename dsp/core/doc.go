// Package core holds small slice and numeric helpers shared by the
// spectrum processing packages.
package core
