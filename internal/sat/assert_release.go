//go:build !debugasserts

package sat

const debugAsserts = false
