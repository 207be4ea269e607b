//go:build debugasserts

package sat

const debugAsserts = true
