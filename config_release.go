//go:build guard_release

package guard

const defaultFullCheck = false
