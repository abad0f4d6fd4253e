//go:build debug

package entity

import "fmt"

func contractViolation(format string, args ...any) {
	panic(fmt.Sprintf("contract violation: "+format, args...))
}
