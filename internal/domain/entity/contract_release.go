//go:build !debug

package entity

import "log"

func contractViolation(format string, args ...any) {
	log.Printf("contract violation: "+format, args...)
}
