package entity

// validDamage reports whether amount may be applied to an actor
func validDamage(amount int) bool {
	if amount > 0 {
		return true
	}
	contractViolation("damage must be positive, got %d", amount)
	return false
}

// normalizeDir maps a knockback direction onto ±1
func normalizeDir(dir float64) float64 {
	if dir == 1 || dir == -1 {
		return dir
	}
	contractViolation("direction must be -1 or +1, got %v", dir)
	if dir < 0 {
		return -1
	}
	return 1
}
