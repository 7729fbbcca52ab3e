package config

// clampUnit normalizes an opacity into [0, 1]. Out-of-range input is clamped
// silently rather than rejected; a config saying 1.5 means fully opaque.
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
