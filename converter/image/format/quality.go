package format

// clampQuality maps a requested quality onto the 1-100 range encoders accept.
func clampQuality(quality float32) int {
	switch {
	case quality < 1:
		return 1
	case quality > 100:
		return 100
	default:
		return int(quality)
	}
}
