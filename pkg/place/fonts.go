package place

// legacyFontSizes maps pixel text sizes to their FontSize enum values.
var legacyFontSizes = [...]struct {
	px   int64
	enum uint32
}{
	{8, 0}, {9, 1}, {10, 2}, {11, 3}, {12, 4},
	{14, 5}, {18, 6}, {24, 7}, {36, 8}, {48, 9},
}

// fontSizeCompat folds enum values past the legacy range onto the nearest
// legacy entry.
var fontSizeCompat = [...]struct{ modern, legacy uint32 }{
	{10, 7}, {11, 8}, {12, 9}, {13, 9}, {14, 9},
}

// fontEnumFromTextSize picks the FontSize enum whose pixel size is closest
// to textSize. Ties resolve to the smaller pixel size.
func fontEnumFromTextSize(textSize int64) uint32 {
	best := legacyFontSizes[0]
	bestDist := abs64(textSize - best.px)

	for _, o := range legacyFontSizes[1:] {
		if d := abs64(textSize - o.px); d < bestDist {
			best, bestDist = o, d
		}
	}

	return best.enum
}

func normalizeFontSize(v uint32) uint32 {
	for _, c := range fontSizeCompat {
		if c.modern == v {
			return c.legacy
		}
	}
	return v
}

// fontSizeName translates a FontSize enum value to its API name.
func fontSizeName(v uint32) string {
	switch v {
	case 0:
		return "Size8"
	case 1:
		return "Size9"
	case 2:
		return "Size10"
	case 3:
		return "Size11"
	case 4:
		return "Size12"
	case 5:
		return "Size14"
	case 6:
		return "Size18"
	case 7:
		return "Size24"
	case 8:
		return "Size36"
	case 9:
		return "Size48"
	case 10:
		return "Size28"
	case 11:
		return "Size32"
	case 12:
		return "Size42"
	case 13:
		return "Size60"
	case 14:
		return "Size96"
	default:
		return "Unknown"
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
