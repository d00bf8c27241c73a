package domain

// PhotoSize is one resolution variant of an uploaded photo
type PhotoSize struct {
	FileID   string
	Width    int
	Height   int
	FileSize int64
}

// Largest returns the highest-resolution variant, preferring bigger files on ties.
// ok is false for an empty slice.
func Largest(sizes []PhotoSize) (PhotoSize, bool) {
	if len(sizes) == 0 {
		return PhotoSize{}, false
	}
	best := sizes[0]
	for _, s := range sizes[1:] {
		area, bestArea := s.Width*s.Height, best.Width*best.Height
		if area > bestArea || (area == bestArea && s.FileSize > best.FileSize) {
			best = s
		}
	}
	return best, true
}
