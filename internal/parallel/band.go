package parallel

// Band is a horizontal strip of rows [Y, Y+Height).
type Band struct {
	Y, Height int
}

// Bands splits [0, height) into bands of rows rows; the last band may be
// shorter. A rows value below 1 yields a single band.
func Bands(height, rows int) []Band {
	if height <= 0 {
		return nil
	}
	if rows < 1 {
		rows = height
	}
	bands := make([]Band, 0, (height+rows-1)/rows)
	for y := 0; y < height; y += rows {
		bands = append(bands, Band{Y: y, Height: min(rows, height-y)})
	}
	return bands
}
