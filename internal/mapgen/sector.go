package mapgen

// Sector is one cell of the map's column/row partition. Sectors tile the
// map exactly; the last column and row absorb any remainder from non-even
// division. Immutable once computed.
type Sector struct {
	Col, Row int
	Bounds   Rect
}

// Index returns the sector's position in generation order.
func (s Sector) Index(columns int) int {
	return s.Row*columns + s.Col
}

// partitionSectors divides the map bounds into a columns x rows grid.
func partitionSectors(width, height, columns, rows int) []Sector {
	baseWidth := width / columns
	baseHeight := height / rows

	sectors := make([]Sector, 0, columns*rows)
	for row := 0; row < rows; row++ {
		h := baseHeight
		if row == rows-1 {
			h = height - baseHeight*(rows-1)
		}
		for col := 0; col < columns; col++ {
			w := baseWidth
			if col == columns-1 {
				w = width - baseWidth*(columns-1)
			}
			sectors = append(sectors, Sector{
				Col: col,
				Row: row,
				Bounds: Rect{
					X:      col * baseWidth,
					Y:      row * baseHeight,
					Width:  w,
					Height: h,
				},
			})
		}
	}
	return sectors
}
