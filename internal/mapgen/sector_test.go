package mapgen

import "testing"

func TestPartitionTilesExactly(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		columns, rows int
	}{
		{"even", 56, 32, 4, 4},
		{"remainder-both-axes", 57, 31, 4, 3},
		{"single-sector", 20, 10, 1, 1},
		{"single-row", 60, 12, 5, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sectors := partitionSectors(tc.width, tc.height, tc.columns, tc.rows)
			if len(sectors) != tc.columns*tc.rows {
				t.Fatalf("expected %d sectors, got %d", tc.columns*tc.rows, len(sectors))
			}

			// Every tile of the map must belong to exactly one sector.
			owners := make([][]int, tc.height)
			for y := range owners {
				owners[y] = make([]int, tc.width)
				for x := range owners[y] {
					owners[y][x] = -1
				}
			}
			for i, s := range sectors {
				for y := s.Bounds.Y; y < s.Bounds.Bottom(); y++ {
					for x := s.Bounds.X; x < s.Bounds.Right(); x++ {
						if owners[y][x] != -1 {
							t.Fatalf("tile (%d,%d) owned by sectors %d and %d", x, y, owners[y][x], i)
						}
						owners[y][x] = i
					}
				}
			}
			for y := range owners {
				for x := range owners[y] {
					if owners[y][x] == -1 {
						t.Fatalf("tile (%d,%d) not covered by any sector", x, y)
					}
				}
			}
		})
	}
}

func TestPartitionRemainderGoesToEdges(t *testing.T) {
	sectors := partitionSectors(57, 31, 4, 3)

	// Base size is 14x10; the last column and row absorb the rest.
	for _, s := range sectors {
		wantW, wantH := 14, 10
		if s.Col == 3 {
			wantW = 57 - 14*3
		}
		if s.Row == 2 {
			wantH = 31 - 10*2
		}
		if s.Bounds.Width != wantW || s.Bounds.Height != wantH {
			t.Errorf("sector (%d,%d): got %dx%d, want %dx%d",
				s.Col, s.Row, s.Bounds.Width, s.Bounds.Height, wantW, wantH)
		}
	}
}

func TestSectorIndexOrder(t *testing.T) {
	sectors := partitionSectors(40, 20, 4, 2)
	for i, s := range sectors {
		if s.Index(4) != i {
			t.Errorf("sector %d reports index %d", i, s.Index(4))
		}
	}
}
