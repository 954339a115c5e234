package mapgen

// RoomKind discriminates the three room shapes.
type RoomKind uint8

const (
	// RoomStandard is a rectangular floor area within one sector.
	RoomStandard RoomKind = iota
	// RoomDummy is a single-tile room, usable only as a hallway junction.
	RoomDummy
	// RoomMerged is the union of two adjacent standard rooms fused into
	// one larger room.
	RoomMerged
)

// String returns a human-readable kind name.
func (k RoomKind) String() string {
	switch k {
	case RoomStandard:
		return "standard"
	case RoomDummy:
		return "dummy"
	case RoomMerged:
		return "merged"
	default:
		return "unknown"
	}
}

// Room is a tagged union over the three shapes. Standard and dummy rooms
// belong to a single sector; a merged room belongs to the pair of sectors
// it absorbed and retains both original rectangles so hallways aimed at
// either original still attach to a consistent boundary.
type Room struct {
	ID     int // index of the owning sector (lower of the pair for merged)
	Kind   RoomKind
	Bounds Rect

	// Sectors holds the participating sector indices. For standard and
	// dummy rooms Sectors[1] is -1.
	Sectors [2]int

	// Parts holds the two original rectangles of a merged room, in the
	// same order as Sectors. Unused for other kinds.
	Parts [2]Rect
}

// AttachRect returns the rectangle hallways attach to when approaching
// from the given sector. For merged rooms this is the retained original
// rectangle that came from that sector, so exit points stay correctly
// offset from the combined bounds.
func (r *Room) AttachRect(sector int) Rect {
	if r.Kind == RoomMerged {
		if r.Sectors[1] == sector {
			return r.Parts[1]
		}
		return r.Parts[0]
	}
	return r.Bounds
}

// FloorTiles appends every floor tile of the room to dst and returns it.
// Dummy rooms contribute their single tile; merged rooms contribute the
// full bounding rectangle.
func (r *Room) FloorTiles(dst []Point) []Point {
	for y := r.Bounds.Y; y < r.Bounds.Bottom(); y++ {
		for x := r.Bounds.X; x < r.Bounds.Right(); x++ {
			dst = append(dst, Point{X: x, Y: y})
		}
	}
	return dst
}
