package model

// Category is the colour bucket a ball is shown in
type Category int

const (
	CategoryYellow Category = iota // 1-10
	CategoryBlue                   // 11-20
	CategoryRed                    // 21-30
	CategoryGray                   // 31-40
	CategoryGreen                  // 41-45
)

// Upper bounds of each bucket. Intervals are closed and do not overlap.
const (
	yellowMax = 10
	blueMax   = 20
	redMax    = 30
	grayMax   = 40
)

// CategoryOf returns the bucket for n. Numbers below the range fall into the
// first bucket and numbers above it into the last.
func CategoryOf(n int) Category {
	switch {
	case n <= yellowMax:
		return CategoryYellow
	case n <= blueMax:
		return CategoryBlue
	case n <= redMax:
		return CategoryRed
	case n <= grayMax:
		return CategoryGray
	default:
		return CategoryGreen
	}
}

// String returns the colour name of the category
func (c Category) String() string {
	switch c {
	case CategoryYellow:
		return "yellow"
	case CategoryBlue:
		return "blue"
	case CategoryRed:
		return "red"
	case CategoryGray:
		return "gray"
	case CategoryGreen:
		return "green"
	default:
		return "unknown"
	}
}

// Hex returns the ball colour of the category as #RRGGBB
func (c Category) Hex() string {
	switch c {
	case CategoryYellow:
		return "#FBC400"
	case CategoryBlue:
		return "#69C8F2"
	case CategoryRed:
		return "#FF7272"
	case CategoryGray:
		return "#AAAAAA"
	default:
		return "#B0D840"
	}
}

// Bounds returns the closed interval covered by the category
func (c Category) Bounds() (lo, hi int) {
	switch c {
	case CategoryYellow:
		return MinNumber, yellowMax
	case CategoryBlue:
		return yellowMax + 1, blueMax
	case CategoryRed:
		return blueMax + 1, redMax
	case CategoryGray:
		return redMax + 1, grayMax
	default:
		return grayMax + 1, MaxNumber
	}
}

// Categories lists all categories in ascending number order
func Categories() []Category {
	return []Category{CategoryYellow, CategoryBlue, CategoryRed, CategoryGray, CategoryGreen}
}
