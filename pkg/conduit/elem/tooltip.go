package elem

// Placement positions a tooltip label around its target.
type Placement string

const (
	Top    Placement = "top"
	Bottom Placement = "bottom"
	Left   Placement = "left"
	Right  Placement = "right"
)

// Tooltip wraps target with a label positioned at one of the four fixed
// placements. Unknown placements fall back to Top.
func Tooltip(target *Node, label string, place Placement) *Node {
	switch place {
	case Top, Bottom, Left, Right:
	default:
		place = Top
	}

	tip := New("span", Attrs{
		"class": Classes("tooltip", "tooltip-"+string(place)),
		"role":  "tooltip",
	}, label)

	return New("div", Attrs{"class": "tooltip-wrap"}, target, tip)
}
