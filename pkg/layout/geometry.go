package layout

// Insets are physical left/right distances in layout units.
type Insets struct {
	Left  int
	Right int
}

// Padding is what the page content reserves on each edge.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// PagePadding returns the room page content must leave for header, footer
// and docked drawers. Drawer padding follows text direction: in RTL the left
// drawer sits on the physical right.
func (c *Coordinator) PagePadding() Padding {
	var p Padding
	if h := c.Region(RegionHeader); h.Space {
		p.Top = h.Size
	}
	if f := c.Region(RegionFooter); f.Space {
		p.Bottom = f.Size
	}
	if l := c.Region(RegionLeft); l.Space {
		if c.rtl {
			p.Right = l.Size
		} else {
			p.Left = l.Size
		}
	}
	if r := c.Region(RegionRight); r.Space {
		if c.rtl {
			p.Left = r.Size
		} else {
			p.Right = r.Size
		}
	}
	return p
}

// HeaderInsets returns how far the header is pushed in by drawers that own
// the top corners.
func (c *Coordinator) HeaderInsets() Insets {
	return c.bandInsets(c.rows.Top)
}

// FooterInsets returns how far the footer is pushed in by drawers that own
// the bottom corners.
func (c *Coordinator) FooterInsets() Insets {
	return c.bandInsets(c.rows.Bottom)
}

func (c *Coordinator) bandInsets(row string) Insets {
	var in Insets
	if len(row) != 3 {
		return in
	}
	if row[0] == 'l' {
		if l := c.Region(RegionLeft); l.Space {
			if c.rtl {
				in.Right = l.Size
			} else {
				in.Left = l.Size
			}
		}
	}
	if row[2] == 'r' {
		if r := c.Region(RegionRight); r.Space {
			if c.rtl {
				in.Left = r.Size
			} else {
				in.Right = r.Size
			}
		}
	}
	return in
}
