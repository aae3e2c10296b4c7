package tui

import (
	"fmt"
	"strings"

	"pboard/internal/cli"
	"pboard/internal/dnd"
	"pboard/internal/model"
)

// component is the shared contract for board widgets: configure on
// resize, render to a string. Each widget implements it independently;
// no behavior is inherited.
type component interface {
	resize(width, height int)
	view() string
}

var _ component = (*column)(nil)

// column is one board column: a filtered view over store snapshots and
// a drop target for drag gestures. It subscribes to the store exactly
// once (in newModel) and re-filters on every broadcast.
type column struct {
	status model.Status
	title  string
	target *dnd.Target

	items  []model.Record
	cursor int

	width  int
	height int

	// render state, set by the app model each update
	focused bool
	dragID  string // ID of the record in flight, "" when idle
}

func newColumn(status model.Status, title string) *column {
	return &column{
		status: status,
		title:  title,
		target: dnd.NewTarget(status),
	}
}

// observe is the column's store listener. It filters the snapshot down
// to this column's status and clamps the cursor to the new item count.
func (c *column) observe(recs []model.Record) {
	items := c.items[:0:0]
	for _, r := range recs {
		if r.Status == c.status {
			items = append(items, r)
		}
	}
	c.items = items

	if c.cursor >= len(c.items) {
		c.cursor = len(c.items) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

// selected returns the record under the cursor, if any.
func (c *column) selected() (model.Record, bool) {
	if len(c.items) == 0 || c.cursor >= len(c.items) {
		return model.Record{}, false
	}
	return c.items[c.cursor], true
}

func (c *column) moveCursor(delta int) {
	if len(c.items) == 0 {
		c.cursor = 0
		return
	}
	c.cursor += delta
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor >= len(c.items) {
		c.cursor = len(c.items) - 1
	}
}

func (c *column) resize(width, height int) {
	c.width = width
	c.height = height
}

func (c *column) view() string {
	header := columnTitleStyle.Render(fmt.Sprintf("%s (%d)", c.title, len(c.items)))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	if len(c.items) == 0 {
		b.WriteString(emptyColumnStyle.Render("no projects"))
	}

	innerWidth := c.width - 4 // border + padding
	for i, rec := range c.items {
		line := fmt.Sprintf("%s  %s", rec.ID, rec.Title)
		line = cli.Truncate(line, max(innerWidth-6, 8))
		line = fmt.Sprintf("%s (%dmd)", line, rec.Effort)

		style := itemStyle
		switch {
		case rec.ID == c.dragID:
			style = itemDraggingStyle
		case c.focused && i == c.cursor:
			style = itemSelectedStyle
		}
		b.WriteString(style.Render(line))
		if i < len(c.items)-1 {
			b.WriteString("\n")
		}
	}

	style := columnStyle
	switch {
	case c.target.Hovering():
		style = columnDroppableStyle
	case c.focused:
		style = columnFocusedStyle
	}

	if c.width > 0 {
		style = style.Width(c.width - 2)
	}
	if c.height > 0 {
		style = style.Height(c.height - 2)
	}
	return style.Render(b.String())
}
