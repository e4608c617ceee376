package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Open      bool
	Cursor    bool
	Text      string
	Chips     int
	ChipFocus int
}

func (c ModelContext) DropdownOpen() bool { return c.Open }

func (c ModelContext) HasCursor() bool { return c.Cursor }

func (c ModelContext) Query() string { return c.Text }

func (c ModelContext) ChipCount() int { return c.Chips }

func (c ModelContext) ChipIndex() int { return c.ChipFocus }
