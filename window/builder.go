package window

// Builder constructs Windows. The same builder can be reused to create
// multiple windows with the same configuration, as a kind of prototype.
//
//	w, err := window.NewBuilder().
//		WithTitle("Hello, Redmond!").
//		WithTheme(window.ThemeDark).
//		Build()
type Builder struct {
	title   string
	size    Size
	iconID  uint16
	hasIcon bool
	theme   Theme
}

// NewBuilder returns a builder with default properties: an untitled
// 720x640 light-themed window with the generic application icon.
func NewBuilder() *Builder {
	return &Builder{
		size: Size{Width: 720, Height: 640},
	}
}

// WithTitle sets the window title, as it appears in the title bar and the
// task manager.
func (b *Builder) WithTitle(title string) *Builder {
	b.title = title
	return b
}

// WithSize sets the client-area size in device-independent pixels. The
// window chrome is in addition to this size, and the on-screen pixel size
// is scaled to the monitor's DPI at creation.
func (b *Builder) WithSize(size Size) *Builder {
	b.size = size
	return b
}

// WithIcon sets the window icon to an icon resource compiled into the
// executable.
func (b *Builder) WithIcon(resourceID uint16) *Builder {
	b.iconID = resourceID
	b.hasIcon = true
	return b
}

// WithTheme sets the title bar theme.
func (b *Builder) WithTheme(theme Theme) *Builder {
	b.theme = theme
	return b
}

// Title returns the currently set window title.
func (b *Builder) Title() string { return b.title }

// Size returns the currently set client-area size.
func (b *Builder) Size() Size { return b.size }

// Icon returns the currently set icon resource, if any.
func (b *Builder) Icon() (uint16, bool) { return b.iconID, b.hasIcon }

// Theme returns the currently set theme.
func (b *Builder) Theme() Theme { return b.theme }

// Build creates and displays a new window with the builder's properties.
// The builder remains valid for building further windows.
func (b *Builder) Build() (*Window, error) {
	return newWindow(b)
}
