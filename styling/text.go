package styling

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// StyleOptions configures how text should be displayed
type StyleOptions struct {
	Bold            bool
	Italic          bool
	Underline       bool
	TextColor       tcell.Color
	BackgroundColor tcell.Color
}

// DefaultStyleOptions returns standard styling
func DefaultStyleOptions() StyleOptions {
	return StyleOptions{
		TextColor:       tcell.ColorWhite,
		BackgroundColor: tcell.ColorDefault,
	}
}

// StyleBuilder facilitates chaining style operations
type StyleBuilder struct {
	options StyleOptions
}

// NewStyleBuilder creates a new style builder with default options
func NewStyleBuilder() *StyleBuilder {
	return &StyleBuilder{
		options: DefaultStyleOptions(),
	}
}

// WithBold sets the bold attribute
func (b *StyleBuilder) WithBold() *StyleBuilder {
	b.options.Bold = true
	return b
}

// WithItalic sets the italic attribute
func (b *StyleBuilder) WithItalic() *StyleBuilder {
	b.options.Italic = true
	return b
}

// WithUnderline sets the underline attribute
func (b *StyleBuilder) WithUnderline() *StyleBuilder {
	b.options.Underline = true
	return b
}

// WithTextColor sets the text color
func (b *StyleBuilder) WithTextColor(color tcell.Color) *StyleBuilder {
	b.options.TextColor = color
	return b
}

// WithBackgroundColor sets the background color
func (b *StyleBuilder) WithBackgroundColor(color tcell.Color) *StyleBuilder {
	b.options.BackgroundColor = color
	return b
}

// Build creates the final StyleOptions object
func (b *StyleBuilder) Build() StyleOptions {
	return b.options
}

// ApplyStyle wraps text in tview colour tags of the form [fg:bg:flags].
func ApplyStyle(text string, style StyleOptions) string {
	var fg, bg, flags string

	if style.TextColor != tcell.ColorDefault {
		fg = fmt.Sprintf("#%06x", style.TextColor.Hex())
	}
	if style.BackgroundColor != tcell.ColorDefault {
		bg = fmt.Sprintf("#%06x", style.BackgroundColor.Hex())
	}
	if style.Bold {
		flags += "b"
	}
	if style.Italic {
		flags += "i"
	}
	if style.Underline {
		flags += "u"
	}

	return "[" + fg + ":" + bg + ":" + flags + "]" + tview.Escape(text) + "[-:-:-]"
}

// ActionRegistry maps text regions to callbacks.
type ActionRegistry struct {
	actions map[string]func()
	nextID  int
	mu      sync.Mutex
}

// NewActionRegistry creates a new action registry
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		actions: make(map[string]func()),
		nextID:  1,
	}
}

// Register adds a new action and returns its region ID
func (r *ActionRegistry) Register(callback func()) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := fmt.Sprintf("action-%d", r.nextID)
	r.nextID++
	r.actions[id] = callback
	return id
}

// Execute runs an action by ID if it exists
func (r *ActionRegistry) Execute(id string) bool {
	r.mu.Lock()
	action, exists := r.actions[id]
	r.mu.Unlock()

	if exists {
		action()
		return true
	}
	return false
}

// MakeClickable registers callback and returns text wrapped in a region for it.
func (r *ActionRegistry) MakeClickable(text string, style StyleOptions, callback func()) string {
	actionID := r.Register(callback)
	return fmt.Sprintf(`["%s"]%s[""]`, actionID, ApplyStyle(text, style))
}

// InstallClickHandler runs the registered action when a region of textView is
// clicked, then clears the highlight so the same region can be clicked again.
func (r *ActionRegistry) InstallClickHandler(textView *tview.TextView) {
	textView.SetRegions(true)
	textView.SetHighlightedFunc(func(added, removed, remaining []string) {
		if len(added) == 0 {
			return
		}
		r.Execute(added[0])
		textView.Highlight()
	})
}

// ClickableStyle is used for footer actions.
func ClickableStyle() StyleOptions {
	return NewStyleBuilder().
		WithTextColor(tcell.ColorAqua).
		WithUnderline().
		Build()
}

// CreateInfoText creates styled "label: value" text
func CreateInfoText(label, value string, valueColor tcell.Color) string {
	labelStyle := NewStyleBuilder().
		WithBold().
		WithTextColor(tcell.ColorWhite).
		Build()

	valueStyle := NewStyleBuilder().
		WithTextColor(valueColor).
		Build()

	return ApplyStyle(label, labelStyle) + ": " + ApplyStyle(value, valueStyle)
}

// UsageColor goes from green to red as percent approaches 100.
func UsageColor(percent float64) tcell.Color {
	switch {
	case percent > 90:
		return tcell.ColorRed
	case percent > 70:
		return tcell.ColorYellow
	default:
		return tcell.ColorGreen
	}
}

// CreateProgressBar generates a text-based usage bar
func CreateProgressBar(used float64, total float64, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}

	percentage := used / total
	filledWidth := int(float64(width) * percentage)
	if filledWidth > width {
		filledWidth = width
	}
	if filledWidth < 0 {
		filledWidth = 0
	}

	filledStyle := NewStyleBuilder().
		WithTextColor(UsageColor(percentage * 100)).
		Build()
	emptyStyle := NewStyleBuilder().
		WithTextColor(tcell.ColorGray).
		Build()

	filled := ApplyStyle(strings.Repeat("█", filledWidth), filledStyle)
	empty := ApplyStyle(strings.Repeat("░", width-filledWidth), emptyStyle)
	return filled + empty + fmt.Sprintf(" %.1f%%", percentage*100)
}

// CreateHeader creates a styled section header
func CreateHeader(text string) string {
	headerStyle := NewStyleBuilder().
		WithBold().
		WithTextColor(tcell.ColorNames["cyan"]).
		Build()

	styledText := ApplyStyle(text, headerStyle)
	line := ApplyStyle(strings.Repeat("─", len([]rune(text))+4), headerStyle)

	return styledText + "\n" + line
}

// NotificationStyle picks the status-line colour for a message level.
func NotificationStyle(level string) StyleOptions {
	b := NewStyleBuilder()
	switch level {
	case "warn":
		b.WithTextColor(tcell.ColorYellow)
	case "error":
		b.WithTextColor(tcell.ColorRed).WithBold()
	default:
		b.WithTextColor(tcell.ColorWhite)
	}
	return b.Build()
}
