package factory

import "fmt"

// Button and Checkbox are the abstract products of the widget families.
// Every widget knows which theme produced it, which is how the tests pin the
// family-consistency guarantee.
type Button interface {
	Render() string
	Theme() string
}

// Checkbox is the second abstract product.
type Checkbox interface {
	Render(checked bool) string
	Theme() string
}

// WidgetFactory is the abstract factory: one method per product in the
// family. All products from one factory belong to the same theme.
type WidgetFactory interface {
	ThemeName() string
	NewButton(label string) Button
	NewCheckbox(label string) Checkbox
}

// lightButton / lightCheckbox form the light family.
type lightButton struct{ label string }

func (b lightButton) Render() string { return fmt.Sprintf("( %s )", b.label) }
func (lightButton) Theme() string    { return "light" }

type lightCheckbox struct{ label string }

func (c lightCheckbox) Render(checked bool) string {
	mark := " "
	if checked {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s", mark, c.label)
}
func (lightCheckbox) Theme() string { return "light" }

// LightFactory produces the light widget family.
type LightFactory struct{}

func (LightFactory) ThemeName() string { return "light" }

func (LightFactory) NewButton(label string) Button { return lightButton{label: label} }

func (LightFactory) NewCheckbox(label string) Checkbox { return lightCheckbox{label: label} }

// darkButton / darkCheckbox form the dark family, with heavier glyphs.
type darkButton struct{ label string }

func (b darkButton) Render() string { return fmt.Sprintf("【 %s 】", b.label) }
func (darkButton) Theme() string    { return "dark" }

type darkCheckbox struct{ label string }

func (c darkCheckbox) Render(checked bool) string {
	mark := "·"
	if checked {
		mark = "■"
	}
	return fmt.Sprintf("〔%s〕%s", mark, c.label)
}
func (darkCheckbox) Theme() string { return "dark" }

// DarkFactory produces the dark widget family.
type DarkFactory struct{}

func (DarkFactory) ThemeName() string { return "dark" }

func (DarkFactory) NewButton(label string) Button { return darkButton{label: label} }

func (DarkFactory) NewCheckbox(label string) Checkbox { return darkCheckbox{label: label} }

// NewWidgetFactory selects a family by theme name. Like the simple factory,
// an unknown theme is a hard error.
func NewWidgetFactory(theme string) (WidgetFactory, error) {
	switch theme {
	case "light":
		return LightFactory{}, nil
	case "dark":
		return DarkFactory{}, nil
	default:
		return nil, fmt.Errorf("factory: unknown widget theme %q (valid: light, dark)", theme)
	}
}

// RenderForm builds a tiny settings form entirely from one factory, so every
// widget on it is guaranteed to share a theme. This is the client code the
// abstract factory exists for: it never names a concrete family.
func RenderForm(f WidgetFactory) string {
	ok := f.NewButton("OK")
	remember := f.NewCheckbox("remember me")
	return fmt.Sprintf("%s theme:\n  %s\n  %s\n", f.ThemeName(), remember.Render(true), ok.Render())
}
