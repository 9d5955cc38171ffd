package slides

// DefaultBackgroundColor is used when the model reports no background color.
const DefaultBackgroundColor = "#FFFFFF"

// ElementType discriminates the variants of an Element.
type ElementType string

const (
	// ElementText is a block of OCR'd text.
	ElementText ElementType = "text"
	// ElementImage is a pictorial region described in prose.
	ElementImage ElementType = "image"
)

// TextAlign is the horizontal alignment of a text element.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// Analysis is the structured description of one slide image: its background
// color and the positioned elements reconstructed from it. An Analysis is
// built fresh per call and is not retained by this package.
type Analysis struct {
	BackgroundColor string    `json:"backgroundColor" jsonschema:"description=Dominant background color of the slide as a hex code like #FFFFFF"`
	Elements        []Element `json:"elements" jsonschema:"description=All text and image elements found on the slide in reading order"`
}

// Element is one positioned visual unit on the slide canvas. Position and
// size are percentages of the canvas (0-100). The type, content and geometry
// fields are always present; the styling fields are only set when the model
// inferred them, and only make sense for text elements.
type Element struct {
	Type    ElementType `json:"type" jsonschema:"description=Kind of element,enum=text,enum=image"`
	Content string      `json:"content" jsonschema:"description=Exact text content for text elements or a visual description for image elements"`
	X       float64     `json:"x" jsonschema:"description=Left edge as percentage of slide width (0-100)"`
	Y       float64     `json:"y" jsonschema:"description=Top edge as percentage of slide height (0-100)"`
	Width   float64     `json:"width" jsonschema:"description=Width as percentage of slide width (0-100)"`
	Height  float64     `json:"height" jsonschema:"description=Height as percentage of slide height (0-100)"`

	FontSize  *float64   `json:"fontSize,omitempty" jsonschema:"description=Font size in points"`
	FontColor *string    `json:"fontColor,omitempty" jsonschema:"description=Font color as a hex code"`
	IsBold    *bool      `json:"isBold,omitempty" jsonschema:"description=Whether the text is bold"`
	TextAlign *TextAlign `json:"textAlign,omitempty" jsonschema:"description=Horizontal text alignment,enum=left,enum=center,enum=right"`
}

// DefaultAnalysis returns the empty result substituted when the model
// produced no text at all: white background, no elements.
func DefaultAnalysis() *Analysis {
	return &Analysis{
		BackgroundColor: DefaultBackgroundColor,
		Elements:        []Element{},
	}
}
