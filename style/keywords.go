package style

// Keyword is a symbolic CSS keyword. A bare string matching a keyword's
// text (case-insensitively) resolves to the keyword constant itself
// during validation, so both equality and switch comparisons against
// the constant hold afterwards.
type Keyword string

// Keywords used by the standard property set. Hosts declaring their own
// registries can introduce further keywords; any Keyword listed as a
// Choices constant becomes legal input for that property.
const (
	Auto        Keyword = "auto"
	Block       Keyword = "block"
	Inline      Keyword = "inline"
	InlineBlock Keyword = "inline-block"
	Table       Keyword = "table"
	Left        Keyword = "left"
	Right       Keyword = "right"
	Center      Keyword = "center"
	Justify     Keyword = "justify"
	LTR         Keyword = "ltr"
	RTL         Keyword = "rtl"
	Transparent Keyword = "transparent"
)

// Explicit defaulting keywords. Listing them in Choices.Defaulting
// makes them legal for a property regardless of its other choices.
const (
	Initial Keyword = "initial"
	Inherit Keyword = "inherit"
	Unset   Keyword = "unset"
	Revert  Keyword = "revert"
)
