// Package constants defines HTML5 specification constants used by the tokenizer.
package constants

// VoidElements are elements that never have content or a closing tag.
// The tokenizer consults this set to decide whether a self-closing solidus
// on a start tag is meaningful or should raise
// non-void-html-element-start-tag-with-trailing-solidus.
var VoidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// RawTextElements switch the tokenizer into the RAWTEXT state once their
// start tag is emitted (style, xmp, iframe, noembed, noframes). script is
// handled separately because it has its own escape sub-states.
var RawTextElements = map[string]bool{
	"style":    true,
	"xmp":      true,
	"iframe":   true,
	"noembed":  true,
	"noframes": true,
}

// EscapableRawTextElements switch the tokenizer into the RCDATA state once
// their start tag is emitted.
var EscapableRawTextElements = map[string]bool{
	"textarea": true,
	"title":    true,
}
