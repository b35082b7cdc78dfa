package config

import "github.com/foomo/elementwalker/vo"

var catalog = []vo.ElementName{
	"a", "abbr", "acronym", "address", "area", "article", "aside", "audio",
	"b", "base", "bdi", "bdo", "big", "blockquote", "body", "br", "button",
	"canvas", "caption", "center", "cite", "code", "col", "colgroup",
	"data", "datalist", "dd", "del", "details", "dfn", "dialog", "dir", "div", "dl", "dt",
	"em", "embed",
	"fencedframe", "fieldset", "figcaption", "figure", "font", "footer", "form", "frame", "frameset",
	"h1", "head", "header", "hgroup", "hr", "html",
	"i", "iframe", "img", "input", "ins",
	"kbd",
	"label", "legend", "li", "link",
	"main", "map", "mark", "marquee", "menu", "meta", "meter",
	"nav", "nobr", "noembed", "noframes", "noscript",
	"object", "ol", "optgroup", "option", "output",
	"p", "param", "picture", "plaintext", "pre", "progress",
	"q",
	"rb", "rp", "rt", "rtc", "ruby",
	"s", "samp", "script", "search", "section", "select", "selectedcontent", "slot", "small", "source", "span", "strike", "strong", "style", "sub", "summary", "sup",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead", "time", "title", "tr", "track", "tt",
	"u", "ul",
	"var", "video",
	"wbr",
	"xmp",
}

// Catalog returns a copy of the built-in list of html elements
func Catalog() []vo.ElementName {
	names := make([]vo.ElementName, len(catalog))
	copy(names, catalog)
	return names
}
