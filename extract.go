package elementwalker

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/foomo/elementwalker/vo"
	"golang.org/x/net/html"
)

// PageExtractor turns the markup of an element reference page into a record
type PageExtractor interface {
	Extract(name vo.ElementName, markup io.Reader) (vo.ElementRecord, error)
}

type ParseError struct {
	Name vo.ElementName
	Err  error
}

func (e *ParseError) Error() string {
	return "could not extract " + string(e.Name) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

const (
	selectorContentSection = ".section-content"
	selectorCodeExample    = ".code-example"
	// paragraphs up to this many characters are not part of a description
	minDescriptionLength = 20
)

type GoqueryExtractor struct{}

func (GoqueryExtractor) Extract(name vo.ElementName, markup io.Reader) (record vo.ElementRecord, err error) {
	root, errParse := html.Parse(markup)
	if errParse != nil {
		return record, &ParseError{Name: name, Err: errParse}
	}
	doc := goquery.NewDocumentFromNode(root)
	record = vo.ElementRecord{
		Name:        string(name),
		Description: extractDescription(doc, name),
		Example:     extractExample(doc, name),
		Attributes:  extractAttributes(doc),
	}
	return
}

func extractDescription(doc *goquery.Document, name vo.ElementName) string {
	parts := []string{}
	doc.Find(selectorContentSection).First().ChildrenFiltered("p").Each(func(i int, sel *goquery.Selection) {
		text := strippedText(sel)
		if utf8.RuneCountInString(text) > minDescriptionLength {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return vo.FallbackDescription(name)
	}
	return strings.Join(parts, " ")
}

// strippedText trims every text node on its own and glues the pieces together
// without a separator, "The <b>div</b> tag" becomes "Thedivtag"
func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return b.String()
}

// extractExample keeps the whitespace of the code block as is
func extractExample(doc *goquery.Document, name vo.ElementName) string {
	code := doc.Find(selectorCodeExample).First().Find("code").First()
	if example := code.Text(); example != "" {
		return example
	}
	return vo.FallbackExample(name)
}

func extractAttributes(doc *goquery.Document) []string {
	attributes := []string{}
	seen := map[string]bool{}
	doc.Find("dl").Each(func(i int, dl *goquery.Selection) {
		dl.Find("dt").Each(func(j int, dt *goquery.Selection) {
			code := dt.Find("a").First().Find("code").First()
			if code.Length() == 0 {
				return
			}
			attr := strippedText(code)
			if attr == "" || seen[attr] {
				return
			}
			seen[attr] = true
			attributes = append(attributes, attr)
		})
	})
	if len(attributes) == 0 {
		return vo.FallbackAttributes()
	}
	return attributes
}
