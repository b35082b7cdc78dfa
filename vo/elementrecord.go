package vo

// ElementName identifies one entry of the element catalog, e.g. "div"
type ElementName string

// GlobalAttributesSentinel is the attribute list of elements without own attributes
const GlobalAttributesSentinel = "This element includes the global attributes."

type ElementRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Example     string   `json:"example"`
	Attributes  []string `json:"attributes"`
}

func FallbackDescription(name ElementName) string {
	return "The <" + string(name) + "> element."
}

func FallbackExample(name ElementName) string {
	return "<" + string(name) + "></" + string(name) + ">"
}

func FallbackAttributes() []string {
	return []string{GlobalAttributesSentinel}
}

// NewFallbackRecord is the placeholder record for an element that could not be scraped
func NewFallbackRecord(name ElementName) ElementRecord {
	return ElementRecord{
		Name:        string(name),
		Description: FallbackDescription(name),
		Example:     FallbackExample(name),
		Attributes:  FallbackAttributes(),
	}
}
