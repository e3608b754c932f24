package consent

// Category is a configured consent category.
// Name and Description are display references, resolved through a
// Translator when translations are enabled.
type Category struct {
	Key         string `json:"key" yaml:"-"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`
}

// Categories is an ordered, read-only set of categories keyed by Category.Key.
type Categories struct {
	list  []Category
	index map[string]int
}

// NewCategories copies list into an ordered set. When a key repeats, the
// first occurrence wins; Config.Validate reports duplicates before this matters.
func NewCategories(list []Category) Categories {
	c := Categories{
		list:  make([]Category, 0, len(list)),
		index: make(map[string]int, len(list)),
	}
	for _, cat := range list {
		if _, dup := c.index[cat.Key]; dup {
			continue
		}
		c.index[cat.Key] = len(c.list)
		c.list = append(c.list, cat)
	}
	return c
}

// All returns the categories in configuration order.
func (c Categories) All() []Category {
	out := make([]Category, len(c.list))
	copy(out, c.list)
	return out
}

// Keys returns the category keys in configuration order.
func (c Categories) Keys() []string {
	keys := make([]string, len(c.list))
	for i, cat := range c.list {
		keys[i] = cat.Key
	}
	return keys
}

func (c Categories) Get(key string) (Category, bool) {
	i, ok := c.index[key]
	if !ok {
		return Category{}, false
	}
	return c.list[i], true
}

func (c Categories) Len() int {
	return len(c.list)
}

// IsRequired reports whether key is a configured category that is always enabled.
// Unknown keys are never required.
func (c Categories) IsRequired(key string) bool {
	cat, ok := c.Get(key)
	return ok && cat.Required
}

// DefaultCategories returns the stock category set. Name and description are
// translation references (see the bundled catalogs in cmd/consentd).
func DefaultCategories() []Category {
	return []Category{
		{
			Key:         "necessary",
			Name:        "categories.necessary.name",
			Description: "categories.necessary.description",
			Required:    true,
		},
		{
			Key:         "analytics",
			Name:        "categories.analytics.name",
			Description: "categories.analytics.description",
		},
		{
			Key:         "marketing",
			Name:        "categories.marketing.name",
			Description: "categories.marketing.description",
		},
		{
			Key:         "functional",
			Name:        "categories.functional.name",
			Description: "categories.functional.description",
		},
	}
}
