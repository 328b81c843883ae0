package notion

// Page is one record returned by a database query. Properties are
// loosely typed bags keyed by the property name configured in Notion;
// each value carries a type tag that must match before its payload is
// trusted.
type Page struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

// Property is the tagged union Notion uses for page property values.
// Only the member matching Type is populated; the rest are nil.
type Property struct {
	Type   string     `json:"type"`
	Date   *DateValue `json:"date,omitempty"`
	Number *float64   `json:"number,omitempty"`
	Title  []RichText `json:"title,omitempty"`
}

// DateValue holds the start of a date property. Dates are calendar
// dates ("2026-01-15"), not instants; no timezone conversion applies.
type DateValue struct {
	Start string `json:"start"`
}

// RichText is one fragment of a title or rich-text property.
type RichText struct {
	PlainText string `json:"plain_text"`
	Text      struct {
		Content string `json:"content"`
	} `json:"text"`
}

// TitleText concatenates the text content of a title property, falling
// back to plain_text when the text payload is empty.
func (p Property) TitleText() string {
	var s string
	for _, rt := range p.Title {
		if rt.Text.Content != "" {
			s += rt.Text.Content
		} else {
			s += rt.PlainText
		}
	}
	return s
}

// User is the bot user returned by GET /v1/users/me.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Bot  *struct {
		Owner struct {
			User *struct {
				Name string `json:"name"`
			} `json:"user"`
		} `json:"owner"`
	} `json:"bot,omitempty"`
}

// DisplayName returns the user's name, falling back to the bot owner's
// name for integrations, which often have an empty top-level name.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Bot != nil && u.Bot.Owner.User != nil {
		return u.Bot.Owner.User.Name
	}
	return "Unknown"
}
