package domain

// Choice is a single selectable option within an option group.
type Choice struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int    `json:"priceCents"`
}

// OptionGroup is a set of choices with a required selection count range.
// A group with Min 0 is optional; Max bounds how many choices may be picked.
type OptionGroup struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Min     int      `json:"min"`
	Max     int      `json:"max"`
	Choices []Choice `json:"choices"`
}

// MenuItem represents one orderable product on a shop menu.
type MenuItem struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	BasePriceCents int           `json:"basePriceCents"`
	OptionGroups   []OptionGroup `json:"optionGroups"`
}

// ChoicePriceCents returns the price of the choice with the given id within
// the group, and whether the id exists.
func (g OptionGroup) ChoicePriceCents(choiceID string) (int, bool) {
	for _, c := range g.Choices {
		if c.ID == choiceID {
			return c.PriceCents, true
		}
	}
	return 0, false
}
