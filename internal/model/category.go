package model

import (
	"errors"
	"strings"
)

// Category is a kind of wardrobe item. Each category is stored in its own
// collection.
type Category string

// Categories.
const (
	CategoryClothes     Category = "clothes"
	CategoryFootwear    Category = "footwear"
	CategoryAccessories Category = "accessories"
)

// Field names.
const (
	FieldItemName      = "itemName"
	FieldFootwearName  = "footwearName"
	FieldAccessoryName = "accessoryName"
	FieldColor         = "color"
	FieldOccasion      = "occasion"
)

// ErrUnknownCategory is returned when a category name is not recognized.
var ErrUnknownCategory = errors.New("unknown category")

// Field describes one attribute of a category's items.
type Field struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
	Choices     []Choice `json:"choices,omitempty"`
}

// Choice is one suggested value of a choice field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Schema is the ordered field set of a category.
type Schema struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Noun     string   `json:"noun"`
	Fields   []Field  `json:"fields"`
}

var colorField = Field{Name: FieldColor, Label: "Color", Placeholder: "Enter color"}

var schemas = map[Category]Schema{
	CategoryClothes: {
		Category: CategoryClothes,
		Title:    "Clothes",
		Noun:     "clothes",
		Fields: []Field{
			{
				Name:        FieldItemName,
				Label:       "Item Name",
				Placeholder: "Select item name",
				Choices: []Choice{
					{"shirt", "Shirt"},
					{"jeans", "Jeans"},
					{"t-shirt", "T-Shirt"},
					{"saree", "Saree"},
					{"trousers", "Trousers"},
					{"night-pants", "Night Pants"},
					{"others", "Others"},
				},
			},
			colorField,
			{Name: FieldOccasion, Label: "Occasion", Placeholder: "Enter occasion"},
		},
	},
	CategoryFootwear: {
		Category: CategoryFootwear,
		Title:    "Footwear",
		Noun:     "footwear",
		Fields: []Field{
			{
				Name:        FieldFootwearName,
				Label:       "Footwear Name",
				Placeholder: "Select footwear",
				Choices: []Choice{
					{"Sneakers", "Sneakers"},
					{"Boots", "Boots"},
					{"Sandals", "Sandals"},
					{"Loafers", "Loafers"},
					{"Flip Flops", "Flip Flops"},
					{"Heels", "Heels"},
					{"Others", "Others"},
				},
			},
			colorField,
		},
	},
	CategoryAccessories: {
		Category: CategoryAccessories,
		Title:    "Accessories",
		Noun:     "accessories",
		Fields: []Field{
			{
				Name:        FieldAccessoryName,
				Label:       "Accessory Name",
				Placeholder: "Select an accessory",
				Choices: []Choice{
					{"Hat", "Hat"},
					{"Scarf", "Scarf"},
					{"Watch", "Watch"},
					{"Jewelry", "Jewelry"},
					{"Sunglasses", "Sunglasses"},
					{"Others", "Others"},
				},
			},
			colorField,
		},
	},
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryClothes, CategoryFootwear, CategoryAccessories}
}

// ParseCategory returns the category with the given name.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := schemas[c]; !ok {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// Collection returns the document store collection holding the category.
func (c Category) Collection() string {
	return string(c)
}

// Schema returns the category's field schema.
func (c Category) Schema() Schema {
	return schemas[c]
}

// Field returns the named field of the schema.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// HasChoices reports whether the field offers a list of suggested values.
func (f Field) HasChoices() bool {
	return len(f.Choices) > 0
}

// OtherChoice returns the field's "others" choice value, if it has one.
func (f Field) OtherChoice() string {
	for _, c := range f.Choices {
		if strings.EqualFold(c.Value, "others") {
			return c.Value
		}
	}
	return ""
}

// ResolveChoice returns the value to store for a choice field. If the
// "others" choice is selected and other is non-empty, the free text replaces
// it; otherwise the selected value is kept as is.
func (f Field) ResolveChoice(selected, other string) string {
	other = strings.TrimSpace(other)
	if other != "" && selected != "" && selected == f.OtherChoice() {
		return other
	}
	return selected
}
