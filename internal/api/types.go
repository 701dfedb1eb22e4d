package api

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID is an opaque record identifier. The service emits numeric ids for some
// records and string ids for others, so both decode into the same value.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

type Recipe struct {
	ID         ID     `json:"id"`
	Item       string `json:"item"`
	Image      string `json:"image"`
	Ingredient string `json:"ingredient"`
	Category   ID     `json:"category,omitempty"`
}

type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"category"`
}

// NewRecipe is the payload of the add-recipe form.
type NewRecipe struct {
	Item       string `json:"item"`
	Image      string `json:"image"`
	Ingredient string `json:"ingredient"`
	Category   ID     `json:"category"`
}

// envelope is the common response shape. Recipe lists arrive under "recipes"
// on every endpoint except search, which uses "recipe"; both are accepted.
type envelope struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message,omitempty"`
	Recipes    []Recipe   `json:"recipes,omitempty"`
	Recipe     []Recipe   `json:"recipe,omitempty"`
	Categories []Category `json:"categories,omitempty"`
}

func (e envelope) recipeList() []Recipe {
	if e.Recipes != nil {
		return e.Recipes
	}
	if e.Recipe != nil {
		return e.Recipe
	}
	return []Recipe{}
}

func (e envelope) categoryList() []Category {
	if e.Categories != nil {
		return e.Categories
	}
	return []Category{}
}
