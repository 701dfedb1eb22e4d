package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

const (
	pathAllRecipes    = "/api/recipe/get-all-recipe"
	pathAllCategories = "/api/recipe/get-all-category"
	pathDeleteRecipe  = "/api/recipe/delete-recipe/"
	pathFilter        = "/api/recipe/filter"
	pathSearch        = "/api/recipe/search-recipe"
	pathAddCategory   = "/api/recipe/add-category"
	pathAddRecipe     = "/api/recipe/add-recipe"
)

// AllRecipes fetches every recipe.
func (c *Client) AllRecipes(ctx context.Context) ([]Recipe, error) {
	env, err := c.do(ctx, "get all recipes", http.MethodGet, pathAllRecipes, nil, nil)
	if err != nil {
		return nil, err
	}
	return env.recipeList(), nil
}

// AllCategories fetches every category.
func (c *Client) AllCategories(ctx context.Context) ([]Category, error) {
	env, err := c.do(ctx, "get all categories", http.MethodGet, pathAllCategories, nil, nil)
	if err != nil {
		return nil, err
	}
	return env.categoryList(), nil
}

// FilterRecipes returns the recipes of one category. An empty id is sent
// as-is; the service decides what an empty filter means.
func (c *Client) FilterRecipes(ctx context.Context, categoryID ID) ([]Recipe, error) {
	q := url.Values{}
	q.Set("filter", string(categoryID))
	env, err := c.do(ctx, "filter recipes", http.MethodGet, pathFilter, q, nil)
	if err != nil {
		return nil, err
	}
	return env.recipeList(), nil
}

// SearchRecipes runs a free-text search on the service.
func (c *Client) SearchRecipes(ctx context.Context, query string) ([]Recipe, error) {
	q := url.Values{}
	q.Set("search", query)
	env, err := c.do(ctx, "search recipes", http.MethodGet, pathSearch, q, nil)
	if err != nil {
		return nil, err
	}
	return env.recipeList(), nil
}

// DeleteRecipe removes a recipe by id.
func (c *Client) DeleteRecipe(ctx context.Context, id ID) error {
	trimmed := strings.TrimSpace(string(id))
	if trimmed == "" {
		return &TransportError{Op: "delete recipe", Err: errors.New("recipe id required")}
	}
	_, err := c.do(ctx, "delete recipe", http.MethodDelete, pathDeleteRecipe+url.PathEscape(trimmed), nil, nil)
	return err
}

// AddCategory creates a category.
func (c *Client) AddCategory(ctx context.Context, name string) error {
	payload := struct {
		Category string `json:"category"`
	}{Category: name}
	_, err := c.do(ctx, "add category", http.MethodPost, pathAddCategory, nil, payload)
	return err
}

// AddRecipe creates a recipe.
func (c *Client) AddRecipe(ctx context.Context, r NewRecipe) error {
	_, err := c.do(ctx, "add recipe", http.MethodPost, pathAddRecipe, nil, r)
	return err
}
