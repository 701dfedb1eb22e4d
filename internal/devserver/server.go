// Package devserver is an in-memory implementation of the recipe service's
// REST contract. It backs the --demo mode and the package tests.
package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/recipebox/internal/api"
	"github.com/atomicstack/recipebox/internal/format/richtext"
	"github.com/atomicstack/recipebox/internal/logging"
)

// Server keeps recipes and categories in memory and counts requests per path.
type Server struct {
	mu          sync.Mutex
	recipes     []api.Recipe
	categories  []api.Category
	nextID      int
	hits        map[string]int
	failDeletes bool
}

// New returns an empty server.
func New() *Server {
	return &Server{nextID: 1, hits: make(map[string]int)}
}

// Seed replaces the stored data. Numeric ids advance the id counter.
func (s *Server) Seed(categories []api.Category, recipes []api.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]api.Category(nil), categories...)
	s.recipes = append([]api.Recipe(nil), recipes...)
	for _, id := range s.allIDs() {
		if n, err := strconv.Atoi(string(id)); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
}

func (s *Server) allIDs() []api.ID {
	ids := make([]api.ID, 0, len(s.recipes)+len(s.categories))
	for _, r := range s.recipes {
		ids = append(ids, r.ID)
	}
	for _, c := range s.categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// FailDeletes makes delete requests answer with success=false.
func (s *Server) FailDeletes(fail bool) {
	s.mu.Lock()
	s.failDeletes = fail
	s.mu.Unlock()
}

// Hits reports how many requests reached path (without query or trailing
// slash), e.g. "/api/recipe/get-all-recipe".
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[strings.TrimRight(path, "/")]
}

// Recipes returns the stored recipes.
func (s *Server) Recipes() []api.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]api.Recipe(nil), s.recipes...)
}

// Categories returns the stored categories.
func (s *Server) Categories() []api.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]api.Category(nil), s.categories...)
}

// Handler exposes the REST routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, suffix := range []string{"", "/"} {
		mux.HandleFunc("GET /api/recipe/get-all-recipe"+suffix, s.handleAllRecipes)
		mux.HandleFunc("GET /api/recipe/get-all-category"+suffix, s.handleAllCategories)
		mux.HandleFunc("GET /api/recipe/filter"+suffix, s.handleFilter)
		mux.HandleFunc("GET /api/recipe/search-recipe"+suffix, s.handleSearch)
		mux.HandleFunc("POST /api/recipe/add-category"+suffix, s.handleAddCategory)
		mux.HandleFunc("POST /api/recipe/add-recipe"+suffix, s.handleAddRecipe)
	}
	mux.HandleFunc("DELETE /api/recipe/delete-recipe/{id}", s.handleDelete)
	return withCommonHeaders(s.count(mux))
}

func (s *Server) count(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimRight(r.URL.Path, "/")
		s.mu.Lock()
		s.hits[path]++
		s.mu.Unlock()
		h.ServeHTTP(w, r)
	})
}

func (s *Server) handleAllRecipes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "recipes": s.Recipes()})
}

func (s *Server) handleAllCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "categories": s.Categories()})
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	filter := api.ID(strings.TrimSpace(r.URL.Query().Get("filter")))
	matches := make([]api.Recipe, 0)
	for _, recipe := range s.Recipes() {
		if filter == "" || recipe.Category == filter {
			matches = append(matches, recipe)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "recipes": matches})
}

// handleSearch answers under the singular "recipe" key, as the real service does.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search")))
	matches := make([]api.Recipe, 0)
	for _, recipe := range s.Recipes() {
		haystack := strings.ToLower(recipe.Item + "\n" + richtext.PlainText(recipe.Ingredient))
		if strings.Contains(haystack, query) {
			matches = append(matches, recipe)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "recipe": matches})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := api.ID(r.PathValue("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failDeletes {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "delete disabled"})
		return
	}
	for i, recipe := range s.recipes {
		if recipe.ID == id {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": fmt.Sprintf("recipe %s not found", id)})
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(req.Category)
	if name == "" {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "category name required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "category already exists"})
			return
		}
	}
	s.categories = append(s.categories, api.Category{ID: s.allocID(), Name: name})
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleAddRecipe(w http.ResponseWriter, r *http.Request) {
	var req api.NewRecipe
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Item) == "" {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "item required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = append(s.recipes, api.Recipe{
		ID:         s.allocID(),
		Item:       strings.TrimSpace(req.Item),
		Image:      strings.TrimSpace(req.Image),
		Ingredient: req.Ingredient,
		Category:   req.Category,
	})
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) allocID() api.ID {
	id := api.ID(strconv.Itoa(s.nextID))
	s.nextID++
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		logging.Error(fmt.Errorf("devserver: encode response: %w", err))
	}
}

func withCommonHeaders(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// Listen serves the handler on addr (use "127.0.0.1:0" for a free port) and
// returns the base URL plus a shutdown function.
func (s *Server) Listen(addr string) (string, func(context.Context) error, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, fmt.Errorf("devserver listen %s: %w", addr, err)
	}
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(fmt.Errorf("devserver: %w", err))
		}
	}()
	return "http://" + ln.Addr().String(), srv.Shutdown, nil
}
