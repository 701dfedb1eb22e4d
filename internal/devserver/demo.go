package devserver

import "github.com/atomicstack/recipebox/internal/api"

// NewDemo returns a server preloaded with a small cookbook.
func NewDemo() *Server {
	s := New()
	s.Seed(
		[]api.Category{
			{ID: "1", Name: "Breakfast"},
			{ID: "2", Name: "Soups"},
			{ID: "3", Name: "Dessert"},
		},
		[]api.Recipe{
			{ID: "10", Item: "Shakshuka", Category: "1", Image: "shakshuka.jpg",
				Ingredient: "<ul><li>4 eggs</li><li>400g tomatoes</li><li>1 onion</li><li>cumin, paprika</li></ul>"},
			{ID: "11", Item: "Buttermilk pancakes", Category: "1", Image: "pancakes.jpg",
				Ingredient: "<p>Batter:</p><ol><li>200g flour</li><li>2 eggs</li><li>300ml buttermilk</li></ol>"},
			{ID: "12", Item: "Miso soup", Category: "2", Image: "miso.jpg",
				Ingredient: "dashi\nwhite miso\ntofu\nwakame"},
			{ID: "13", Item: "Lentil soup", Category: "2",
				Ingredient: "<ul><li>red lentils</li><li>carrot</li><li>lemon</li></ul>"},
			{ID: "14", Item: "Panna cotta", Category: "3", Image: "pannacotta.jpg",
				Ingredient: "<p>cream, sugar, gelatine &amp; vanilla</p>"},
		},
	)
	return s
}
