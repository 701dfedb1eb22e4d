package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/recipebox/internal/api"
	"github.com/atomicstack/recipebox/internal/format/richtext"
	"github.com/atomicstack/recipebox/internal/format/table"
	"github.com/atomicstack/recipebox/internal/route"
	uistate "github.com/atomicstack/recipebox/internal/ui/state"
)

// cardLines is the height of one recipe card: title, ingredients, image.
const cardLines = 3

func newCardLevel() *level {
	l := uistate.NewLevel(cardsLevelID, "Recipes", nil)
	l.EntryHeight = cardLines
	return l
}

const (
	ingredientSeparator = " · "
	noIngredientsText   = "(no ingredients)"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI styling
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.pageHeader()
	switch m.mode {
	case ModeCategoryForm:
		if m.categoryForm != nil {
			return m.viewCategoryForm(header)
		}
	case ModeRecipeForm:
		if m.recipeForm != nil {
			return m.viewRecipeForm(header)
		}
	case ModePicker:
		if m.picker != nil {
			return m.viewPicker(header)
		}
	}
	return m.viewList(header)
}

func (m *Model) pageHeader() string {
	title := m.routes.Title(m.route)
	if name := m.session.DisplayName(); name != "" {
		return styles.Title.Render(title) + "  " + styles.User.Render("signed in as "+name)
	}
	return styles.Title.Render(title)
}

func (m *Model) viewList(header string) string {
	lines := make([]styledLine, 0, 32)
	lines = append(lines,
		styledLine{text: header, raw: true},
		styledLine{text: m.search.View(), raw: true},
		styledLine{text: m.categoryLine(), style: styles.CardMeta},
		styledLine{},
	)
	if len(m.cards.Items) == 0 {
		lines = append(lines, styledLine{text: emptyListText, style: styles.Empty})
	} else {
		m.syncViewport(m.cards)
		lines = append(lines, m.cardLines()...)
	}
	if t, ok := m.currentToast(); ok {
		lines = append(lines, styledLine{}, styledLine{text: toastStyle(t.Kind).Render(t.Message), raw: true})
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: m.footerText(), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) categoryLine() string {
	if m.selected.ID == "" {
		return "Category: all (f to choose)"
	}
	name := m.selected.Name
	if name == "" {
		name = string(m.selected.ID)
	}
	return fmt.Sprintf("Category: %s (f to change)", name)
}

// footerText lists the keys. The add-recipe hint is computed from the
// category snapshot on every render.
func (m *Model) footerText() string {
	addRecipe := "a add recipe"
	if route.AddRecipeTarget(m.categories.Len()) != route.AddRecipe {
		addRecipe = "a add recipe (needs a category)"
	}
	return strings.Join([]string{
		"↑/↓ move", "/ search", "f category", "d delete",
		"c add category", addRecipe, "x export", "r reload", "q quit",
	}, "  ")
}

// cardLines renders the visible window of recipe cards.
func (m *Model) cardLines() []styledLine {
	start, end := m.cards.Reveal(m.cardRows())
	visible := make([]api.Recipe, 0, end-start)
	for _, item := range m.cards.Items[start:end] {
		if r, ok := m.recipes.Find(api.ID(item.ID)); ok {
			visible = append(visible, r)
		} else {
			visible = append(visible, api.Recipe{ID: api.ID(item.ID), Item: item.Label})
		}
	}
	rows := make([][]string, len(visible))
	for i, r := range visible {
		category := m.categories.Name(r.Category)
		if category == "" && r.Category != "" {
			category = "#" + string(r.Category)
		}
		rows[i] = []string{r.Item, category, "#" + string(r.ID)}
	}
	titles := table.Format(rows, []table.Column{{MaxWidth: 40}, {MaxWidth: 20}, {Align: table.AlignRight}})

	lines := make([]styledLine, 0, len(visible)*cardLines)
	for i, r := range visible {
		idx := start + i
		ingredients := richtext.Summary(r.Ingredient, ingredientSeparator)
		if ingredients == "" {
			ingredients = noIngredientsText
		}
		image := strings.TrimSpace(r.Image)
		if image == "" {
			image = "-"
		}
		lines = append(lines,
			m.buildItemLine(titles[i], idx, m.cards, m.width),
			m.buildCardDetail("   "+ingredients, idx),
			m.buildCardDetail("   image: "+image, idx),
		)
	}
	return lines
}

func (m *Model) viewPicker(header string) string {
	lines := []styledLine{
		{text: header, raw: true},
		{text: m.picker.Title, style: styles.Header},
	}
	m.syncViewport(m.picker)
	if len(m.picker.Items) == 0 {
		lines = append(lines, styledLine{text: fmt.Sprintf("No matches for %q", m.picker.Filter), style: styles.Info})
	} else {
		start, end := m.picker.Reveal(m.pickerRows())
		for i, item := range m.picker.Items[start:end] {
			lines = append(lines, m.buildItemLine(item.Label, start+i, m.picker, m.width))
		}
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: "↑/↓ move  enter select  esc back", style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-1, m.width)
	lines = applyWidth(lines, m.width)
	prompt := applyWidth([]styledLine{{text: m.filterPrompt(), raw: true}}, m.width)
	return renderLines(append(lines, prompt...))
}

// buildItemLine constructs a single styledLine for a list entry. When width
// is positive the text is padded so the selected entry's background spans
// the full line.
func (m *Model) buildItemLine(label string, idx int, current *level, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	return styledLine{
		text:          padText("▌ "+label, width),
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) buildCardDetail(text string, idx int) styledLine {
	indicatorStyle := styles.ItemIndicator
	if idx == m.cards.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
	}
	return styledLine{
		text:          "▌" + text,
		style:         styles.CardBody,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func padText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if pad := width - lipgloss.Width(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}

// cardRows returns the screen lines left for recipe cards, or -1 when the
// terminal height is unknown.
func (m *Model) cardRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 4 // header, search, category, blank
	if _, ok := m.currentToast(); ok {
		used += 2
	}
	if m.errMsg != "" {
		used++
	}
	if m.showFooter {
		used += 2
	}
	return max(m.height-used, 1)
}

func (m *Model) pickerRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header, title, filter prompt
	if m.showFooter {
		used += 2
	}
	return max(m.height-used, 1)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			if lipgloss.Width(line.text) > width {
				line.text = truncate.StringWithTail(line.text, uint(width-1), "…")
			}
		} else {
			line.text = truncateText(line.text, width)
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return string([]rune(text)[:1])
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
