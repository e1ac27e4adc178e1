package droputil

import (
	"strings"

	"github.com/collectionlog/backend/internal/model"
)

// CategorySignal carries the hints available when categorizing an extracted row.
type CategorySignal struct {
	// Heading is the text of the nearest section heading preceding the table.
	Heading string

	SourceName string
}

type CategoryRule struct {
	Name     string
	Match    func(sig CategorySignal) bool
	Category model.DropSourceType
}

// CategoryRules is evaluated top to bottom and the first matching rule wins.
type CategoryRules []CategoryRule

// DefaultCategoryRules lets section headings take precedence over source names.
var DefaultCategoryRules = CategoryRules{
	{Name: "heading.shop", Match: headingContains("shop", "store"), Category: model.DropSourceTypeShop},
	{Name: "heading.thieving", Match: headingContains("pickpocket", "thieving", "stall"), Category: model.DropSourceTypeThieving},
	{Name: "heading.clue", Match: headingContains("clue", "treasure trail"), Category: model.DropSourceTypeClue},
	{Name: "heading.minigame", Match: headingContains("minigame", "reward"), Category: model.DropSourceTypeMinigame},
	{Name: "heading.skilling", Match: headingContains("skilling", "fishing", "mining", "woodcutting", "farming", "hunter"), Category: model.DropSourceTypeSkilling},
	{Name: "heading.container", Match: headingContains("container", "casket", "crate", "chest", "supplies"), Category: model.DropSourceTypeContainer},
	{Name: "source.clue", Match: sourceContains("clue scroll", "reward casket"), Category: model.DropSourceTypeClue},
	{Name: "source.thieving", Match: sourceContains("pickpocket", "stall"), Category: model.DropSourceTypeThieving},
	{Name: "source.container", Match: sourceContains("casket", "crate", "chest", "sack", "supplies"), Category: model.DropSourceTypeContainer},
}

// Categorize returns the category of the first matching rule, or fallback when none match.
func (rules CategoryRules) Categorize(sig CategorySignal, fallback model.DropSourceType) model.DropSourceType {
	sig.Heading = strings.ToLower(sig.Heading)
	sig.SourceName = strings.ToLower(sig.SourceName)

	for _, rule := range rules {
		if rule.Match(sig) {
			return rule.Category
		}
	}
	return fallback
}

func headingContains(keywords ...string) func(CategorySignal) bool {
	return func(sig CategorySignal) bool {
		return containsAny(sig.Heading, keywords)
	}
}

func sourceContains(keywords ...string) func(CategorySignal) bool {
	return func(sig CategorySignal) bool {
		return containsAny(sig.SourceName, keywords)
	}
}

func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
