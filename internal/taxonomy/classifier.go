package taxonomy

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// Default category used when no keyword matches or the best score is tied.
const (
	DefaultCategoryCode = "TX001"
	DefaultCategoryName = "Textiles"
)

// normalizePattern keeps ASCII letters/digits and the Devanagari block used
// for Hindi keywords; everything else becomes a space.
var (
	normalizePattern = regexp.MustCompile(`[^a-z0-9\x{0900}-\x{097F}\s]`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

// Classifier assigns an enterprise's free-text products to a taxonomy
// category by counting distinct whole-token keyword hits per category.
type Classifier struct {
	categories CategoryRepository
	logger     *slog.Logger
}

// NewClassifier creates a Classifier over the given category repository.
func NewClassifier(categories CategoryRepository, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		categories: categories,
		logger:     logger,
	}
}

// Classify returns the code and name of the category whose keywords score
// the strictly highest number of distinct whole-token hits across the
// product terms and any extra context strings (business name, transcript).
// Ties and the zero-hit case resolve to the default category. Classify
// never fails: category load errors are logged and fall back to the default.
func (c *Classifier) Classify(ctx context.Context, products []string, extra ...string) (string, string) {
	parts := make([]string, 0, len(products)+len(extra))
	parts = append(parts, products...)
	parts = append(parts, extra...)
	text := strings.TrimSpace(strings.Join(parts, " "))

	categories, err := c.categories.Categories(ctx)
	if err != nil {
		c.logger.Warn("category load failed, using default category", "error", err)
		return DefaultCategoryCode, DefaultCategoryName
	}
	if len(categories) == 0 {
		return DefaultCategoryCode, DefaultCategoryName
	}

	bestCode, bestName := "", ""
	bestHits := 0
	tied := false

	for _, category := range categories {
		hits := 0
		for _, keyword := range category.Keywords {
			if hasKeyword(text, keyword) {
				hits++
			}
		}

		switch {
		case hits > bestHits:
			bestCode, bestName = category.Code, category.Name
			bestHits = hits
			tied = false
		case hits == bestHits && hits > 0:
			tied = true
		}
	}

	if bestHits == 0 || tied {
		return DefaultCategoryCode, DefaultCategoryName
	}
	return bestCode, bestName
}

// normalize lower-cases the text, strips everything outside ASCII
// letters/digits and the Devanagari block, and collapses whitespace.
func normalize(text string) string {
	text = strings.ToLower(text)
	text = normalizePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}

// hasKeyword reports whether the normalized keyword occurs as a whole token
// in the normalized text. Both sides are padded with boundary spaces before
// the substring search so "cap" never matches inside "capacity".
func hasKeyword(text, keyword string) bool {
	kw := normalize(keyword)
	if kw == "" {
		return false
	}
	padded := " " + normalize(text) + " "
	return strings.Contains(padded, " "+kw+" ")
}
