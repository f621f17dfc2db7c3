package lexicon

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/types"
)

// Loader assembles a SkillLexicon from one source per category
type Loader struct {
	sources map[types.Category]Source
	logger  *zap.Logger
}

// NewLoader creates a Loader. Nil sources are skipped; a nil logger is replaced by a no-op one.
func NewLoader(hard, soft Source, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	sources := make(map[types.Category]Source)
	if hard != nil {
		sources[types.CategoryHard] = hard
	}
	if soft != nil {
		sources[types.CategorySoft] = soft
	}
	return &Loader{sources: sources, logger: logger}
}

// Load reads every category. An unavailable source degrades to an empty
// category and is logged rather than returned.
func (l *Loader) Load(ctx context.Context) *types.SkillLexicon {
	lex := types.NewSkillLexicon()
	for _, category := range types.Categories {
		source, ok := l.sources[category]
		if !ok {
			continue
		}
		terms, err := source.Load(ctx)
		if err != nil {
			l.logger.Warn("skill lexicon unavailable, using empty lexicon",
				zap.String("category", string(category)),
				zap.String("source", source.Name()),
				zap.Error(err),
			)
			continue
		}
		lex.Add(category, terms...)
	}
	return lex
}
