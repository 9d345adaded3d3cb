package runtime

import (
	"fmt"

	"github.com/aretw0/quickstart/pkg/domain"
)

// validate checks that a question can be dispatched. Inconsistent but
// harmless configuration is logged and tolerated.
func (e *Engine) validate(q domain.Question) error {
	if !q.Type.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownQuestionType, q.Type)
	}

	if q.Type.IsSelect() && len(q.Options) == 0 {
		e.logger.Warn("select question has no options", "path", q.Path)
	}
	if !q.Type.IsSelect() && len(q.OptionsConfiguration) > 0 {
		e.logger.Warn("optionsConfiguration ignored: question is not a select", "path", q.Path, "type", q.Type)
	}
	for value := range q.OptionsConfiguration {
		if _, ok := q.Option(value); !ok {
			e.logger.Warn("optionsConfiguration refers to an unknown option", "path", q.Path, "option", value)
		}
	}
	if q.Type == domain.QuestionSelectMulti {
		for value, cfg := range q.OptionsConfiguration {
			if cfg.DefaultIf != "" {
				e.logger.Warn("default_if ignored on select_multi", "path", q.Path, "option", value)
			}
		}
	}
	return nil
}
