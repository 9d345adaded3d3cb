package runtime

import (
	"strings"

	"github.com/aretw0/quickstart/pkg/document"
	"github.com/aretw0/quickstart/pkg/domain"
)

// InvalidAnswerNotice is shown when a mandatory question receives no answer.
const InvalidAnswerNotice = "Invalid answer, please try again"

// stringPrompt renders "Please enter D (default: DD): ".
// The default description wins over the current value when both exist.
func stringPrompt(q domain.Question, current any) string {
	var b strings.Builder
	b.WriteString("Please enter ")
	b.WriteString(q.Description)
	switch {
	case q.DefaultDescription != "":
		b.WriteString(" (default: ")
		b.WriteString(q.DefaultDescription)
		b.WriteString(")")
	case document.Text(current) != "":
		b.WriteString(" (current: ")
		b.WriteString(document.Text(current))
		b.WriteString(")")
	}
	b.WriteString(": ")
	return b.String()
}

// choiceView is what a prompter gets to show for a select question.
// values[i] is the option value behind labels[i].
type choiceView struct {
	prompt       string
	labels       []string
	values       []string
	defaultIndex int
}

func indexOfOption(options []domain.Option, value string) int {
	for i, o := range options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

// singleView lays out a select_single question.
func singleView(q domain.Question, options []domain.Option, current, def any) choiceView {
	selected := ""
	if current != nil && indexOfOption(options, document.Text(current)) >= 0 {
		selected = document.Text(current)
	}
	defValue := ""
	if def != nil {
		defValue = document.Text(def)
	}
	if selected == "" && defValue != "" && indexOfOption(options, defValue) >= 0 {
		selected = defValue
	}

	view := choiceView{defaultIndex: -1}
	var prompt strings.Builder
	prompt.WriteString("Please select ")
	prompt.WriteString(q.Description)
	if selected != "" {
		prompt.WriteString(" (current: ")
		prompt.WriteString(options[indexOfOption(options, selected)].Label)
		prompt.WriteString(")")
	}
	prompt.WriteString(": ")
	view.prompt = prompt.String()

	for i, o := range options {
		label := o.Label
		if defValue != "" && o.Value == defValue {
			label += domain.DefaultSuffix
		}
		view.labels = append(view.labels, label)
		view.values = append(view.values, o.Value)
		if o.Value == selected {
			view.defaultIndex = i
		}
	}

	if !q.Mandatory {
		label := domain.NoneLabel
		if selected == "" {
			label += domain.DefaultSuffix
			view.defaultIndex = len(view.values)
		}
		view.labels = append(view.labels, label)
		view.values = append(view.values, domain.NoneValue)
	}
	return view
}

// multiView is a choiceView plus the current entries that survive.
type multiView struct {
	choiceView
	kept []any
}

// newMultiView lays out a select_multi question. Entries already chosen are
// not offered again; entries no longer among the options are dropped.
func newMultiView(q domain.Question, options []domain.Option, current any) multiView {
	var kept []any
	chosen := map[string]bool{}
	var labels []string
	if current != nil {
		kept = []any{}
		for _, entry := range asList(current) {
			value := document.Text(entry)
			i := indexOfOption(options, value)
			if i < 0 || chosen[value] {
				continue
			}
			chosen[value] = true
			kept = append(kept, value)
			labels = append(labels, options[i].Label)
		}
	}

	view := multiView{kept: kept}
	view.defaultIndex = -1

	var prompt strings.Builder
	prompt.WriteString("Please select ")
	prompt.WriteString(q.Description)
	if len(labels) > 0 {
		prompt.WriteString(" (current: ")
		prompt.WriteString(strings.Join(labels, ","))
		prompt.WriteString(")")
	}
	prompt.WriteString(": ")
	view.prompt = prompt.String()

	for _, o := range options {
		if chosen[o.Value] {
			continue
		}
		view.labels = append(view.labels, o.Label)
		view.values = append(view.values, o.Value)
	}

	if !q.Mandatory || len(kept) > 0 {
		view.labels = append(view.labels, domain.NoneLabel+domain.DefaultSuffix)
		view.values = append(view.values, domain.NoneValue)
	}
	if !q.Mandatory && len(view.values) > 0 {
		view.defaultIndex = len(view.values) - 1
	}
	return view
}

func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}
