// Package linefilter реализует построчную фильтрацию полезной нагрузки
// подписок по набору регулярных выражений группы.
package linefilter

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter — скомпилированный набор шаблонов. Строка отбрасывается,
// если совпала хотя бы с одним шаблоном.
type Filter struct {
	patterns []*regexp.Regexp
}

// Compile компилирует шаблоны группы. Некорректный шаблон — ошибка:
// группа с ним не должна сохраняться.
func Compile(patterns []string) (*Filter, error) {
	const op = "linefilter.Compile"
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%s: pattern %q: %w", op, pattern, err)
		}
		compiled = append(compiled, re)
	}
	return &Filter{patterns: compiled}, nil
}

// Apply убирает из payload строки, совпавшие с любым из шаблонов.
// Завершающий перевод строки исходного payload сохраняется.
func (f *Filter) Apply(payload string) string {
	if len(f.patterns) == 0 || payload == "" {
		return payload
	}

	trailingNewline := strings.HasSuffix(payload, "\n")
	lines := strings.Split(strings.TrimSuffix(payload, "\n"), "\n")

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if f.matches(line) {
			continue
		}
		kept = append(kept, line)
	}

	out := strings.Join(kept, "\n")
	if trailingNewline && out != "" {
		out += "\n"
	}
	return out
}

func (f *Filter) matches(line string) bool {
	for _, re := range f.patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
