package core

// Source classifies the origin of a sale's revenue. The set is closed: any
// mapping keyed on Source (labels, display colors) is defined for every tag
// and for nothing else, so an unknown tag can never slip past ParseSource.
type Source string

const (
	SourceInfoProduct Source = "info-produto"
	SourceCourse      Source = "curso"
	SourceMentoring   Source = "mentoria"
	SourceEbook       Source = "ebook"
	SourceConsulting  Source = "consultoria"
	SourceOther       Source = "outro"
)

// Sources lists every valid tag in display order.
func Sources() []Source {
	return []Source{
		SourceInfoProduct,
		SourceCourse,
		SourceMentoring,
		SourceEbook,
		SourceConsulting,
		SourceOther,
	}
}

var sourceLabels = map[Source]string{
	SourceInfoProduct: "Info-Produto",
	SourceCourse:      "Curso",
	SourceMentoring:   "Mentoria",
	SourceEbook:       "E-book",
	SourceConsulting:  "Consultoria",
	SourceOther:       "Outro",
}

// Display color classes used by the dashboard history list.
var sourceColors = map[Source]string{
	SourceInfoProduct: "tag--emerald",
	SourceCourse:      "tag--blue",
	SourceMentoring:   "tag--purple",
	SourceEbook:       "tag--amber",
	SourceConsulting:  "tag--rose",
	SourceOther:       "tag--slate",
}

// ParseSource maps a raw tag to a Source, rejecting anything outside the
// closed set.
func ParseSource(s string) (Source, error) {
	src := Source(s)
	if _, ok := sourceLabels[src]; !ok {
		return "", ErrInvalidSource
	}
	return src, nil
}

func (s Source) Validate() error {
	if _, ok := sourceLabels[s]; !ok {
		return ErrInvalidSource
	}
	return nil
}

// Label returns the human-readable name for the tag. Unknown tags fall back
// to the raw string so a stale snapshot still renders.
func (s Source) Label() string {
	if l, ok := sourceLabels[s]; ok {
		return l
	}
	return string(s)
}

// ColorClass returns the CSS class used to color the tag in the history list.
func (s Source) ColorClass() string {
	if c, ok := sourceColors[s]; ok {
		return c
	}
	return sourceColors[SourceOther]
}
