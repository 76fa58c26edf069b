package mock

import "github.com/kalyug-papa-bolo/vahan"

var _ vahan.Document = (*Document)(nil)

// Document is a mock implementation of vahan.Document. Methods whose
// Fn is nil report absence, matching the domain's lookup contract.
type Document struct {
	TitleFn        func() (string, bool)
	CardValueFn    func(text string) (string, bool)
	LabelValueFn   func(text string, exact bool) (string, bool)
	SectionFn      func(text string) (vahan.Section, bool)
	ExpiredAlertFn func() (string, bool)
}

func (d *Document) Title() (string, bool) {
	if d.TitleFn == nil {
		return "", false
	}
	return d.TitleFn()
}

func (d *Document) CardValue(text string) (string, bool) {
	if d.CardValueFn == nil {
		return "", false
	}
	return d.CardValueFn(text)
}

func (d *Document) LabelValue(text string, exact bool) (string, bool) {
	if d.LabelValueFn == nil {
		return "", false
	}
	return d.LabelValueFn(text, exact)
}

func (d *Document) Section(text string) (vahan.Section, bool) {
	if d.SectionFn == nil {
		return nil, false
	}
	return d.SectionFn(text)
}

func (d *Document) ExpiredAlert() (string, bool) {
	if d.ExpiredAlertFn == nil {
		return "", false
	}
	return d.ExpiredAlertFn()
}

var _ vahan.Section = (*Section)(nil)

// Section is a mock implementation of vahan.Section. A nil ValueFn
// reports absence; a non-nil Values map serves lookups directly.
type Section struct {
	ValueFn func(label string) (string, bool)
	Values  map[string]string
}

func (s *Section) Value(label string) (string, bool) {
	if s.ValueFn != nil {
		return s.ValueFn(label)
	}
	v, ok := s.Values[label]
	return v, ok
}
