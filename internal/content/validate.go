package content

import (
	"errors"
	"fmt"
	"strings"

	"landing/internal/model"
)

var (
	ErrEmptyField   = errors.New("content field is empty")
	ErrEmptyList    = errors.New("content list is empty")
	ErrDuplicateFAQ = errors.New("duplicate faq id")
)

// Validate checks that every collection is non-empty, every string field is
// set, and FAQ ids are unique. It returns all problems joined together.
func Validate(s Site) error {
	var errs []error

	requireText := func(path, v string) {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("%s: %w", path, ErrEmptyField))
		}
	}
	requireRich := func(path string, r model.RichText) {
		if len(r) == 0 {
			errs = append(errs, fmt.Errorf("%s: %w", path, ErrEmptyList))
			return
		}
		requireText(path, r.String())
	}
	requireLen := func(path string, n int) bool {
		if n == 0 {
			errs = append(errs, fmt.Errorf("%s: %w", path, ErrEmptyList))
			return false
		}
		return true
	}

	requireText("headline", s.Headline)
	requireRich("lead", s.Lead)

	if requireLen("nav", len(s.Nav)) {
		for i, l := range s.Nav {
			requireText(fmt.Sprintf("nav[%d].label", i), l.Label)
			requireText(fmt.Sprintf("nav[%d].href", i), l.Href)
		}
	}
	if requireLen("selling_points", len(s.SellingPoints)) {
		for i, p := range s.SellingPoints {
			requireText(fmt.Sprintf("selling_points[%d].label", i), p.Label)
		}
	}
	if requireLen("approach", len(s.Approach)) {
		for i, a := range s.Approach {
			requireText(fmt.Sprintf("approach[%d].icon", i), string(a.Icon))
			requireText(fmt.Sprintf("approach[%d].title", i), a.Title)
			requireText(fmt.Sprintf("approach[%d].description", i), a.Description)
		}
	}
	if requireLen("features", len(s.Features)) {
		for i, f := range s.Features {
			requireText(fmt.Sprintf("features[%d].icon", i), string(f.Icon))
			requireText(fmt.Sprintf("features[%d].title", i), f.Title)
			requireText(fmt.Sprintf("features[%d].description", i), f.Description)
		}
	}

	requireText("evidence.title", s.Evidence.Title)
	requireText("evidence.transcript", s.Evidence.Transcript.Body)
	requireText("evidence.csv", s.Evidence.CSV.Body)
	for i, p := range s.Evidence.Points {
		requireRich(fmt.Sprintf("evidence.points[%d]", i), p)
	}

	if requireLen("packages", len(s.Packages)) {
		for i, p := range s.Packages {
			requireText(fmt.Sprintf("packages[%d].name", i), p.Name)
			requireText(fmt.Sprintf("packages[%d].description", i), p.Description)
			if requireLen(fmt.Sprintf("packages[%d].bullets", i), len(p.Bullets)) {
				for j, b := range p.Bullets {
					requireText(fmt.Sprintf("packages[%d].bullets[%d]", i, j), b)
				}
			}
		}
	}

	if requireLen("faq", len(s.FAQ)) {
		seen := make(map[string]struct{}, len(s.FAQ))
		for i, f := range s.FAQ {
			requireText(fmt.Sprintf("faq[%d].id", i), f.ID)
			requireText(fmt.Sprintf("faq[%d].question", i), f.Question)
			requireRich(fmt.Sprintf("faq[%d].answer", i), f.Answer)
			if _, dup := seen[f.ID]; dup && f.ID != "" {
				errs = append(errs, fmt.Errorf("faq[%d].id %q: %w", i, f.ID, ErrDuplicateFAQ))
			}
			seen[f.ID] = struct{}{}
		}
	}

	requireText("cta.title", s.CTA.Title)
	requireText("cta.acknowledgement", s.CTA.Acknowledgement)

	return errors.Join(errs...)
}
