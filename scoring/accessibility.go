package scoring

import (
	"fmt"
	"math"

	"github.com/bizscope/backend/fetch"
	"github.com/bizscope/backend/signals"
)

// ScoreAccessibility grades accessibility from the lab's accessibility
// sub-score plus static-HTML heuristics.
//
// Allocation: lab sub-score x40, alt-text ratio 15 (tiered), heading
// hierarchy 10, form labels 10, skip link 5, ARIA landmarks 5, color
// contrast 5, focus styles 5, lang attribute 5.
//
// Unlike the other scorers, a failed page fetch does not zero this category:
// the lab-derived component can still be awarded.
func ScoreAccessibility(sig signals.SignalSet, mobile *fetch.PerformanceReport) CategoryScore {
	b := newBuilder()

	lab := DetailedCheck{
		Name:         "Lighthouse Accessibility",
		MaxScore:     40,
		WhyItMatters: "The lab audit covers contrast, ARIA validity, and keyboard traps that static checks cannot see.",
	}
	if mobile != nil && mobile.AccessibilityScore != nil {
		lab.Score = int(math.Round(*mobile.AccessibilityScore * 40))
		lab.Details = []string{fmt.Sprintf("Lab accessibility score %.0f/100", *mobile.AccessibilityScore*100)}
	} else {
		lab.Details = []string{"Lab accessibility data unavailable"}
	}
	b.add(lab)

	if !sig.Extracted {
		b.issue("Website could not be fetched; only lab-derived accessibility data is available.")
		return b.build()
	}

	alt := DetailedCheck{
		Name:         "Image Alt Text",
		MaxScore:     15,
		WhyItMatters: "Alt text is how screen readers and image search understand your images.",
	}
	ratio := sig.Accessibility.AltTextRatio()
	switch {
	case ratio >= 0.9:
		alt.Score = 15
		if sig.Accessibility.TotalImages == 0 {
			alt.Details = []string{"No images on the page"}
		} else {
			alt.Details = []string{fmt.Sprintf("%d of %d images have alt text", sig.Accessibility.ImagesWithAlt, sig.Accessibility.TotalImages)}
		}
	case ratio >= 0.5:
		alt.Score = 8
		alt.Status = StatusPartial
		alt.Details = []string{fmt.Sprintf("%d of %d images have alt text", sig.Accessibility.ImagesWithAlt, sig.Accessibility.TotalImages)}
		alt.Recommendation = "Add alt text to the remaining images."
		b.recommend(alt.Recommendation)
	default:
		alt.Details = []string{fmt.Sprintf("Only %d of %d images have alt text", sig.Accessibility.ImagesWithAlt, sig.Accessibility.TotalImages)}
		alt.Recommendation = "Add descriptive alt text to all meaningful images."
		b.issue("Most images are missing alt text.")
		b.recommend(alt.Recommendation)
	}
	b.add(alt)

	headings := DetailedCheck{
		Name:         "Heading Hierarchy",
		MaxScore:     10,
		WhyItMatters: "Screen-reader users navigate by headings; a single H1 anchors the page outline.",
	}
	switch h1Count := len(sig.Headings.H1); {
	case h1Count == 1:
		headings.Score = 10
	case h1Count > 1:
		headings.Score = 5
		headings.Status = StatusPartial
		headings.Details = []string{fmt.Sprintf("%d H1 headings found", h1Count)}
		headings.Recommendation = "Use a single H1 per page."
		b.recommend(headings.Recommendation)
	default:
		headings.Details = []string{"No H1 heading found"}
		headings.Recommendation = "Add an H1 heading to anchor the page structure."
		b.issue("The page has no H1 heading.")
		b.recommend(headings.Recommendation)
	}
	b.add(headings)

	// A page without forms has nothing to label; that earns full credit,
	// mirroring the no-images rule for alt text.
	labels := DetailedCheck{
		Name:         "Form Labels",
		MaxScore:     10,
		WhyItMatters: "Unlabeled form fields are unusable with assistive technology.",
	}
	switch {
	case !sig.Accessibility.HasForms:
		labels.Score = 10
		labels.Details = []string{"No forms on the page"}
	case sig.Accessibility.HasFormLabels:
		labels.Score = 10
	default:
		labels.Details = []string{"Forms present without label elements"}
		labels.Recommendation = "Associate a label (or aria-label) with every form field."
		b.issue("Form fields are missing labels.")
		b.recommend(labels.Recommendation)
	}
	b.add(labels)

	skip := DetailedCheck{Name: "Skip Navigation", MaxScore: 5}
	if sig.Accessibility.HasSkipLink {
		skip.Score = 5
	} else {
		skip.Details = []string{"No skip-navigation link found"}
		skip.Recommendation = "Add a \"skip to content\" link as the first focusable element."
		b.recommend(skip.Recommendation)
	}
	b.add(skip)

	aria := DetailedCheck{Name: "ARIA Landmarks", MaxScore: 5}
	if sig.Accessibility.HasAriaLandmarks {
		aria.Score = 5
	} else {
		aria.Details = []string{"No landmark elements or roles found"}
		aria.Recommendation = "Use main, nav, and header elements (or ARIA roles) to structure the page."
		b.recommend(aria.Recommendation)
	}
	b.add(aria)

	contrast := DetailedCheck{Name: "Color Contrast", MaxScore: 5}
	if sig.Accessibility.HasLightTextColors {
		contrast.Details = []string{"Very light text color declarations found"}
		contrast.Recommendation = "Check light-colored text against WCAG AA contrast ratios."
		b.recommend(contrast.Recommendation)
	} else {
		contrast.Score = 5
	}
	b.add(contrast)

	focus := DetailedCheck{Name: "Focus Styles", MaxScore: 5}
	if sig.Accessibility.HasFocusStyles {
		focus.Score = 5
	} else {
		focus.Details = []string{"No :focus styles found"}
		focus.Recommendation = "Add visible focus styles for keyboard navigation."
		b.recommend(focus.Recommendation)
	}
	b.add(focus)

	lang := DetailedCheck{Name: "Language Attribute", MaxScore: 5}
	if sig.Accessibility.HasLangAttribute {
		lang.Score = 5
	} else {
		lang.Details = []string{"html element has no lang attribute"}
		lang.Recommendation = "Declare the page language, e.g. <html lang=\"en\">."
		b.recommend(lang.Recommendation)
	}
	b.add(lang)

	return b.build()
}
