package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jkoval/driftex"
	"github.com/jkoval/driftex/parse"
	"github.com/jkoval/driftex/pipeline"
	"github.com/jkoval/driftex/section"
	"github.com/jkoval/driftex/selector"
)

// expectedShapes hints the heal provider at what each section's items look
// like.
var expectedShapes = map[string]string{
	selector.SectionTopCard:         "identity block with name, headline, location and an about paragraph",
	selector.SectionExperience:      "list of employment entries with title, company, date range, location",
	selector.SectionEducation:       "list of school entries with school name, degree, field of study, years",
	selector.SectionAccomplishments: "list of dated achievements with title and description",
	selector.SectionPatents:         "list of patent entries with title, office, number, issued date",
	selector.SectionContacts:        "labeled contact-details blocks with profile links, email, phone, websites",
	selector.SectionInterests:       "list of followed entities with name and follower detail",
}

// allSections is the extraction order. Top card first so its diagnostics
// lead the profile's telemetry.
var allSections = []string{
	selector.SectionTopCard,
	selector.SectionExperience,
	selector.SectionEducation,
	selector.SectionAccomplishments,
	selector.SectionPatents,
	selector.SectionContacts,
	selector.SectionInterests,
}

// ProfileExtractor assembles a profile from a loaded document by running
// one pipeline per requested section.
type ProfileExtractor struct {
	Registry  driftex.SelectorRegistry
	Navigator driftex.Navigator
	Healer    driftex.HealProvider
	Threshold float64
	Sections  []string
	Logger    *slog.Logger
}

// ExtractProfile runs the per-section pipelines against one loaded document.
func (e *ProfileExtractor) ExtractProfile(ctx context.Context, root driftex.Node, url string) (*driftex.Profile, error) {
	if root == nil {
		return nil, driftex.Errorf(driftex.EINVALID, "root node required")
	}

	profile := &driftex.Profile{
		URL:       url,
		FetchedAt: time.Now().UTC(),
	}
	config := driftex.SectionConfig{
		BaseURL:   url,
		Root:      root,
		Navigator: e.Navigator,
	}

	for _, name := range allSections {
		if !e.wants(name) {
			continue
		}
		switch name {
		case selector.SectionTopCard:
			items, diag := runSection(ctx, e, e.topCard(), parse.NewTopCardParser(), nil, config)
			if len(items) > 0 {
				profile.TopCard = &items[0]
			}
			profile.Diagnostics = append(profile.Diagnostics, diag)
		case selector.SectionExperience:
			items, diag := runSection(ctx, e, e.list(name, "details/experience/", experienceContext), parse.NewExperienceParser(), experienceKey, config)
			profile.Experiences = items
			profile.Diagnostics = append(profile.Diagnostics, diag)
		case selector.SectionEducation:
			items, diag := runSection(ctx, e, e.list(name, "details/education/", nil), parse.NewEducationParser(), educationKey, config)
			profile.Educations = items
			profile.Diagnostics = append(profile.Diagnostics, diag)
		case selector.SectionAccomplishments:
			items, diag := runSection(ctx, e, e.list(name, "", nil), parse.NewAccomplishmentParser(), accomplishmentKey, config)
			profile.Accomplishments = items
			profile.Diagnostics = append(profile.Diagnostics, diag)
		case selector.SectionPatents:
			items, diag := runSection(ctx, e, e.list(name, "", nil), parse.NewPatentParser(), patentKey, config)
			profile.Patents = items
			profile.Diagnostics = append(profile.Diagnostics, diag)
		case selector.SectionContacts:
			items, diag := runSection(ctx, e, e.raw(name), parse.NewContactParser(), contactKey, config)
			profile.Contacts = items
			profile.Diagnostics = append(profile.Diagnostics, diag)
		case selector.SectionInterests:
			items, diag := runSection(ctx, e, e.list(name, "details/interests/", nil), parse.NewInterestParser(), interestKey, config)
			profile.Interests = items
			profile.Diagnostics = append(profile.Diagnostics, diag)
		}
	}

	return profile, nil
}

func (e *ProfileExtractor) wants(name string) bool {
	if len(e.Sections) == 0 {
		return true
	}
	for _, s := range e.Sections {
		if s == name {
			return true
		}
	}
	return false
}

func (e *ProfileExtractor) topCard() driftex.SectionExtractor {
	return &section.Single{Name: selector.SectionTopCard, Registry: e.Registry}
}

func (e *ProfileExtractor) list(name, detailPath string, context map[string]string) driftex.SectionExtractor {
	return &section.List{
		Name:       name,
		Registry:   e.Registry,
		Truncation: truncationSelector,
		DetailPath: detailPath,
		Context:    context,
	}
}

func (e *ProfileExtractor) raw(name string) driftex.SectionExtractor {
	return &section.Raw{Name: name, Registry: e.Registry}
}

// truncationSelector detects the "show more" affordance that signals a
// collection is truncated on the primary view.
const truncationSelector = `a[href*="details/"], .show-more-link, button[aria-label*="Show all"]`

// runSection runs one pipeline and, when every strategy failed and a heal
// provider is configured, retries once with a freshly generated selector
// version. Healing happens here, between runs, never inside the pipeline.
func runSection[T any](ctx context.Context, e *ProfileExtractor, sec driftex.SectionExtractor, parser driftex.Parser[T], key func(T) string, config driftex.SectionConfig) ([]T, driftex.Diagnostics) {
	p := newPipeline(e, sec, parser, key)
	result := p.Run(ctx, config)
	if len(result.Items) > 0 || e.Healer == nil || result.Diagnostics.Snippet == "" {
		return result.Items, result.Diagnostics
	}

	if !e.heal(ctx, sec.Section(), result.Diagnostics.Snippet) {
		return result.Items, result.Diagnostics
	}

	retry := newPipeline(e, sec, parser, key).Run(ctx, config)
	return retry.Items, retry.Diagnostics
}

func newPipeline[T any](e *ProfileExtractor, sec driftex.SectionExtractor, parser driftex.Parser[T], key func(T) string) *pipeline.Pipeline[T] {
	opts := []pipeline.Option[T]{
		pipeline.WithSnippetCapture[T](),
		pipeline.WithLogger[T](e.Logger),
	}
	if e.Threshold > 0 {
		opts = append(opts, pipeline.WithThreshold[T](e.Threshold))
	}
	if key != nil {
		opts = append(opts, pipeline.WithKeyFunc[T](key))
	}
	return pipeline.New(sec, parser, opts...)
}

// heal asks the provider for a replacement selector version, merges it over
// the active version, and activates the result. Returns false when no
// usable version came back.
func (e *ProfileExtractor) heal(ctx context.Context, sectionName, snippet string) bool {
	sels, _ := e.Registry.GetSection(sectionName)
	version, err := e.Healer.GenerateSelectors(ctx, driftex.HealRequest{
		Section:         sectionName,
		FailedSelectors: sels.ItemSelectors,
		ExpectedShape:   expectedShapes[sectionName],
		HTMLSnippet:     snippet,
	})
	if err != nil || version == nil {
		if e.Logger != nil {
			e.Logger.Warn("self-heal failed", "section", sectionName, "error", err)
		}
		return false
	}

	merged := selector.Merge(e.Registry.ActiveVersion(), *version)
	e.Registry.Register(merged)
	return e.Registry.SetActiveVersion(merged.Version)
}

// experienceContext tags experience candidates so parsers can distinguish
// the employment tab if the document splits it.
var experienceContext = map[string]string{"section": selector.SectionExperience}

func experienceKey(e driftex.Experience) string {
	title := ""
	if len(e.Positions) > 0 {
		title = e.Positions[0].Title
	}
	return fmt.Sprintf("%s|%s", e.Company, title)
}

func educationKey(e driftex.Education) string {
	return fmt.Sprintf("%s|%s|%s", e.School, e.Degree, e.FromYear)
}

func accomplishmentKey(a driftex.Accomplishment) string {
	return fmt.Sprintf("%s|%s", a.Category, a.Title)
}

func patentKey(p driftex.Patent) string {
	return fmt.Sprintf("%s|%s", p.Title, p.Number)
}

func contactKey(c driftex.Contact) string {
	return fmt.Sprintf("%s|%s", c.Type, c.Value)
}

func interestKey(i driftex.Interest) string {
	return i.Name
}
