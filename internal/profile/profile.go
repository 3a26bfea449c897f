package profile

import "fmt"

// EntryStyle selects how collected entries are serialized into the prompt.
type EntryStyle string

const (
	// EntryNumbered renders "1. [source] title" lines.
	EntryNumbered EntryStyle = "numbered"
	// EntryLabeled renders "[source] title" lines without numbering.
	EntryLabeled EntryStyle = "labeled"
)

// OutputMode declares the body format the prompt asks the model for.
type OutputMode string

const (
	OutputHTML OutputMode = "html"
	OutputText OutputMode = "text"
)

// FeedSourceSpec names one feed and bounds how many of its entries are
// admitted, in feed-document order.
type FeedSourceSpec struct {
	Name     string
	Endpoint string
	ItemCap  int
}

// SectionQuota is a target count per topical section. Quotas are rendered
// into the prompt as an instruction; the pipeline never enforces them
// against the generated text.
type SectionQuota struct {
	Section string
	Count   int
}

// Profile is the declarative bundle defining one variant of the pipeline:
// which feeds to read, how to ask for the article, and how and where to
// publish it. Profiles are built once at startup and never mutated.
type Profile struct {
	Name   string
	Feeds  []FeedSourceSpec
	Quotas []SectionQuota

	// PromptTemplate is a text/template with fields .Date, .Weekday,
	// .Entries, .Quotas and .Aux (a map of auxiliary data keys).
	PromptTemplate string
	EntryStyle     EntryStyle
	OutputMode     OutputMode
	MaxTokens      int64

	// TitleFormat receives the localized date descriptor.
	TitleFormat string

	// Presentation rules applied by the publisher.
	BannerURL string
	AuxKeys   []string

	// Publish target details.
	CategoryIDs []int
	MediaID     int

	Notify bool

	// ExpandSummaries fetches the article page for entries whose feed
	// summary is empty and substitutes the extracted text.
	ExpandSummaries bool
}

// HasAux reports whether the profile wants auxiliary data at all.
func (p *Profile) HasAux() bool {
	return len(p.AuxKeys) > 0
}

// Builtin returns the named builtin profile.
func Builtin(name string) (*Profile, error) {
	p, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (known: %v)", name, Names())
	}
	return p, nil
}

// Names lists the builtin profile names in registration order.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for _, n := range builtinOrder {
		out = append(out, n)
	}
	return out
}
