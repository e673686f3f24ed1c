// Package convention defines the commit message rule set shared by the composer
// and the validator.
package convention

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CommitType is one of the fixed commit type tags.
type CommitType string

const (
	BugFix   CommitType = "BUGFIX"
	Feature  CommitType = "FEATURE"
	Task     CommitType = "TASK"
	Docs     CommitType = "DOCS"
	Security CommitType = "SECURITY"
)

// Types lists every commit type in display order.
var Types = []CommitType{BugFix, Feature, Task, Docs, Security}

var typeLabels = map[CommitType]string{
	BugFix:   "Bug fixes",
	Feature:  "New features (main branch only)",
	Task:     "Refactoring, cleanup, miscellaneous",
	Docs:     "Documentation changes",
	Security: "Security vulnerability fixes",
}

// Label returns the human-readable description of the type.
func (t CommitType) Label() string {
	return typeLabels[t]
}

// Valid reports whether t is a known commit type.
func (t CommitType) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

func (t CommitType) String() string {
	return string(t)
}

// ParseType resolves a commit type tag, ignoring case and surrounding brackets.
func ParseType(s string) (CommitType, error) {
	t := CommitType(strings.ToUpper(strings.Trim(strings.TrimSpace(s), "[]")))
	if !t.Valid() {
		return "", fmt.Errorf("unknown commit type %q: must be one of %s", s, typeList())
	}
	return t, nil
}

func typeNames() []string {
	names := make([]string, 0, len(Types))
	for _, t := range Types {
		names = append(names, string(t))
	}
	return names
}

func typeList() string {
	return strings.Join(typeNames(), ", ")
}

func typeAlternation() string {
	return strings.Join(typeNames(), "|")
}

// Footer tag names.
const (
	TagResolves = "Resolves"
	TagRelated  = "Related"
	TagReleases = "Releases"
	TagDepends  = "Depends"
	TagReverts  = "Reverts"
	TagChangeID = "Change-Id"
)

const (
	// MainRelease is the release name for the development branch.
	MainRelease = "main"

	// BreakingMarker flags a backward-incompatible change inside the type tag.
	BreakingMarker = "[!!!]"
)

var (
	subjectPattern  = regexp.MustCompile(`^\[(` + regexp.QuoteMeta(BreakingMarker) + `)?(` + typeAlternation() + `)\]`)
	footerPattern   = regexp.MustCompile(`^(Resolves|Related|Releases|Depends|Reverts):`)
	issueRefPattern = regexp.MustCompile(`^#\d+`)
	releasePattern  = regexp.MustCompile(`^\d+\.\d+$`)
	changeIDPattern = regexp.MustCompile(`^Change-Id: I[0-9a-f]{40}$`)
	urlPattern      = regexp.MustCompile(`https?://`)
)

// Convention holds the limits and grammar of the commit message format.
// The zero value is not useful; use Default.
type Convention struct {
	BreakingMarker string

	// RecommendedSubjectLength applies to the subject text of a normal commit.
	RecommendedSubjectLength int
	// BreakingSubjectLength leaves room for BreakingMarker.
	BreakingSubjectLength int
	MaxSubjectLength      int
	BodyWidth             int

	// FooterTags lists tags in rendering order.
	FooterTags []string
}

// Default returns the commit message convention.
func Default() Convention {
	return Convention{
		BreakingMarker:           BreakingMarker,
		RecommendedSubjectLength: 52,
		BreakingSubjectLength:    47,
		MaxSubjectLength:         72,
		BodyWidth:                72,
		FooterTags:               []string{TagResolves, TagRelated, TagReleases, TagDepends, TagReverts},
	}
}

// SubjectLimit returns the subject length budget for a commit.
func (c Convention) SubjectLimit(breaking bool) int {
	if breaking {
		return c.BreakingSubjectLength
	}
	return c.RecommendedSubjectLength
}

// Prefix renders the bracketed type tag that starts a subject line.
func (c Convention) Prefix(t CommitType, breaking bool) string {
	if breaking {
		return "[" + c.BreakingMarker + string(t) + "]"
	}
	return "[" + string(t) + "]"
}

// SubjectMatch is the parsed type prefix of a subject line.
type SubjectMatch struct {
	Type     CommitType
	Breaking bool
	// Description is the subject text following the prefix, trimmed.
	Description string
}

// MatchSubject parses the type prefix of a subject line.
func (Convention) MatchSubject(line string) (SubjectMatch, bool) {
	loc := subjectPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return SubjectMatch{}, false
	}
	return SubjectMatch{
		Type:        CommitType(line[loc[4]:loc[5]]),
		Breaking:    loc[2] >= 0,
		Description: strings.TrimSpace(line[loc[1]:]),
	}, true
}

// FooterTag returns the tag name when line starts with a known footer tag.
func (Convention) FooterTag(line string) (string, bool) {
	m := footerPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsFooterLine reports whether line belongs to the footer, Change-Id included.
func (c Convention) IsFooterLine(line string) bool {
	if _, ok := c.FooterTag(line); ok {
		return true
	}
	return strings.HasPrefix(line, TagChangeID+":")
}

// ValidRelease reports whether name is "main" or a <major>.<minor> version.
func (Convention) ValidRelease(name string) bool {
	return name == MainRelease || releasePattern.MatchString(name)
}

// ValidIssueRef reports whether value starts with "#<digits>".
func (Convention) ValidIssueRef(value string) bool {
	return issueRefPattern.MatchString(value)
}

// ValidChangeID reports whether line is a well-formed Change-Id footer.
func (Convention) ValidChangeID(line string) bool {
	return changeIDPattern.MatchString(line)
}

// ContainsURL reports whether line contains an http or https URL.
func (Convention) ContainsURL(line string) bool {
	return urlPattern.MatchString(line)
}

// ImperativeViolation returns the lowercased first word of text when it looks
// like a past or progressive verb form. The check is a plain suffix heuristic.
func (Convention) ImperativeViolation(text string) (string, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", false
	}
	word := strings.ToLower(fields[0])
	if strings.HasSuffix(word, "ed") || strings.HasSuffix(word, "ing") {
		return word, true
	}
	return "", false
}

// StartsUppercase reports whether the first character of text is an uppercase letter.
func (Convention) StartsUppercase(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return unicode.IsUpper(r)
}

// TypeTags renders every type as it appears in a subject, e.g. "[BUGFIX], [TASK]".
func TypeTags() string {
	tags := make([]string, 0, len(Types))
	for _, t := range Types {
		tags = append(tags, "["+string(t)+"]")
	}
	return strings.Join(tags, ", ")
}
