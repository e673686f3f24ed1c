// Package composer renders commit messages that follow the commit convention.
package composer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wizzomafizzo/t3commit/internal/convention"
)

// Input carries the structured fields of a commit message.
type Input struct {
	Type        convention.CommitType
	Subject     string
	Description string
	Related     []int
	Releases    []string
	// Issue is the resolved issue number; zero means none.
	Issue    int
	Breaking bool
}

// Message is a rendered commit message.
type Message struct {
	Subject string
	Body    []string
	Footer  []string
	// Warnings lists inputs that were dropped while rendering.
	Warnings []string
}

// String returns the full message text.
func (m *Message) String() string {
	var b strings.Builder
	b.WriteString(m.Subject)
	b.WriteString("\n\n")
	if len(m.Body) > 0 {
		b.WriteString(strings.Join(m.Body, "\n"))
		b.WriteString("\n\n")
	}
	for _, line := range m.Footer {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Composer builds messages for a convention.
type Composer struct {
	conv convention.Convention
}

// New creates a composer for the default convention.
func New() *Composer {
	return NewWithConvention(convention.Default())
}

// NewWithConvention creates a composer for the given convention.
func NewWithConvention(conv convention.Convention) *Composer {
	return &Composer{conv: conv}
}

// Compose validates the subject and renders the message. Blank lines in the
// description separate paragraphs, and each paragraph is wrapped on its own.
func (c *Composer) Compose(in Input) (*Message, error) {
	if !in.Type.Valid() {
		return nil, fmt.Errorf("unknown commit type %q", in.Type)
	}
	if err := c.CheckSubject(in.Subject, in.Breaking); err != nil {
		return nil, err
	}

	msg := &Message{
		Subject: c.conv.Prefix(in.Type, in.Breaking) + " " + in.Subject,
	}

	if desc := strings.TrimSpace(in.Description); desc != "" {
		msg.Body = c.wrapParagraphs(desc)
	}

	if in.Issue > 0 {
		msg.Footer = append(msg.Footer, fmt.Sprintf("%s: #%d", convention.TagResolves, in.Issue))
	} else if in.Issue < 0 {
		msg.Warnings = append(msg.Warnings, fmt.Sprintf("Invalid issue number %d, skipping", in.Issue))
	}

	for _, ref := range in.Related {
		if ref <= 0 {
			msg.Warnings = append(msg.Warnings, fmt.Sprintf("Invalid related issue number %d, skipping", ref))
			continue
		}
		msg.Footer = append(msg.Footer, fmt.Sprintf("%s: #%d", convention.TagRelated, ref))
	}

	releases := make([]string, 0, len(in.Releases))
	for _, release := range in.Releases {
		release = strings.TrimSpace(release)
		if release == "" {
			continue
		}
		if !c.conv.ValidRelease(release) {
			msg.Warnings = append(msg.Warnings, fmt.Sprintf("Invalid release format '%s', skipping", release))
			continue
		}
		releases = append(releases, release)
	}
	if len(releases) > 0 {
		msg.Footer = append(msg.Footer, convention.TagReleases+": "+strings.Join(releases, ", "))
	}

	return msg, nil
}

// CheckSubject applies the subject rules that must hold before composing.
func (c *Composer) CheckSubject(subject string, breaking bool) error {
	if subject == "" {
		return &InvalidSubjectError{Reason: ReasonEmpty}
	}

	length := utf8.RuneCountInString(subject)
	if length > c.conv.MaxSubjectLength {
		return &InvalidSubjectError{Reason: ReasonTooLong, Limit: c.conv.MaxSubjectLength, Length: length}
	}
	if limit := c.conv.SubjectLimit(breaking); length > limit {
		return &InvalidSubjectError{Reason: ReasonTooLong, Limit: limit, Length: length}
	}

	if !c.conv.StartsUppercase(subject) {
		return &InvalidSubjectError{Reason: ReasonNotCapitalized}
	}

	if strings.HasSuffix(subject, ".") {
		return &InvalidSubjectError{Reason: ReasonTrailingPeriod}
	}

	if word, bad := c.conv.ImperativeViolation(subject); bad {
		return &InvalidSubjectError{Reason: ReasonNotImperative, Word: word}
	}

	return nil
}

// wrapParagraphs wraps each blank-line separated paragraph on its own.
func (c *Composer) wrapParagraphs(text string) []string {
	var lines []string
	for _, para := range splitParagraphs(text) {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, Wrap(para, c.conv.BodyWidth)...)
	}
	return lines
}

func splitParagraphs(text string) []string {
	var (
		paras   []string
		current []string
	)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				paras = append(paras, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paras = append(paras, strings.Join(current, " "))
	}
	return paras
}

// Wrap greedily fills lines up to width characters. A word longer than width
// is placed on a line of its own and never split.
func Wrap(text string, width int) []string {
	var (
		lines   []string
		current []string
		used    int
	)
	for _, word := range strings.Fields(text) {
		wordLen := utf8.RuneCountInString(word)
		if len(current) > 0 && used+len(current)+wordLen > width {
			lines = append(lines, strings.Join(current, " "))
			current, used = nil, 0
		}
		current = append(current, word)
		used += wordLen
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// ParseReleases splits a comma separated release list, dropping empty tokens.
// Tokens are not checked against the release grammar here.
func ParseReleases(csv string) []string {
	var releases []string
	for _, token := range strings.Split(csv, ",") {
		if token = strings.TrimSpace(token); token != "" {
			releases = append(releases, token)
		}
	}
	return releases
}

// ParseRefs parses a comma separated list of issue numbers. A leading '#' is allowed.
func ParseRefs(csv string) ([]int, error) {
	var refs []int
	for _, token := range strings.Split(csv, ",") {
		token = strings.TrimPrefix(strings.TrimSpace(token), "#")
		if token == "" {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid issue number %q", token)
		}
		refs = append(refs, n)
	}
	return refs, nil
}
