// Package validator checks commit messages against the commit convention and
// reports every finding as a Diagnostic instead of failing fast.
package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wizzomafizzo/t3commit/internal/convention"
)

// Severity of a Diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single finding. Line is 1-based; zero means the finding
// is not tied to a line.
type Diagnostic struct {
	Message  string
	Severity Severity
	Line     int
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("Line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

// Result holds the findings of one validation run in discovery order.
type Result struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Valid    bool
}

// Failed reports whether the result should fail a caller. In strict mode any
// warning counts as a failure.
func (r *Result) Failed(strict bool) bool {
	return !r.Valid || (strict && len(r.Warnings) > 0)
}

// Validator runs the rule checks of a convention.
type Validator struct {
	conv convention.Convention
}

// New creates a validator for the default convention.
func New() *Validator {
	return NewWithConvention(convention.Default())
}

// NewWithConvention creates a validator for the given convention.
func NewWithConvention(conv convention.Convention) *Validator {
	return &Validator{conv: conv}
}

// Validate checks message. It never panics and never returns an error;
// problems with the text are reported in the Result.
func (v *Validator) Validate(message string) *Result {
	run := &check{conv: v.conv}

	if message == "" {
		run.errorf(0, "message is empty")
		return run.result()
	}

	run.lines = strings.Split(message, "\n")
	run.checkSubject()
	run.checkBlankLine()
	run.checkFooter()
	run.checkChangeID()
	run.checkLineLength()

	return run.result()
}

type check struct {
	conv     convention.Convention
	lines    []string
	errors   []Diagnostic
	warnings []Diagnostic
}

func (c *check) errorf(line int, format string, args ...any) {
	c.errors = append(c.errors, Diagnostic{
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
	})
}

func (c *check) warnf(line int, format string, args ...any) {
	c.warnings = append(c.warnings, Diagnostic{
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
	})
}

func (c *check) result() *Result {
	return &Result{
		Errors:   c.errors,
		Warnings: c.warnings,
		Valid:    len(c.errors) == 0,
	}
}

func (c *check) checkSubject() {
	subject := c.lines[0]

	match, ok := c.conv.MatchSubject(subject)
	if !ok {
		c.errorf(1, "Subject must start with commit type: %s", convention.TypeTags())
		return
	}

	if match.Breaking && match.Type == convention.BugFix {
		c.warnf(1, "Breaking changes are unusual for %s. Consider using %s or %s",
			convention.BugFix, convention.Feature, convention.Task)
	}

	// Limits apply to the description, the same text the composer measures.
	length := utf8.RuneCountInString(match.Description)
	if length > c.conv.MaxSubjectLength {
		c.errorf(1, "Subject description is %d characters (max %d)", length, c.conv.MaxSubjectLength)
	} else if limit := c.conv.SubjectLimit(match.Breaking); length > limit {
		c.warnf(1, "Subject description is %d characters (recommended max %d)", length, limit)
	}

	if match.Description != "" && !c.conv.StartsUppercase(match.Description) {
		c.errorf(1, "Subject description must start with uppercase letter")
	}

	if strings.HasSuffix(subject, ".") {
		c.errorf(1, "Subject line should not end with a period")
	}

	if word, bad := c.conv.ImperativeViolation(match.Description); bad {
		c.warnf(1, "Use imperative mood: '%s' may not be imperative. Use 'Fix' not 'Fixed' or 'Fixing'", word)
	}
}

func (c *check) checkBlankLine() {
	if len(c.lines) < 2 {
		return
	}
	if c.lines[1] != "" {
		c.errorf(2, "second line must be blank")
	}
}

func (c *check) checkFooter() {
	var hasResolves, hasReleases bool

	for i, line := range c.lines {
		lineNo := i + 1

		tag, ok := c.conv.FooterTag(line)
		if !ok {
			continue
		}

		value := strings.TrimPrefix(line, tag+":")
		if !strings.HasPrefix(value, " ") || strings.HasPrefix(value, "  ") {
			c.errorf(lineNo, "Footer tag must have colon followed by a single space: '%s'", line)
		}
		value = strings.TrimSpace(value)

		switch tag {
		case convention.TagResolves:
			hasResolves = true
			if !c.conv.ValidIssueRef(value) {
				c.errorf(lineNo, "Resolves must reference issue number: 'Resolves: #12345'")
			}
		case convention.TagRelated:
			if !c.conv.ValidIssueRef(value) {
				c.errorf(lineNo, "Related must reference issue number: 'Related: #12345'")
			}
		case convention.TagReleases:
			hasReleases = true
			for _, release := range strings.Split(value, ",") {
				release = strings.TrimSpace(release)
				if !c.conv.ValidRelease(release) {
					c.errorf(lineNo, "Invalid release format '%s'. Use '%s' or version like '13.4'",
						release, convention.MainRelease)
				}
			}
		}
	}

	if !hasResolves {
		c.warnf(0, "No 'Resolves: #<issue>' tag found. Required for features and tasks.")
	}
	if !hasReleases {
		c.warnf(0, "No 'Releases:' tag found. Required to specify target versions.")
	}
}

func (c *check) checkChangeID() {
	for _, line := range c.lines {
		if c.conv.ValidChangeID(line) {
			return
		}
	}
	c.warnf(0, "No Change-Id found. It will be added automatically by git commit-msg hook.")
}

// checkLineLength is advisory; URLs are allowed to overflow.
func (c *check) checkLineLength() {
	for i := 2; i < len(c.lines); i++ {
		line := c.lines[i]
		if c.conv.IsFooterLine(line) {
			continue
		}
		if length := utf8.RuneCountInString(line); length > c.conv.BodyWidth && !c.conv.ContainsURL(line) {
			c.warnf(i+1, "Length %d exceeds %d characters", length, c.conv.BodyWidth)
		}
	}
}
