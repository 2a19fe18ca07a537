package feature

import "strings"

func spanTokenCountBucket(ctx Context) float64 {
	n := len(tokenize(ctx.SpanText))
	return clamp(float64(n)/5, 0, 1)
}

func spanNumericRatio(ctx Context) float64 {
	if len(ctx.SpanText) == 0 {
		return 0
	}
	return clamp(float64(digitCount(ctx.SpanText))/float64(len(ctx.SpanText)), 0, 1)
}

func spanIsEmail(ctx Context) float64 {
	if emailRe.MatchString(strings.TrimSpace(ctx.SpanText)) {
		return 1
	}
	return 0
}

func spanIsPhone(ctx Context) float64 {
	text := strings.TrimSpace(ctx.SpanText)
	if phoneRe.MatchString(text) && digitCount(text) >= 7 {
		return 1
	}
	return 0
}

func spanIsBirthdate(ctx Context) float64 {
	if birthdateRe.MatchString(strings.TrimSpace(ctx.SpanText)) {
		return 1
	}
	return 0
}

func spanIsName(ctx Context) float64 {
	if nameRe.MatchString(strings.TrimSpace(ctx.SpanText)) {
		return 1
	}
	return 0
}

func spanIsPreferredName(ctx Context) float64 {
	if preferredRe.MatchString(strings.TrimSpace(ctx.SpanText)) {
		return 1
	}
	return 0
}

func spanIsExtID(ctx Context) float64 {
	text := strings.TrimSpace(ctx.SpanText)
	if extidRe.MatchString(text) && hasDigitAndLetter(text) {
		return 1
	}
	return 0
}

// spanContextualIsolation reports whether the span is surrounded by
// whitespace (or the line's edges) on both sides, i.e. it reads as a
// standalone token rather than a substring glued to neighbouring text.
func spanContextualIsolation(ctx Context) float64 {
	line, ok := lineAt(ctx.Lines, ctx.LineIndex)
	if !ok {
		return 0
	}
	leftOK := ctx.Span.Start == 0 || isBoundaryRune(rune(line[ctx.Span.Start-1]))
	rightOK := ctx.Span.End >= len(line) || isBoundaryRune(rune(line[ctx.Span.End]))
	if leftOK && rightOK {
		return 1
	}
	return 0
}

func isBoundaryRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// spanRelativePosition maps the span's start offset to [-1, 1] across the
// line's length: -1 at the start of the line, +1 at the end.
func spanRelativePosition(ctx Context) float64 {
	line, ok := lineAt(ctx.Lines, ctx.LineIndex)
	if !ok || len(line) == 0 {
		return 0
	}
	frac := float64(ctx.Span.Start) / float64(len(line))
	return clamp(frac*2-1, -1, 1)
}

// DefaultSpanFeatures returns the default set of span (segment) features.
func DefaultSpanFeatures() []Feature {
	return []Feature{
		New("segment.token_count_bucket", spanTokenCountBucket),
		New("segment.numeric_ratio", spanNumericRatio),
		New("segment.is_email", spanIsEmail),
		New("segment.is_phone", spanIsPhone),
		New("segment.is_birthdate", spanIsBirthdate),
		New("segment.is_name", spanIsName),
		New("segment.is_preferred_name", spanIsPreferredName),
		New("segment.is_extid", spanIsExtID),
		New("segment.contextual_isolation", spanContextualIsolation),
		New("segment.relative_position", spanRelativePosition),
	}
}
