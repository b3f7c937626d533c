package reporter

import (
	"fmt"
	"strings"

	"rugcheck/internal/domain/models"
	"rugcheck/pkg/util"
)

// markdownSpecials are the characters MarkdownV2 requires escaping for.
const markdownSpecials = `_*[]()~` + "`" + `>#+-=|{}.!`

// EscapeMarkdown escapes text for Telegram MarkdownV2 messages.
func EscapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Markdown renders a MarkdownV2 report suitable for chat bots.
func Markdown(r *models.ScanReport) string {
	var b strings.Builder

	name := r.TokenName
	if name == "" {
		name = util.ShortenAddress(r.Address)
	}
	fmt.Fprintf(&b, "%s *%s* \\(%s\\)\n", verdictBadges[r.Score.Verdict], EscapeMarkdown(name), EscapeMarkdown(r.Chain))
	fmt.Fprintf(&b, "`%s`\n", r.Address)
	fmt.Fprintf(&b, "*Risk: %d/100 %s*\n\n", r.Score.Points, r.Score.Verdict)

	rows := []struct {
		label string
		risk  models.Risk
		line  string
		fail  string
	}{
		{"Token", r.Signals.TokenInfo.Risk, tokenLine(r.Signals.TokenInfo), r.Signals.TokenInfo.Error},
		{"Functions", r.Signals.Functions.Risk, functionsLine(r.Signals.Functions), r.Signals.Functions.Error},
		{"Liquidity", r.Signals.Liquidity.Risk, liquidityLine(r.Signals.Liquidity), r.Signals.Liquidity.Error},
		{"Holders", r.Signals.Holders.Risk, holdersLine(r.Signals.Holders), r.Signals.Holders.Error},
		{"Honeypot", r.Signals.Honeypot.Risk, honeypotLine(r.Signals.Honeypot), r.Signals.Honeypot.Error},
		{"Sentiment", r.Signals.Sentiment.Risk, sentimentLine(r.Signals.Sentiment), r.Signals.Sentiment.Error},
	}
	for _, row := range rows {
		line := row.line
		if row.fail != "" {
			line = "unavailable: " + row.fail
		}
		fmt.Fprintf(&b, "*%s* \\[%s\\] %s\n", row.label, row.risk, EscapeMarkdown(line))
	}

	return b.String()
}
