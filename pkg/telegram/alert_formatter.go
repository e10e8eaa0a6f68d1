package telegram

import (
	"fmt"
	"strings"
	"time"
)

// FormatTriggeredAlertForTelegram formats a triggered alert into a Markdown
// message for Telegram.
func FormatTriggeredAlertForTelegram(title, message, symbol, severity string, currentValue, targetValue *float64, triggeredAt time.Time) string {
	var b strings.Builder

	var severityIcon string
	switch strings.ToLower(severity) {
	case "critical":
		severityIcon = "🚨"
	case "high":
		severityIcon = "🔴"
	case "medium":
		severityIcon = "🟡"
	default:
		severityIcon = "🟢"
	}

	b.WriteString(fmt.Sprintf("%s *%s*\n", severityIcon, title))
	if symbol != "" {
		b.WriteString(fmt.Sprintf("📈 *Symbol:* %s\n", symbol))
	}
	b.WriteString(fmt.Sprintf("💬 %s\n", message))
	if currentValue != nil && targetValue != nil {
		b.WriteString(fmt.Sprintf("🎯 *Current:* %.2f | *Target:* %.2f\n", *currentValue, *targetValue))
	}
	b.WriteString(fmt.Sprintf("🕐 %s", triggeredAt.Format("2006-01-02 15:04:05")))

	return b.String()
}
