package relay

import (
	"fmt"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
)

// previewLimit caps the quoted message preview in new-message texts
const previewLimit = 50

// MatchBody renders the proximity match text. Dating and marketplace matches
// use distinct templates.
func MatchBody(kind domain.AlertKind, name, detail, distance string) string {
	if kind == domain.KindDating {
		return fmt.Sprintf("🐸 NiceFrog: %s (%s) is %s. Open the app to connect!", name, detail, distance)
	}
	return fmt.Sprintf("🐸 NiceFrog: %s - %s is %s. Open the app to see it!", name, detail, distance)
}

// MessageBody renders the new-message text with a truncated preview
func MessageBody(sender, preview string) string {
	if runes := []rune(preview); len(runes) > previewLimit {
		preview = string(runes[:previewLimit])
	}
	return fmt.Sprintf("🐸 NiceFrog: New message from %s: %q", sender, preview)
}

// VerificationBody renders the phone verification code text
func VerificationBody(code string) string {
	return fmt.Sprintf("Your NiceFrog verification code is: %s", code)
}
