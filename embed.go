package maganghub

import "embed"

// EmailFS carries the notification mail templates, grouped one directory per
// template with an HTML and a plaintext variant.
//
//go:embed templates/emails
var EmailFS embed.FS
