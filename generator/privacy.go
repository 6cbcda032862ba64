package generator

import (
	"fmt"
	"strings"

	"bizsite-backend/model"
)

func valueOrPlaceholder(value, placeholder string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return placeholder
	}
	return escapeHTML(trimmed)
}

// renderPrivacyBody emits the long-form privacy policy page body. The
// cookie language must stay aligned with the consent script in site.js:
// essential storage always on, analytics off until opt-in.
func renderPrivacyBody(profile *model.BusinessProfile) string {
	businessName := escapeHTML(strings.TrimSpace(profile.Name))
	if businessName == "" {
		businessName = "This business"
	}
	email := valueOrPlaceholder(profile.Contact.Email, "[Insert business email]")
	phone := valueOrPlaceholder(profile.Contact.Phone, "[Insert business phone]")
	address := valueOrPlaceholder(profile.Contact.Address, "[Insert business address]")

	analytics := "Optional analytics cookies are not enabled by default. If optional analytics is enabled in the future, this policy should be updated with provider and cookie details."
	if profile.PrivacyTrackerOptIn {
		analytics = "Optional analytics may be enabled only after user choice. If analytics is enabled, update this policy to identify the analytics provider, cookie names, and retention details."
	}

	notes := ""
	if trimmed := strings.TrimSpace(profile.PrivacyNotes); trimmed != "" {
		notes = fmt.Sprintf("\n  <p><strong>Additional privacy notes:</strong> %s</p>", escapeHTML(trimmed))
	}

	return fmt.Sprintf(`<section class="panel">
  <h2>Privacy Policy</h2>
  <p>This Privacy Policy explains how %s handles information collected through this website.</p>
  <h3>Information We Collect</h3>
  <p>When you use our contact form, we may collect your name, email address, phone number, and message. We may also collect technical request data needed to keep this website operating.</p>
  <h3>How We Use Information</h3>
  <p>We use submitted information to respond to inquiries, provide requested services, and follow up about your request.</p>
  <h3>Sharing and Disclosure</h3>
  <p>We may share information with service providers that help us run this website or provide services on our behalf. We do not sell personal information through this website.</p>
  <h3>Cookies and Similar Technologies</h3>
  <p>Essential cookies are used by default to support core website functions such as security, preference storage, and basic site operation.</p>
  <p>%s</p>
  <h3>Data Retention</h3>
  <p>We retain inquiry information for as long as reasonably needed to respond to requests, deliver services, meet legal obligations, and resolve disputes.</p>
  <h3>Security</h3>
  <p>We use reasonable administrative, technical, and organizational measures designed to protect the information we maintain.</p>
  <h3>Children's Privacy</h3>
  <p>This website is not directed to children under 13, and we do not knowingly collect personal information from children through this website.</p>
  <h3>Changes to This Privacy Policy</h3>
  <p>We may update this policy from time to time. The latest version should be posted on this page with an updated effective date when practical.</p>
  <h3>Contact Us</h3>
  <p>If you have privacy questions or requests, contact us using the details below:</p>
  <ul>
    <li><strong>Email:</strong> %s</li>
    <li><strong>Phone:</strong> %s</li>
    <li><strong>Address:</strong> %s</li>
  </ul>%s
</section>`, businessName, analytics, email, phone, address, notes)
}
