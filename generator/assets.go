package generator

import (
	"fmt"
	"strings"
)

const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1200 700" role="img" aria-label="Placeholder"><defs><linearGradient id="g" x1="0" y1="0" x2="1" y2="1"><stop offset="0" stop-color="#dbeafe"/><stop offset="1" stop-color="#ecfeff"/></linearGradient></defs><rect width="1200" height="700" fill="url(#g)"/><text x="50%" y="50%" text-anchor="middle" dominant-baseline="middle" font-family="Segoe UI, sans-serif" font-size="48" fill="#0f172a">Business Photo Placeholder</text></svg>`

func stylesheet(themeCSS, radius string) string {
	return `:root { color-scheme: light; ` + themeCSS + ` --button-radius: ` + radius + `; }
* { box-sizing: border-box; }
html, body { margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; background: radial-gradient(circle at top right, color-mix(in srgb, var(--accent) 18%, var(--bg)), var(--bg) 55%); color: var(--text); line-height: 1.55; }
a { color: var(--secondary); text-decoration-thickness: .08em; text-underline-offset: .12em; }
.container { width: min(1080px, 92vw); margin: 0 auto; }
.skip-link { position: absolute; left: -9999px; }
.skip-link:focus { left: 1rem; top: 1rem; background: #fff; padding: .5rem .8rem; border: 2px solid var(--primary); }
.site-header { padding: 2.2rem 0 1.3rem; border-bottom: 1px solid var(--border); }
.header-grid { display: flex; gap: 1rem; justify-content: space-between; align-items: end; flex-wrap: wrap; }
.eyebrow { margin: 0; text-transform: uppercase; letter-spacing: .08em; font-size: .76rem; color: var(--muted); }
.nav { display: flex; gap: .9rem; flex-wrap: wrap; }
.nav-link { color: var(--text); text-decoration: none; border-bottom: 2px solid transparent; padding-bottom: .2rem; }
.nav-link:hover, .nav-link:focus { border-bottom-color: var(--primary); }
main { padding: 1.4rem 0 2.5rem; display: grid; gap: 1.1rem; }
.panel { background: var(--surface); border: 1px solid var(--border); border-radius: 18px; padding: 1.1rem; box-shadow: 0 10px 30px rgba(15, 23, 42, 0.05); }
.hero { display: grid; grid-template-columns: 1.2fr .8fr; gap: 1rem; }
.hero-image { width: 100%; height: 100%; min-height: 260px; object-fit: cover; border-radius: 14px; }
.quick-grid, .faq-grid, .card-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: .8rem; }
.card, .faq-item { border: 1px solid var(--border); border-radius: 12px; padding: .8rem; background: var(--surface); }
.site-footer { border-top: 1px solid var(--border); padding: 1.3rem 0 2.2rem; }
.footer-grid { display: flex; justify-content: space-between; align-items: center; flex-wrap: wrap; gap: .8rem; }
.button { display: inline-flex; background: var(--primary); color: #fff; border: none; border-radius: var(--button-radius); padding: .55rem 1rem; cursor: pointer; font-weight: 600; text-decoration: none; }
.button:hover { filter: brightness(1.05); }
.button.ghost { background: transparent; color: var(--text); border: 1px solid var(--border); }
.cookie-banner { position: fixed; right: 1rem; left: 1rem; bottom: 1rem; background: var(--surface); border: 1px solid var(--border); border-radius: 14px; padding: .9rem; box-shadow: 0 20px 35px rgba(15, 23, 42, .12); display: none; gap: .8rem; align-items: center; justify-content: space-between; flex-wrap: wrap; z-index: 40; }
.cookie-banner.visible { display: flex; }
.cookie-actions { display: flex; gap: .6rem; }
.cookie-dialog { border: 1px solid var(--border); border-radius: 14px; width: min(520px, 94vw); }
.dialog-body { margin: 0; padding: 1rem; }
.toggle-row { display: flex; justify-content: space-between; align-items: center; margin: .75rem 0; }
@media (max-width: 860px) { .hero { grid-template-columns: 1fr; } }`
}

// consentScript drives the cookie banner in the generated output.
// Essential storage is always active; analytics stays inactive until
// explicit opt-in. The default flag mirrors the profile's own opt-in
// preference for the static site only.
func consentScript(defaultAnalyticsOptIn bool) string {
	analyticsDefault := "false"
	if defaultAnalyticsOptIn {
		analyticsDefault = "true"
	}
	return `(() => {
  const STORAGE_KEY = "site_cookie_preferences";
  const banner = document.getElementById("cookie-banner");
  const acceptAll = document.getElementById("accept-all-cookies");
  const manage = document.getElementById("manage-cookies");
  const dialog = document.getElementById("cookie-dialog");
  const save = document.getElementById("save-cookie-preferences");
  const analyticsOptIn = document.getElementById("analytics-opt-in");
  const fallback = { essential: true, analytics: ` + analyticsDefault + ` };
  const readPreference = () => { try { const raw = localStorage.getItem(STORAGE_KEY); return raw ? JSON.parse(raw) : null; } catch { return null; } };
  const writePreference = (value) => { localStorage.setItem(STORAGE_KEY, JSON.stringify(value)); document.documentElement.dataset.analytics = value.analytics ? "enabled" : "disabled"; };
  const current = readPreference();
  if (!current) { banner?.classList.add("visible"); writePreference(fallback); } else { writePreference(current); }
  acceptAll?.addEventListener("click", () => { banner?.classList.remove("visible"); writePreference({ essential: true, analytics: true }); });
  manage?.addEventListener("click", () => { const value = readPreference() || fallback; if (analyticsOptIn) analyticsOptIn.checked = !!value.analytics; dialog?.showModal?.(); });
  save?.addEventListener("click", (event) => { event.preventDefault(); writePreference({ essential: true, analytics: !!analyticsOptIn?.checked }); dialog?.close?.(); banner?.classList.remove("visible"); });
})();`
}

func sitemapXML(baseURL string) string {
	var urls []string
	for _, page := range pageSpecs {
		urls = append(urls, fmt.Sprintf("  <url><loc>%s%s</loc></url>", baseURL, page.Path))
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
%s
</urlset>`, strings.Join(urls, "\n"))
}

const robotsTxt = "User-agent: *\nAllow: /\nSitemap: /sitemap.xml\n"

func llmsTxt(name, summary, contact string) string {
	if contact == "" {
		contact = "contact page"
	}
	return fmt.Sprintf("Project: %s\nSummary: %s\nContact: %s\n", name, truncate(summary, 300), contact)
}

func humansTxt(name string) string {
	return fmt.Sprintf("/* TEAM */\nBusiness: %s\nSite generated by Business Profile Website Builder\n", name)
}
