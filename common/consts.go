package common

const (
	DEFAULT_CONFIG_DIR  = ".config/"
	DEFAULT_CONFIG_FILE = "config.json"

	DEFAULT_LISTEN_ADDR = ":4000"
	DEFAULT_OUTPUT_DIR  = ".var/generated"

	DEFAULT_THEME_PRESET  = "minimal-light"
	DEFAULT_LAYOUT_PRESET = "local-service-classic"

	// Extraction caps mirrored by the parser
	MAX_LIST_TOKENS   = 20
	MAX_IMAGES        = 12
	MAX_FAQS          = 6
	MAX_QUICK_ANSWERS = 3
)
