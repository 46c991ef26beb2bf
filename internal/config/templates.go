package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# reddit-stock-sentiment-bot configuration
#
# Credentials are NOT stored here. Set them in the environment:
#   REDDIT_CLIENT_ID, REDDIT_CLIENT_SECRET, REDDIT_USER_AGENT,
#   REDDIT_USERNAME, REDDIT_PASSWORD,
#   OPENAI_API_KEY, GOOGLE_APP_PASS,
#   GOOGLE_CREDS_JSON or GOOGLE_CREDS_PATH

# Subreddits to monitor, one worker each.
sources = ["wallstreetbets", "stocks"]

[server]
addr = ":5000"

[logging]
level = "info"

[stream]
poll_interval = "5s"

[openai]
model = "gpt-3.5-turbo"

[email]
enabled = true
smtp_host = "smtp.gmail.com"
smtp_port = 465
from = ""
recipients = []

[sheets]
spreadsheet_id = ""
sheet_name = "Sheet1"

[journal]
enabled = true

[[watchlist]]
ticker = "AAPL"
keywords = ["apple", "aapl"]

[[watchlist]]
ticker = "TSLA"
keywords = ["tesla", "tsla"]
`

// createTemplateConfig writes a starter config.toml so a first run fails
// with actionable validation errors instead of a missing-file error.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing template config: %w", err)
	}
	return nil
}
