package miniflux

import "time"

// Entry statuses accepted by the API.
const (
	EntryStatusUnread  = "unread"
	EntryStatusRead    = "read"
	EntryStatusRemoved = "removed"
)

// Sort directions for entry listings.
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// User represents a service account, including profile preferences.
type User struct {
	ID                int64     `json:"id"`
	Username          string    `json:"username"`
	IsAdmin           bool      `json:"is_admin"`
	Theme             string    `json:"theme"`
	Language          string    `json:"language"`
	Timezone          string    `json:"timezone"`
	EntryDirection    string    `json:"entry_sorting_direction"`
	EntriesPerPage    int       `json:"entries_per_page"`
	KeyboardShortcuts bool      `json:"keyboard_shortcuts"`
	ShowReadingTime   bool      `json:"show_reading_time"`
	LastLoginAt       time.Time `json:"last_login_at"`
}

// Category represents a feed category.
type Category struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Title  string `json:"title"`
}

// Subscription is a feed candidate returned by the discover operation.
type Subscription struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// Feed represents a subscribed feed.
type Feed struct {
	ID                  int64     `json:"id"`
	UserID              int64     `json:"user_id"`
	FeedURL             string    `json:"feed_url"`
	SiteURL             string    `json:"site_url"`
	Title               string    `json:"title"`
	CheckedAt           time.Time `json:"checked_at"`
	EtagHeader          string    `json:"etag_header"`
	LastModifiedHeader  string    `json:"last_modified_header"`
	ParsingErrorMessage string    `json:"parsing_error_message"`
	ParsingErrorCount   int       `json:"parsing_error_count"`
	ScraperRules        string    `json:"scraper_rules"`
	RewriteRules        string    `json:"rewrite_rules"`
	Crawler             bool      `json:"crawler"`
	UserAgent           string    `json:"user_agent"`
	Username            string    `json:"username"`
	Password            string    `json:"password"`
	Disabled            bool      `json:"disabled"`
	Category            *Category `json:"category,omitempty"`
}

// FeedIcon is the icon attached to a feed, base64-encoded.
type FeedIcon struct {
	ID       int64  `json:"id"`
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// Enclosure is a media attachment on an entry.
type Enclosure struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	EntryID  int64  `json:"entry_id"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// Entry represents a single feed item.
type Entry struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	FeedID      int64        `json:"feed_id"`
	Status      string       `json:"status"`
	Hash        string       `json:"hash"`
	Title       string       `json:"title"`
	URL         string       `json:"url"`
	CommentsURL string       `json:"comments_url"`
	PublishedAt time.Time    `json:"published_at"`
	Content     string       `json:"content"`
	Author      string       `json:"author"`
	Starred     bool         `json:"starred"`
	Enclosures  []*Enclosure `json:"enclosures,omitempty"`
	Feed        *Feed        `json:"feed,omitempty"`
}

// EntryResultSet is the envelope returned by entry listings.
type EntryResultSet struct {
	Total   int      `json:"total"`
	Entries []*Entry `json:"entries"`
}

// FeedModification is a partial update for a feed. Only non-nil fields are
// sent; a nil field is entirely absent from the payload, which the server
// treats differently from an explicit null.
type FeedModification struct {
	FeedURL      *string `json:"feed_url,omitempty"`
	SiteURL      *string `json:"site_url,omitempty"`
	Title        *string `json:"title,omitempty"`
	CategoryID   *int64  `json:"category_id,omitempty"`
	ScraperRules *string `json:"scraper_rules,omitempty"`
	RewriteRules *string `json:"rewrite_rules,omitempty"`
	Crawler      *bool   `json:"crawler,omitempty"`
	UserAgent    *string `json:"user_agent,omitempty"`
	Username     *string `json:"username,omitempty"`
	Password     *string `json:"password,omitempty"`
	Disabled     *bool   `json:"disabled,omitempty"`
}

// UserModification is a partial update for a user account. Only non-nil
// fields are sent.
type UserModification struct {
	Username          *string `json:"username,omitempty"`
	Password          *string `json:"password,omitempty"`
	IsAdmin           *bool   `json:"is_admin,omitempty"`
	Theme             *string `json:"theme,omitempty"`
	Language          *string `json:"language,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	EntryDirection    *string `json:"entry_sorting_direction,omitempty"`
	EntriesPerPage    *int    `json:"entries_per_page,omitempty"`
	KeyboardShortcuts *bool   `json:"keyboard_shortcuts,omitempty"`
	ShowReadingTime   *bool   `json:"show_reading_time,omitempty"`
}

// String returns a pointer to s, for optional fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for optional fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for optional fields.
func Int(i int) *int { return &i }

// Int64 returns a pointer to i, for optional fields.
func Int64(i int64) *int64 { return &i }
