package cli

import (
	"time"

	"codeberg.org/snonux/hanzirecall/internal/httpclient"
	"codeberg.org/snonux/hanzirecall/internal/search"
)

// Flags holds all command-line flag and argument values
type Flags struct {
	// Positional arguments
	TSVPath       string
	CollectionDir string
	Query         string

	// General flags
	CfgFile    string
	Extended   bool
	MaxResults int
	Verbose    bool

	// Site flags
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		MaxResults: 10,
		BaseURL:    search.DefaultBaseURL,
		UserAgent:  httpclient.DefaultUserAgent,
	}
}

// SetArgs stores the positional arguments in order: ledger, collection, query
func (f *Flags) SetArgs(args []string) {
	f.TSVPath = args[0]
	f.CollectionDir = args[1]
	f.Query = args[2]
}
