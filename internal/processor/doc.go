// Package processor runs one lookup from search to flashcard: it fetches and
// parses the search page, lets the user pick an entry, downloads the entry's
// clip into the collection directory and appends the card to the ledger.
package processor
