// Package audio locates and downloads the pronunciation clips that the
// dictionary site serves for each search result.
package audio
