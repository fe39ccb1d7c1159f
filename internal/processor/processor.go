package processor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"codeberg.org/snonux/hanzirecall/internal/anki"
	"codeberg.org/snonux/hanzirecall/internal/audio"
	"codeberg.org/snonux/hanzirecall/internal/cli"
	"codeberg.org/snonux/hanzirecall/internal/httpclient"
	"codeberg.org/snonux/hanzirecall/internal/prompt"
	"codeberg.org/snonux/hanzirecall/internal/search"
)

// ErrSelectionOutOfRange is returned when the chosen index has no result
var ErrSelectionOutOfRange = errors.New("selection out of range")

// Processor handles one interactive lookup
type Processor struct {
	flags      *cli.Flags
	logger     *zap.Logger
	searcher   *search.Client
	downloader *audio.Downloader
	ledger     *anki.Ledger
	prompter   *prompt.Prompter
	out        io.Writer
}

// NewProcessor creates a processor that asks questions on in/out
func NewProcessor(flags *cli.Flags, logger *zap.Logger, in io.Reader, out io.Writer) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := httpclient.New(httpclient.Options{
		Timeout:   flags.Timeout,
		UserAgent: flags.UserAgent,
	}, logger)

	return &Processor{
		flags:      flags,
		logger:     logger,
		searcher:   search.NewClient(flags.BaseURL, client, logger),
		downloader: audio.NewDownloader(flags.BaseURL, client, logger),
		ledger:     anki.NewLedger(flags.TSVPath),
		prompter:   prompt.New(in, out),
		out:        out,
	}
}

// Run searches for the query, asks for a choice and a meaning, and records
// the chosen entry. No results is not an error.
func (p *Processor) Run(ctx context.Context) error {
	results, err := p.Search(ctx, p.flags.Query)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(p.out, "No results found")
		return nil
	}

	p.printResults(results)

	index, err := p.prompter.ReadNumber("Choose: ")
	if err != nil {
		return fmt.Errorf("failed to read choice: %w", err)
	}
	if index < 0 || index >= len(results) {
		return fmt.Errorf("%w: %d (have %d results)", ErrSelectionOutOfRange, index, len(results))
	}
	chosen := results[index]

	meaning, err := p.prompter.ReadString("Meaning: ")
	if err != nil {
		return fmt.Errorf("failed to read meaning: %w", err)
	}

	if err := p.Record(ctx, chosen, meaning); err != nil {
		return err
	}

	fmt.Fprintln(p.out, "Done!")
	return nil
}

// Search fetches the search page for query and extracts its results
func (p *Processor) Search(ctx context.Context, query string) ([]search.Result, error) {
	page, err := p.searcher.FetchSearchPage(ctx, query)
	if err != nil {
		return nil, err
	}

	if !p.flags.Extended {
		page = search.Trim(page)
	}

	results := search.Extract(page)
	p.logger.Debug("Extracted results",
		zap.String("query", query),
		zap.Bool("extended", p.flags.Extended),
		zap.Int("results", len(results)))

	if len(results) == 0 {
		p.logDiagnosis(page)
	}
	return results, nil
}

// Record downloads the clip of result and appends its card to the ledger.
// A clip written before a failing ledger append stays on disk.
func (p *Processor) Record(ctx context.Context, result search.Result, meaning string) error {
	audioPath, err := p.downloader.DownloadResult(ctx, result, p.flags.CollectionDir)
	if err != nil {
		return fmt.Errorf("failed to save audio for %s: %w", result.Hanzi, err)
	}
	p.logger.Info("Saved audio", zap.String("path", audioPath))

	card := anki.Card{
		Hanzi:     result.Hanzi,
		Pinyin:    result.Pinyin,
		AudioFile: audioPath,
		Meaning:   meaning,
	}
	if err := p.ledger.Append(card); err != nil {
		return err
	}
	p.logger.Info("Appended card", zap.String("ledger", p.ledger.Path()), zap.String("hanzi", card.Hanzi))

	return nil
}

func (p *Processor) printResults(results []search.Result) {
	limit := p.flags.MaxResults
	if limit <= 0 || limit > len(results) {
		limit = len(results)
	}

	for i, r := range results[:limit] {
		fmt.Fprintf(p.out, "[%d] %s\t%s\t%s\n", i, r.Hanzi, r.Pinyin, r.Gloss)
	}
}

func (p *Processor) logDiagnosis(page string) {
	diag, err := search.Diagnose(page)
	if err != nil {
		p.logger.Debug("Could not diagnose search page", zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.Bool("marker", diag.HasMarker),
		zap.Int("rows", diag.Rows),
		zap.Int("headwords", diag.Headwords),
		zap.Int("pinyin_spans", diag.PinyinSpans),
		zap.Int("audio_triggers", diag.AudioTriggers),
	}
	if diag.LayoutChanged() {
		p.logger.Warn("Search page has result markup but no parsable rows, the site layout may have changed", fields...)
		return
	}
	p.logger.Debug("Search page has no results", fields...)
}
