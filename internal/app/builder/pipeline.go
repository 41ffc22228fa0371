package builder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/somali-phrasebook/internal/domain"
	"github.com/heartmarshall/somali-phrasebook/internal/phrasebook"
)

// LinkSource yields the ordered phrase links of one run.
type LinkSource interface {
	Links(ctx context.Context) ([]domain.PhraseLink, error)
}

// RecordSink receives the finished phrase-book.
type RecordSink interface {
	WriteRecords(ctx context.Context, records []domain.PhraseBookRecord) error
}

// Options holds pipeline settings.
type Options struct {
	ItalicPolicy domain.ItalicPolicy
	DryRun       bool
}

// Result summarizes a completed run.
type Result struct {
	Links           int
	Phrases         int
	Buckets         int
	Records         int
	ItalicConflicts int
	Written         bool
	Duration        time.Duration
}

// Pipeline reads links, clusters them into buckets, expands the buckets
// into records and hands the records to the sink.
type Pipeline struct {
	log    *slog.Logger
	source LinkSource
	sink   RecordSink
	opts   Options
}

// NewPipeline creates a new Pipeline. An invalid italic policy falls back
// to domain.ItalicPolicyLast.
func NewPipeline(log *slog.Logger, source LinkSource, sink RecordSink, opts Options) *Pipeline {
	if !opts.ItalicPolicy.IsValid() {
		opts.ItalicPolicy = domain.ItalicPolicyLast
	}
	return &Pipeline{
		log:    log,
		source: source,
		sink:   sink,
		opts:   opts,
	}
}

// Run executes the whole build. Any stage error aborts the run; the sink
// is only called once every record has been produced.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	var res Result

	// Stage 1: read.
	links, err := stage(ctx, p.log, "read", func() ([]domain.PhraseLink, error) {
		return p.source.Links(ctx)
	})
	if err != nil {
		return res, fmt.Errorf("read links: %w", err)
	}
	res.Links = len(links)

	// Stage 2: cluster.
	c := phrasebook.NewClusterer(phrasebook.WithItalicPolicy(p.opts.ItalicPolicy))
	buckets, err := stage(ctx, p.log, "cluster", func() ([]phrasebook.Bucket, error) {
		for _, l := range links {
			c.Add(l)
		}
		return c.Buckets(), nil
	})
	if err != nil {
		return res, fmt.Errorf("cluster: %w", err)
	}
	res.Phrases = c.Len()
	res.Buckets = len(buckets)

	conflicts := c.Conflicts()
	res.ItalicConflicts = len(conflicts)
	for _, cf := range conflicts {
		p.log.Warn("conflicting italic flag",
			slog.String("phrase", cf.Text),
			slog.Bool("was", cf.Was),
			slog.Bool("seen", cf.Seen),
			slog.Bool("kept", cf.Kept),
			slog.String("policy", p.opts.ItalicPolicy.String()),
		)
	}
	for _, b := range buckets {
		p.log.Debug("bucket",
			slog.String("id", b.ID.String()),
			slog.Int("phrases", b.Len()),
		)
	}

	// Stage 3: expand.
	records, err := stage(ctx, p.log, "expand", func() ([]domain.PhraseBookRecord, error) {
		return phrasebook.Expand(buckets), nil
	})
	if err != nil {
		return res, fmt.Errorf("expand: %w", err)
	}
	res.Records = len(records)

	// Stage 4: write.
	if p.opts.DryRun {
		p.log.Info("dry run: skipping write", slog.Int("records", len(records)))
	} else {
		if _, err := stage(ctx, p.log, "write", func() (struct{}, error) {
			return struct{}{}, p.sink.WriteRecords(ctx, records)
		}); err != nil {
			return res, fmt.Errorf("write records: %w", err)
		}
		res.Written = true
	}

	res.Duration = time.Since(start)
	p.log.Info("pipeline completed",
		slog.Int("links", res.Links),
		slog.Int("phrases", res.Phrases),
		slog.Int("buckets", res.Buckets),
		slog.Int("records", res.Records),
		slog.Int("italic_conflicts", res.ItalicConflicts),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// stage runs fn after checking ctx, logging its start and outcome.
func stage[T any](ctx context.Context, log *slog.Logger, name string, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	start := time.Now()
	log.Info("starting stage", slog.String("stage", name))

	out, err := fn()
	if err != nil {
		log.Warn("stage failed",
			slog.String("stage", name),
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)),
		)
		return zero, err
	}

	log.Info("stage completed",
		slog.String("stage", name),
		slog.Duration("duration", time.Since(start)),
	)
	return out, nil
}
