// Package pipeline runs the load → binarize → extract → select sequence for
// each sample and accumulates one descriptor record per image.
package pipeline

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/shapelab/digitshape/internal/config"
	"github.com/shapelab/digitshape/internal/dataset"
	"github.com/shapelab/digitshape/internal/imaging"
	"github.com/shapelab/digitshape/internal/regions"
)

// Processor turns samples into descriptor records. It holds no cross-call
// state beyond the read-only configuration and the image cache, so Process
// is safe to call from multiple goroutines.
type Processor struct {
	cfg   config.Config
	cache *imaging.ImageCache
	log   zerolog.Logger
}

// New creates a processor for the given configuration.
func New(cfg config.Config, log zerolog.Logger) *Processor {
	return &Processor{
		cfg:   cfg,
		cache: imaging.NewImageCache(),
		log:   log,
	}
}

// Process measures one sample. Failures are downgraded to a status on the
// returned record; Process itself never fails.
//
// Processing is deterministic: the same file and configuration always
// produce an identical record.
func (p *Processor) Process(sample dataset.Sample) DescriptorRecord {
	rec := DescriptorRecord{
		Label: sample.Label,
		Path:  sample.Path,
	}

	gray, err := imaging.LoadGray(p.cache, sample.Path)
	if err != nil {
		p.log.Warn().Str("path", sample.Path).Err(err).Msg("failed to load image")
		rec.Status = StatusInvalid
		rec.Err = err.Error()
		return rec
	}

	threshold := p.cfg.Threshold
	if p.cfg.Otsu {
		threshold = imaging.OtsuThreshold(gray)
	}

	bm, err := imaging.Binarize(gray, threshold, p.cfg.Invert)
	if err != nil {
		p.log.Warn().Str("path", sample.Path).Err(err).Msg("failed to binarize image")
		rec.Status = StatusInvalid
		rec.Err = err.Error()
		return rec
	}

	if p.cfg.TrimMargin >= 0 {
		trimmed, ok := imaging.TrimToContent(bm, p.cfg.TrimMargin)
		if !ok {
			rec.Status = StatusNoRegion
			return rec
		}
		bm = trimmed
	}

	found, err := regions.Extract(bm)
	if err != nil {
		p.log.Warn().Str("path", sample.Path).Err(err).Msg("extraction rejected image")
		rec.Status = StatusInvalid
		rec.Err = err.Error()
		return rec
	}

	largest, ok := regions.Largest(found)
	if !ok {
		rec.Status = StatusNoRegion
		return rec
	}

	rec.Area = largest.Area
	rec.Eccentricity = largest.Eccentricity
	rec.EulerNumber = largest.EulerNumber
	rec.Regions = len(found)
	rec.Status = StatusSuccess

	p.log.Debug().
		Str("label", sample.Label).
		Str("path", sample.Path).
		Int("area", largest.Area).
		Float64("eccentricity", largest.Eccentricity).
		Int("euler", largest.EulerNumber).
		Int("regions", len(found)).
		Msg("measured sample")
	return rec
}

// Batch processes every sample with bounded parallelism and returns one
// record per sample, in input order.
//
// Per-image failures never abort the batch; only context cancellation does.
func (p *Processor) Batch(ctx context.Context, samples []dataset.Sample) ([]DescriptorRecord, error) {
	records := make([]DescriptorRecord, len(samples))

	workers := p.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sample := range samples {
		i, sample := i, sample
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records[i] = p.Process(sample)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	success, noRegion, invalid := 0, 0, 0
	for _, rec := range records {
		switch rec.Status {
		case StatusSuccess:
			success++
		case StatusNoRegion:
			noRegion++
		case StatusInvalid:
			invalid++
		}
	}
	p.log.Info().
		Int("samples", len(samples)).
		Int("success", success).
		Int("no_region", noRegion).
		Int("invalid", invalid).
		Msg("batch complete")

	return records, nil
}
