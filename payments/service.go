package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/alovak/cardflow-batch/internal/archive"
	"github.com/alovak/cardflow-batch/internal/cardgen"
	"github.com/alovak/cardflow-batch/internal/tabular"
	"github.com/alovak/cardflow-batch/payments/models"
	"golang.org/x/exp/slog"
)

// Archiver moves a processed batch file out of the way.
type Archiver interface {
	Archive(path string, at time.Time) (string, error)
}

type Option func(*Service)

// WithClock replaces time.Now for expiry checks and archive timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithArchiver(a Archiver) Option {
	return func(s *Service) { s.archiver = a }
}

// Service runs batches: it validates every record, aggregates the accepted
// ones and archives the source file.
type Service struct {
	logger    *slog.Logger
	validator *Validator
	archiver  Archiver
	now       func() time.Time
	hashKey   []byte
}

func NewService(logger *slog.Logger, cfg *Config, opts ...Option) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Service{
		logger:   logger.With(slog.String("component", "batch")),
		archiver: archive.FileArchiver{},
		now:      time.Now,
		hashKey:  []byte(cfg.PANHashKey),
	}
	for _, opt := range opts {
		opt(s)
	}

	loc, err := cfg.Location()
	if err != nil {
		s.logger.Info("invalid ExpiryTZ; using local time", slog.String("tz", cfg.ExpiryTZ), slog.Any("err", err))
		loc = time.Local
	}
	s.validator = NewValidator(s.now, loc)

	return s
}

func (s *Service) Validator() *Validator {
	return s.validator
}

// ProcessFile reads the batch at path and runs it through Process.
func (s *Service) ProcessFile(ctx context.Context, path string) (*models.Totals, error) {
	rows, err := tabular.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return s.Process(ctx, rows, path)
}

// Process parses rows (header first), aggregates them and archives the
// source at path. A FormatError aborts the batch before anything is
// archived.
func (s *Service) Process(ctx context.Context, rows [][]string, path string) (*models.Totals, error) {
	records, err := ParseRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("parsing batch: %w", err)
	}

	totals, err := s.Aggregate(ctx, records)
	if err != nil {
		return nil, err
	}

	archived, err := s.archiver.Archive(path, s.now())
	if err != nil {
		return nil, fmt.Errorf("archiving input: %w", err)
	}

	s.logger.Info("batch processed",
		slog.String("input", path),
		slog.String("archived", archived),
		slog.Int("records", len(records)),
		slog.Int("payments", totals.Count),
		slog.String("total", totals.Amount.StringFixed(2)),
	)

	return totals, nil
}

// Aggregate sums the accepted cards. Expired cards and numbers that match
// no brand are skipped without being counted.
func (s *Service) Aggregate(ctx context.Context, records []models.CardRecord) (*models.Totals, error) {
	totals := models.NewTotals()

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if s.validator.Expired(rec.Expiration) || !s.validator.Valid(rec.Number) {
			s.skip(rec, "expired or invalid card")
			continue
		}

		result := s.validator.Process(rec.Number, rec.Amount)
		if !result.IsAccepted() {
			s.skip(rec, result.Reason)
			continue
		}
		totals.Add(result)
	}

	return totals, nil
}

func (s *Service) skip(rec models.CardRecord, reason string) {
	s.logger.Debug("card skipped",
		slog.Int("line", rec.Line),
		slog.String("pan", cardgen.MaskPAN(rec.Number)),
		slog.String("fingerprint", cardgen.Fingerprint(rec.Number, s.hashKey)),
		slog.String("expiration", rec.Expiration.String()),
		slog.String("reason", reason),
	)
}
