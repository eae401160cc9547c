package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/color-game/palettes/datastore"
	"github.com/color-game/palettes/models"
	"github.com/color-game/palettes/palette"
)

// Scheduler generates the palette of the day at every local midnight.
type Scheduler struct {
	DailyPaletteRepo datastore.DailyPaletteRepository
	Logger           hclog.Logger

	// Generator draws the replacement palette for RegenerateDailyPalette.
	// Scheduled runs use a generator seeded from the date instead.
	Generator *palette.Generator

	// Now is overridable for tests.
	Now func() time.Time

	stopOnce sync.Once
	done     chan struct{}
}

func NewScheduler(repo datastore.DailyPaletteRepository, logger hclog.Logger) *Scheduler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Scheduler{
		DailyPaletteRepo: repo,
		Logger:           logger.Named("scheduler"),
		Generator:        palette.NewGenerator(nil),
		Now:              time.Now,
		done:             make(chan struct{}),
	}
}

// DailySeed turns a calendar date into a generator seed (YYYYMMDD), so the
// same day always produces the same palette.
func DailySeed(date time.Time) int64 {
	return int64(date.Year())*10000 + int64(date.Month())*100 + int64(date.Day())
}

// Start makes sure today's palette exists, then regenerates at each midnight
// until ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	if _, err := s.GenerateDailyPalette(ctx); err != nil {
		s.Logger.Error("initial daily palette generation failed", "error", err)
	}

	go func() {
		for {
			now := s.Now()
			nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
			wait := nextMidnight.Sub(now)
			s.Logger.Info("next daily palette generation scheduled", "in", wait.Round(time.Second))

			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
				if _, err := s.GenerateDailyPalette(ctx); err != nil {
					s.Logger.Error("daily palette generation failed", "error", err)
				}
			case <-ctx.Done():
				timer.Stop()
				return
			case <-s.done:
				timer.Stop()
				return
			}
		}
	}()
}

// Stop stops the scheduler. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.Logger.Info("scheduler stopped")
	})
}

// GenerateDailyPalette returns today's palette, creating it from the date
// seed if needed.
func (s *Scheduler) GenerateDailyPalette(ctx context.Context) (models.DailyPalette, error) {
	day := datastore.StartOfDay(s.Now())
	logger := s.Logger.With("date", day.Format("2006-01-02"))

	existing, err := s.DailyPaletteRepo.GetByDate(ctx, day)
	if err == nil {
		logger.Debug("daily palette already exists", "harmony", existing.Harmony)
		return existing, nil
	}
	if !datastore.IsNoRows(err) {
		return models.DailyPalette{}, err
	}

	p, err := palette.NewSeededGenerator(DailySeed(day)).Generate(palette.LockMask{}, nil, palette.Random)
	if err != nil {
		return models.DailyPalette{}, err
	}

	saved, err := s.DailyPaletteRepo.Create(ctx, s.dailyPalette(day, p))
	if err != nil {
		return models.DailyPalette{}, err
	}

	logger.Info("generated daily palette", "harmony", saved.Harmony, "base", saved.Base.Hex())
	return saved, nil
}

// RegenerateDailyPalette replaces today's palette with a freshly drawn one.
// The stored palette is swapped in one upsert, so a failed write leaves the
// previous palette in place.
func (s *Scheduler) RegenerateDailyPalette(ctx context.Context) (models.DailyPalette, error) {
	day := datastore.StartOfDay(s.Now())

	p, err := s.Generator.Generate(palette.LockMask{}, nil, palette.Random)
	if err != nil {
		return models.DailyPalette{}, err
	}

	saved, err := s.DailyPaletteRepo.Upsert(ctx, s.dailyPalette(day, p))
	if err != nil {
		return models.DailyPalette{}, err
	}

	s.Logger.Info("regenerated daily palette", "date", day.Format("2006-01-02"), "harmony", saved.Harmony, "base", saved.Base.Hex())
	return saved, nil
}

func (s *Scheduler) dailyPalette(day time.Time, p palette.Palette) models.DailyPalette {
	return models.DailyPalette{
		Date:      day,
		Base:      p.Base,
		Colors:    p.Colors,
		Harmony:   p.Harmony,
		CreatedAt: s.Now(),
	}
}
