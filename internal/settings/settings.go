// Package settings persists the user's display preferences: app language
// and date format.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/plantparent/internal/common"
	"github.com/dmitrijs2005/plantparent/internal/i18n"
	"github.com/dmitrijs2005/plantparent/internal/logging"
	"github.com/dmitrijs2005/plantparent/internal/storage/kv"
)

// ErrNotAvailable is returned by features that are announced but not built.
var ErrNotAvailable = errors.New("coming soon")

type DateFormat string

const (
	DateFormatEuropean DateFormat = "DD/MM/YYYY"
	DateFormatUS       DateFormat = "MM/DD/YYYY"
	DateFormatISO      DateFormat = "YYYY-MM-DD"
	DateFormatLong     DateFormat = "DD MMM YYYY"

	DefaultDateFormat = DateFormatEuropean
)

var layouts = map[DateFormat]string{
	DateFormatEuropean: "02/01/2006",
	DateFormatUS:       "01/02/2006",
	DateFormatISO:      "2006-01-02",
	DateFormatLong:     "02 Jan 2006",
}

// DateFormatOption is one entry of the date format picker.
type DateFormatOption struct {
	Format DateFormat
	Region string
}

var DateFormats = []DateFormatOption{
	{Format: DateFormatEuropean, Region: "European"},
	{Format: DateFormatUS, Region: "US"},
	{Format: DateFormatISO, Region: "ISO"},
	{Format: DateFormatLong, Region: "Long"},
}

func (f DateFormat) Validate() error {
	if _, ok := layouts[f]; !ok {
		return fmt.Errorf("%w: unknown date format %q", common.ErrValidation, string(f))
	}
	return nil
}

// Format renders t in format f; unknown formats use DefaultDateFormat.
func (f DateFormat) Format(t time.Time) string {
	layout, ok := layouts[f]
	if !ok {
		layout = layouts[DefaultDateFormat]
	}
	return t.Format(layout)
}

type Settings struct {
	Language   string
	DateFormat DateFormat
}

type Service struct {
	repo kv.Repository
	log  logging.Logger

	mu  sync.RWMutex
	cur Settings
}

// New returns a service holding the defaults until Load is called.
// defaultLanguage is matched against the supported languages.
func New(repo kv.Repository, log logging.Logger, defaultLanguage string) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "settings"),
		cur: Settings{
			Language:   i18n.Code(i18n.Match(defaultLanguage)),
			DateFormat: DefaultDateFormat,
		},
	}
}

// Load reads stored preferences over the current ones. Read failures and
// unknown stored values are logged and leave the current value in place.
func (s *Service) Load(ctx context.Context) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.read(ctx, common.LanguageStorageKey); ok {
		if i18n.IsSupported(v) {
			s.cur.Language = v
		} else {
			s.log.Warn(ctx, "ignoring stored language", "value", v)
		}
	}

	if v, ok := s.read(ctx, common.DateFormatStorageKey); ok {
		if err := DateFormat(v).Validate(); err == nil {
			s.cur.DateFormat = DateFormat(v)
		} else {
			s.log.Warn(ctx, "ignoring stored date format", "value", v)
		}
	}

	return s.cur
}

func (s *Service) read(ctx context.Context, key string) (string, bool) {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "failed to load setting", "key", key, "error", err)
		return "", false
	}
	if len(v) == 0 {
		return "", false
	}
	return string(v), true
}

func (s *Service) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *Service) SetLanguage(ctx context.Context, code string) error {
	if !i18n.IsSupported(code) {
		return fmt.Errorf("%w: unsupported language %q", common.ErrValidation, code)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(ctx, common.LanguageStorageKey, []byte(code)); err != nil {
		return fmt.Errorf("failed to save language: %w", err)
	}
	s.cur.Language = code
	return nil
}

func (s *Service) SetDateFormat(ctx context.Context, f DateFormat) error {
	if err := f.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(ctx, common.DateFormatStorageKey, []byte(f)); err != nil {
		return fmt.Errorf("failed to save date format: %w", err)
	}
	s.cur.DateFormat = f
	return nil
}

// FormatDate renders t in the chosen date format.
func (s *Service) FormatDate(t time.Time) string {
	return s.Current().DateFormat.Format(t)
}

// Export is not available yet.
func (s *Service) Export(context.Context) error {
	return ErrNotAvailable
}
