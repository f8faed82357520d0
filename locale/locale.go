// Package locale holds the site's UI strings and picks a language for them.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/HeyGarrison/cakeelizabethdotcom/overlay"
	"github.com/charmbracelet/log"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFiles embed.FS

// ErrUnsupported is returned for a language tag that does not parse.
var ErrUnsupported = errors.New("unsupported language")

// Message ids.
const (
	NavHome         = "NavHome"
	NavAboutUs      = "NavAboutUs"
	NavPricing      = "NavPricing"
	NavContact      = "NavContact"
	OverlayDialog   = "OverlayDialog"
	OverlayClose    = "OverlayClose"
	OverlayPrev     = "OverlayPrev"
	OverlayNext     = "OverlayNext"
	GalleryOpen     = "GalleryOpen"
	GalleryHeading  = "GalleryHeading"
	PricesHeading   = "PricesHeading"
	FlavorsHeading  = "FlavorsHeading"
	ContactFormNote = "ContactFormNote"
	NotFoundTitle   = "NotFoundTitle"
	NotFoundBody    = "NotFoundBody"
	Copyright       = "Copyright"
)

// NewBundle returns a bundle with every embedded message file loaded.
// English is the fallback language.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFiles.ReadDir("messages")
	if err != nil {
		return nil, fmt.Errorf("read message files: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(messageFiles, "messages/"+e.Name()); err != nil {
			return nil, fmt.Errorf("load %s: %w", e.Name(), err)
		}
	}
	return bundle, nil
}

// Localizer translates message ids into one language.
type Localizer struct {
	loc *i18n.Localizer
	tag language.Tag
}

// New returns a Localizer for lang (a BCP 47 tag or an Accept-Language
// value). Languages without a message file fall back to English.
func New(bundle *i18n.Bundle, lang string) (*Localizer, error) {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || (len(tags) == 0 && strings.TrimSpace(lang) != "") {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, lang)
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	tag, _, _ := matcher.Match(tags...)
	base, _ := tag.Base()

	return &Localizer{
		loc: i18n.NewLocalizer(bundle, lang),
		tag: language.Make(base.String()),
	}, nil
}

// Tag returns the language strings are served in.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T returns the message for id, filling templates from data. A missing
// message falls back to its id so a page never renders blank.
func (l *Localizer) T(id string, data ...map[string]any) string {
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	s, err := l.loc.Localize(cfg)
	if err != nil {
		log.Warn("Missing translation", "id", id, "lang", l.tag.String(), "err", err)
		return id
	}
	return s
}

// OverlayLabels returns the accessible names of the image overlay controls.
func (l *Localizer) OverlayLabels() overlay.Labels {
	return overlay.Labels{
		Dialog: l.T(OverlayDialog),
		Close:  l.T(OverlayClose),
		Prev:   l.T(OverlayPrev),
		Next:   l.T(OverlayNext),
	}
}

// Supported lists the base languages that have a message file.
func Supported(bundle *i18n.Bundle) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range bundle.LanguageTags() {
		base, _ := t.Base()
		if !seen[base.String()] {
			seen[base.String()] = true
			out = append(out, base.String())
		}
	}
	sort.Strings(out)
	return out
}
