// Package profile is the player's persisted progress: currency, owned and
// selected characters, and the high score.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"strconv"

	"github.com/milk9111/skyclimb/prefabs"
	"github.com/milk9111/skyclimb/store"
)

const (
	KeyBananas   = "bananas_collected"
	KeySelected  = "selected_character"
	KeyUnlocked  = "unlocked_characters"
	KeyHighScore = "high_score"
)

var (
	ErrInvalidPersistedState = errors.New("profile: invalid persisted state")
	ErrInsufficientFunds     = errors.New("profile: not enough bananas")
	ErrUnknownCharacter      = errors.New("profile: unknown character")
	ErrLocked                = errors.New("profile: character locked")
)

type Profile struct {
	store   store.Store
	catalog *prefabs.Catalog

	Bananas   int
	Selected  string
	Unlocked  []string
	HighScore int
}

// Load reads the profile from s. Values that do not parse are replaced by
// defaults and reported through the returned error, which wraps
// ErrInvalidPersistedState; the profile is always usable.
func Load(s store.Store, catalog *prefabs.Catalog) (*Profile, error) {
	p := &Profile{store: s, catalog: catalog, Selected: catalog.Default}
	var errs []error

	if raw, ok := s.Get(KeyBananas); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidPersistedState, KeyBananas, raw))
		} else {
			p.Bananas = n
		}
	}

	if raw, ok := s.Get(KeyHighScore); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidPersistedState, KeyHighScore, raw))
		} else {
			p.HighScore = n
		}
	}

	p.Unlocked = []string{catalog.Default}
	if raw, ok := s.Get(KeyUnlocked); ok {
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalidPersistedState, KeyUnlocked, err))
		} else {
			for _, id := range ids {
				if _, known := catalog.Lookup(id); known && !slices.Contains(p.Unlocked, id) {
					p.Unlocked = append(p.Unlocked, id)
				}
			}
		}
	}

	if raw, ok := s.Get(KeySelected); ok {
		if _, known := catalog.Lookup(raw); known && p.IsUnlocked(raw) {
			p.Selected = raw
		} else {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidPersistedState, KeySelected, raw))
		}
	}

	return p, errors.Join(errs...)
}

// IsUnlocked reports whether the character is owned or free.
func (p *Profile) IsUnlocked(id string) bool {
	if slices.Contains(p.Unlocked, id) {
		return true
	}
	ch, ok := p.catalog.Lookup(id)
	return ok && ch.Cost == 0
}

// Characters lists the catalog in shop order.
func (p *Profile) Characters() []prefabs.CharacterSpec {
	if p.catalog == nil {
		return nil
	}
	return p.catalog.Characters
}

// SelectedCharacter returns the catalog entry of the selected character.
func (p *Profile) SelectedCharacter() prefabs.CharacterSpec {
	if ch, ok := p.catalog.Lookup(p.Selected); ok {
		return ch
	}
	ch, _ := p.catalog.Lookup(p.catalog.Default)
	return ch
}

func (p *Profile) AddBananas(n int) {
	if n == 0 {
		return
	}
	p.Bananas += n
	p.persist(KeyBananas, strconv.Itoa(p.Bananas))
}

// RecordScore stores score if it beats the high score and reports whether
// it did.
func (p *Profile) RecordScore(score int) bool {
	if score <= p.HighScore {
		return false
	}
	p.HighScore = score
	p.persist(KeyHighScore, strconv.Itoa(score))
	return true
}

// Select makes an owned character the active one.
func (p *Profile) Select(id string) error {
	if _, ok := p.catalog.Lookup(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCharacter, id)
	}
	if !p.IsUnlocked(id) {
		return fmt.Errorf("%w: %q", ErrLocked, id)
	}
	p.Selected = id
	p.persist(KeySelected, id)
	return nil
}

// Purchase buys a locked character with bananas, unlocks and selects it.
func (p *Profile) Purchase(id string) error {
	ch, ok := p.catalog.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCharacter, id)
	}
	if p.IsUnlocked(id) {
		return p.Select(id)
	}
	if p.Bananas < ch.Cost {
		return fmt.Errorf("%w: %q costs %d, have %d", ErrInsufficientFunds, id, ch.Cost, p.Bananas)
	}

	p.Bananas -= ch.Cost
	p.persist(KeyBananas, strconv.Itoa(p.Bananas))
	p.Unlocked = append(p.Unlocked, id)
	if data, err := json.Marshal(p.Unlocked); err == nil {
		p.persist(KeyUnlocked, string(data))
	}
	return p.Select(id)
}

// Choose is the shop button: select when owned, otherwise try to buy.
func (p *Profile) Choose(id string) (purchased bool, err error) {
	if p.IsUnlocked(id) {
		return false, p.Select(id)
	}
	if err := p.Purchase(id); err != nil {
		return false, err
	}
	return true, nil
}

// persist is best-effort: gameplay continues when the store refuses a write.
func (p *Profile) persist(key, value string) {
	if p.store == nil {
		return
	}
	if err := p.store.Set(key, value); err != nil {
		log.Printf("profile: persist %s: %v", key, err)
	}
}
