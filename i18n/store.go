package i18n

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// Store is the localization store: a lazy, process-lifetime cache of
// per-language locale trees with dotted-path lookup, placeholder
// substitution and default-language fallback. Trees are immutable once
// loaded (no hot-reload); concurrent readers are safe.
//
// Every piece of user-facing text in the application is produced through
// Resolve, so an incomplete translation degrades to the default language
// (or a fixed fallback message) instead of breaking the conversation.
type Store struct {
	dir         string // directory holding <code>.json resources
	defaultLang string

	mu      sync.RWMutex
	trees   map[string]*node
	current string
}

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// NewStore creates a store reading locale resources from dir. defaultLang
// is both the initial active language and the fallback target for lookups
// that fail in other languages.
func NewStore(dir, defaultLang string) *Store {
	return &Store{
		dir:         dir,
		defaultLang: defaultLang,
		trees:       make(map[string]*node),
		current:     defaultLang,
	}
}

// Load reads and caches the locale resource for code. It is idempotent:
// an already-cached language returns true without touching the disk.
// A missing or malformed resource is logged and leaves nothing cached for
// that code.
func (s *Store) Load(code string) bool {
	s.mu.RLock()
	_, cached := s.trees[code]
	s.mu.RUnlock()
	if cached {
		return true
	}

	path := filepath.Join(s.dir, code+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("WARN: [I18n] Language file not found: %s", path)
		} else {
			log.Printf("ERROR: [I18n] Failed to read language file %s: %v", path, err)
		}
		return false
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("ERROR: [I18n] Error decoding JSON from language file %s: %v", path, err)
		return false
	}
	root, err := buildNode(raw)
	if err != nil {
		log.Printf("ERROR: [I18n] Invalid structure in language file %s: %v", path, err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, cached := s.trees[code]; !cached {
		s.trees[code] = root
		log.Printf("INFO: [I18n] Successfully loaded language: %s", code)
	}
	return true
}

// SetLanguage makes code the active language, loading it if needed.
// On failure the active language is left alone unless it is itself
// uncached, in which case it reverts to the default code.
func (s *Store) SetLanguage(code string) bool {
	if s.Load(code) {
		s.mu.Lock()
		s.current = code
		s.mu.Unlock()
		log.Printf("INFO: [I18n] Current language set to: %s", code)
		return true
	}

	log.Printf("WARN: [I18n] Failed to set language to %s. It might not be supported or loadable.", code)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, cached := s.trees[s.current]; !cached {
		s.current = s.defaultLang
		log.Printf("INFO: [I18n] Reverted current language to default: %s", s.defaultLang)
	}
	return false
}

// Current returns the active language code.
func (s *Store) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// DefaultLanguage returns the configured default language code.
func (s *Store) DefaultLanguage() string {
	return s.defaultLang
}

// T resolves key in the active language with no placeholders.
func (s *Store) T(key string) string {
	return s.Resolve(key, "", nil)
}

// Resolve retrieves the string stored at the dotted-path key.
//
// lang overrides the active language when non-empty. placeholders, when
// supplied, are substituted into the resolved text by {name}. Lookup
// failures in the target language retry against the default language;
// when that is impossible or also fails a fixed missing-translation
// message embedding the key is returned, never an error.
func (s *Store) Resolve(key, lang string, placeholders map[string]interface{}) string {
	target := lang
	if target == "" {
		target = s.Current()
	}

	// Make sure the target language is loaded, falling back to the default
	// language when it cannot be.
	if !s.Load(target) {
		log.Printf("WARN: [I18n] Target language '%s' could not be loaded for key '%s'. Attempting fallback.", target, key)
		if !s.Load(s.defaultLang) {
			return fmt.Sprintf("Missing translation resources for key: %s (Lang: %s)", key, target)
		}
		log.Printf("INFO: [I18n] Using default language '%s' as fallback for key '%s'.", s.defaultLang, key)
		target = s.defaultLang
	}

	segments := strings.Split(key, ".")

	if text, err := s.walk(target, key, segments, placeholders); err == nil {
		return text
	} else if target != s.defaultLang {
		log.Printf("INFO: [I18n] Key '%s' not found in language '%s' (%v). Attempting fallback to default language.", key, target, err)
		s.mu.RLock()
		_, defaultCached := s.trees[s.defaultLang]
		s.mu.RUnlock()
		if defaultCached {
			if text, fallbackErr := s.walk(s.defaultLang, key, segments, placeholders); fallbackErr == nil {
				return text
			}
			log.Printf("ERROR: [I18n] Key '%s' also not found in default language '%s'.", key, s.defaultLang)
			return fmt.Sprintf("Missing translation for: %s (Lang: %s, Fallback: %s)", key, target, s.defaultLang)
		}
	}

	log.Printf("ERROR: [I18n] Key '%s' not found in language '%s' and no fallback possible.", key, target)
	return fmt.Sprintf("Missing translation for: %s (Lang: %s)", key, target)
}

// walk performs the dotted-path traversal of one cached language tree and
// applies placeholder substitution to the resulting leaf.
func (s *Store) walk(lang, key string, segments []string, placeholders map[string]interface{}) (string, error) {
	s.mu.RLock()
	current, ok := s.trees[lang]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("language '%s' not cached", lang)
	}

	for _, segment := range segments {
		next, err := current.child(segment)
		if err != nil {
			return "", fmt.Errorf("key '%s': %w", key, err)
		}
		current = next
	}

	if current.kind != kindLeaf {
		log.Printf("WARN: [I18n] Key '%s' in lang '%s' did not resolve to a string. Returning its literal form.", key, lang)
		return current.stringify(), nil
	}
	return substitute(key, current.leaf, placeholders), nil
}

// substitute replaces {name} markers in text with the supplied values.
// A marker whose name has no supplied value is a formatting failure local
// to this call: it is logged and the text is returned unformatted, so the
// caller still gets readable output.
func substitute(key, text string, placeholders map[string]interface{}) string {
	if placeholders == nil {
		return text
	}
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if _, ok := placeholders[match[1]]; !ok {
			log.Printf("WARN: [I18n] Key '%s' references placeholder '%s' which was not supplied. Returning unformatted text.", key, match[1])
			return text
		}
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(marker string) string {
		name := marker[1 : len(marker)-1]
		return fmt.Sprintf("%v", placeholders[name])
	})
}
