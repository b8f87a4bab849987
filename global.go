package loon

import (
	"sync"
	"sync/atomic"
)

// The process-wide dictionary is an immutable snapshot behind an atomic
// slot: readers always observe either the previous or the fully built next
// dictionary, never a partial state.
var (
	installed   atomic.Pointer[Dictionary]
	installOnce sync.Once
)

// SetConfig builds a Dictionary from cfg and installs it for T and
// Translate. The swap is atomic, and a failed build leaves the current
// dictionary untouched. Passing nil installs DefaultConfig.
func SetConfig(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	dict, err := cfg.Build()
	if err != nil {
		return err
	}

	installed.Store(dict)
	return nil
}

// Translate resolves key against the installed dictionary. The first call
// without SetConfig builds from DefaultConfig, so translation files under
// config/locales work with zero setup.
func Translate(key string, opts ...TranslateOption) (string, error) {
	return currentDictionary().Translate(key, opts...)
}

// T is shorthand for Translate.
func T(key string, opts ...TranslateOption) (string, error) {
	return Translate(key, opts...)
}

func currentDictionary() *Dictionary {
	if dict := installed.Load(); dict != nil {
		return dict
	}

	installOnce.Do(func() {
		dict, err := DefaultConfig().Build()
		if err != nil {
			dict = newDictionary(NewConfig(), nil)
		}
		// a concurrent SetConfig wins over the lazy default
		installed.CompareAndSwap(nil, dict)
	})

	return installed.Load()
}
