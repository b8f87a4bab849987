package loon

import "strconv"

// TranslateOption adjusts a single Translate call.
type TranslateOption func(*translateOpts)

type translateOpts struct {
	locale     string
	defaultKey string
	vars       map[string]string
	count      *int
}

func newTranslateOpts(opts []TranslateOption) *translateOpts {
	o := &translateOpts{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}
	return o
}

func (o *translateOpts) setVar(name, value string) {
	if o.vars == nil {
		o.vars = make(map[string]string)
	}
	o.vars[name] = value
}

// WithLocale requests a specific locale for this call. The default and
// fallback locales are still tried when the requested locale misses.
func WithLocale(locale string) TranslateOption {
	return func(o *translateOpts) {
		o.locale = locale
	}
}

// WithVars supplies interpolation variables. Entries merge over variables
// set earlier in the option list.
func WithVars(vars map[string]string) TranslateOption {
	return func(o *translateOpts) {
		for name, value := range vars {
			o.setVar(name, value)
		}
	}
}

// WithVar supplies a single interpolation variable. Sugar over WithVars.
func WithVar(name, value string) TranslateOption {
	return func(o *translateOpts) {
		o.setVar(name, value)
	}
}

// WithDefaultKey resolves another key when the primary key is missing from
// every candidate locale.
func WithDefaultKey(key string) TranslateOption {
	return func(o *translateOpts) {
		o.defaultKey = key
	}
}

// WithCount selects a Rails style count variant of the key (zero, one,
// other) and exposes the count as the %{count} variable.
func WithCount(count int) TranslateOption {
	return func(o *translateOpts) {
		o.count = &count
		o.setVar("count", strconv.Itoa(count))
	}
}
