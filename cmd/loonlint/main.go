// Command loonlint loads a directory of translation files and reports keys
// missing from some locales and placeholder drift between locales.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	loon "github.com/goliatone/go-loon"
)

func main() {
	dir := flag.String("d", "config/locales", "directory of translation files")
	defaultLocale := flag.String("locale", "en", "default locale")
	failOnIssue := flag.Bool("fail", false, "exit with code 1 if any issue is found")
	flag.Parse()

	dict, err := loon.NewConfig(
		loon.WithDefaultLocale(*defaultLocale),
		loon.WithPathPattern(filepath.Join(*dir, "*.*")),
	).Build()
	if err != nil {
		reportError(err)
	}

	locales := dict.Locales()
	if len(locales) == 0 {
		reportError(fmt.Errorf("no translation files found in %s", *dir))
	}

	report := checkDictionary(dict, locales)
	printReport(report, locales)

	if *failOnIssue && report.hasIssues() {
		os.Exit(1)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "loonlint: %v\n", err)
	os.Exit(1)
}

type lintReport struct {
	allKeys      []string
	missingKeys  map[string][]string
	placeholders map[string][]string
}

func (r *lintReport) hasIssues() bool {
	for _, keys := range r.missingKeys {
		if len(keys) > 0 {
			return true
		}
	}
	for _, notes := range r.placeholders {
		if len(notes) > 0 {
			return true
		}
	}
	return false
}

func checkDictionary(dict *loon.Dictionary, locales []string) *lintReport {
	report := &lintReport{
		missingKeys:  make(map[string][]string, len(locales)),
		placeholders: make(map[string][]string, len(locales)),
	}

	keySet := make(map[string]struct{})
	perLocale := make(map[string]map[string]struct{}, len(locales))
	for _, locale := range locales {
		keys := dict.Keys(locale)
		set := make(map[string]struct{}, len(keys))
		for _, key := range keys {
			set[key] = struct{}{}
			keySet[key] = struct{}{}
		}
		perLocale[locale] = set
	}

	for key := range keySet {
		report.allKeys = append(report.allKeys, key)
	}
	sort.Strings(report.allKeys)

	for _, key := range report.allKeys {
		reference := referencePlaceholders(dict, locales, key)

		for _, locale := range locales {
			if _, ok := perLocale[locale][key]; !ok {
				report.missingKeys[locale] = append(report.missingKeys[locale], key)
				continue
			}
			if drift := placeholderDrift(dict, locale, key, reference); drift != "" {
				report.placeholders[locale] = append(report.placeholders[locale], drift)
			}
		}
	}

	return report
}

// referencePlaceholders uses the first locale holding the key as the
// placeholder baseline the other locales are compared against.
func referencePlaceholders(dict *loon.Dictionary, locales []string, key string) []string {
	segments, err := loon.SplitKey(key)
	if err != nil {
		return nil
	}
	for _, locale := range locales {
		if template, ok := dict.Lookup(locale, segments); ok {
			names := loon.Placeholders(template)
			sort.Strings(names)
			return names
		}
	}
	return nil
}

func placeholderDrift(dict *loon.Dictionary, locale, key string, reference []string) string {
	segments, err := loon.SplitKey(key)
	if err != nil {
		return ""
	}
	template, ok := dict.Lookup(locale, segments)
	if !ok {
		return ""
	}

	names := loon.Placeholders(template)
	sort.Strings(names)

	if strings.Join(names, ",") == strings.Join(reference, ",") {
		return ""
	}
	return fmt.Sprintf("%s: placeholders [%s] differ from [%s]", key, strings.Join(names, " "), strings.Join(reference, " "))
}

func printReport(report *lintReport, locales []string) {
	fmt.Println("=== LOON LINT ===")
	fmt.Println("Locales:", strings.Join(locales, ", "))
	fmt.Println("Total keys:", len(report.allKeys))

	for _, locale := range locales {
		fmt.Printf("\n--- [%s] ---\n", locale)

		if missing := report.missingKeys[locale]; len(missing) > 0 {
			fmt.Println("Missing keys:")
			for _, key := range missing {
				fmt.Println("  -", key)
			}
		} else {
			fmt.Println("Missing keys: none")
		}

		if drift := report.placeholders[locale]; len(drift) > 0 {
			fmt.Println("Placeholder drift:")
			for _, note := range drift {
				fmt.Println("  -", note)
			}
		} else {
			fmt.Println("Placeholder drift: none")
		}
	}
}
