package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/ttrpg-tools/pkg/ledger"
	"github.com/jwebster45206/ttrpg-tools/pkg/locations"
	"github.com/jwebster45206/ttrpg-tools/pkg/names"
	"github.com/jwebster45206/ttrpg-tools/pkg/titles"
)

// Table kinds.
const (
	KindNames     = "names"
	KindTitles    = "titles"
	KindLocations = "locations"
	KindHistory   = "history"
)

var (
	validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
	validKeyRegex      = regexp.MustCompile(`^[a-z][a-z0-9_ -]*$`)
)

type validatable interface {
	Validate() error
}

// TableValidator checks one data file strictly: known fields only, the
// table's own invariants, and lowercase keys where generators look them up.
type TableValidator struct {
	Kind   string
	errors []string
}

func (v *TableValidator) ValidateFile(filename, kind string) error {
	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("table file must have .json extension: %s", baseName)
	}
	if !validFilenameRegex.MatchString(strings.TrimSuffix(baseName, ".json")) {
		return fmt.Errorf("table filename '%s' must be lowercase snake_case (e.g., fantasy_names.json)", baseName)
	}

	if kind == "" {
		kind = GuessKind(baseName)
		if kind == "" {
			return fmt.Errorf("cannot tell the table kind of %s; pass -kind", baseName)
		}
	}
	v.Kind = kind

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return v.Validate(data, filename)
}

// Validate checks data as a table of v.Kind. filename is used in messages.
func (v *TableValidator) Validate(data []byte, filename string) error {
	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var table validatable
	switch v.Kind {
	case KindNames:
		table = &names.Races{}
	case KindTitles:
		table = &titles.Table{}
	case KindLocations:
		table = &locations.Table{}
	case KindHistory:
		table = &ledger.History{}
	default:
		return fmt.Errorf("unknown table kind %q", v.Kind)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(table); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	if err := table.Validate(); err != nil {
		v.addError(err.Error())
	}
	v.validateKeys(table)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *TableValidator) validateKeys(table validatable) {
	switch t := table.(type) {
	case *names.Races:
		for race := range *t {
			v.validateKey("race", race)
		}
	case *locations.Table:
		for category := range t.Terrain {
			v.validateKey("terrain category", category)
		}
		for category := range t.Prefixes {
			v.validateKey("prefix category", category)
		}
		for category := range t.Suffixes {
			v.validateKey("suffix category", category)
		}
	}
}

func (v *TableValidator) validateKey(fieldName, key string) {
	if !validKeyRegex.MatchString(key) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase, or it can never be selected", fieldName, key))
	}
}

func (v *TableValidator) addError(msg string) {
	v.errors = append(v.errors, msg)
}

// GuessKind infers the table kind from a file name such as
// fantasy_locations_history.json. It returns "" when nothing matches.
func GuessKind(baseName string) string {
	name := strings.ToLower(baseName)
	switch {
	case strings.Contains(name, "history"):
		return KindHistory
	case strings.Contains(name, "location"):
		return KindLocations
	case strings.Contains(name, "title"):
		return KindTitles
	case strings.Contains(name, "name"):
		return KindNames
	}
	return ""
}
