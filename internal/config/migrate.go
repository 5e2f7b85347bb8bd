package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedSchema indicates a file written by a newer release. The
// resolver refuses to run against it rather than truncate fields it does
// not understand.
var ErrUnsupportedSchema = errors.New("config file schema is newer than this release supports")

// ReportEntry names a setting that could not be carried forward during a
// schema upgrade, and why.
type ReportEntry struct {
	Key    string
	Reason string
}

// Report accumulates per-rule migration failures and deliberate drops.
// A non-empty report is surfaced to the user as a warning, never an error.
type Report []ReportEntry

// rule is one transformation within a schema step. apply receives the value
// currently stored under key and rewrites the settings mapping; returning an
// error means the value failed the rule's precondition, in which case the
// key is removed (it has no representation in the target schema) and the
// failure lands in the report. Rules never abort the migration.
type rule struct {
	key   string
	apply func(settings map[string]Value, v Value) error
}

// migration is the ordered rule table for one schema step.
type migration struct {
	from, to int
	rules    []rule
}

// migrations, in order. Upgrades apply every step between the file's version
// and the current one; steps are never skipped, so a schema-1 file passes
// through the schema-2 shape on its way to 3.
var migrations = []migration{
	{from: 1, to: 2, rules: []rule{
		renameRule("port", "ssh_port"),
		renameRule("socks_port", "tunnel_port"),
		renameRule("jumphost", "jump_host"),
		renameRule("use_sshpass", "sshpass"),
		{key: "host_alias", apply: splitHostAlias},
		dropRule("legacy_flag", "obsolete setting with no replacement"),
	}},
	{from: 2, to: 3, rules: []rule{
		{key: "ssh_port", apply: stringToInt("ssh_port")},
		{key: "tunnel_port", apply: stringToInt("tunnel_port")},
		{key: "domains", apply: stringToList("domains")},
		{key: "strict_hostkey", apply: strictHostkeyToOption},
	}},
}

// Migrate upgrades doc in place to CurrentSchemaVersion and returns the
// migration report. Migrating an already-current document is a no-op with
// an empty report. Persisting the result is the caller's responsibility.
func Migrate(doc *Document) (Report, error) {
	return migrateTo(doc, CurrentSchemaVersion)
}

func migrateTo(doc *Document, target int) (Report, error) {
	if doc.Version > target {
		return nil, fmt.Errorf("%w: file has schema %d, this build understands up to %d",
			ErrUnsupportedSchema, doc.Version, target)
	}

	var report Report
	for _, step := range migrations {
		if step.from < doc.Version || step.to > target {
			continue
		}
		for _, r := range step.rules {
			val, ok := doc.Settings[r.key]
			if !ok {
				// Nothing to transform; minimal configs are fine.
				continue
			}
			if err := r.apply(doc.Settings, val); err != nil {
				delete(doc.Settings, r.key)
				report = append(report, ReportEntry{Key: r.key, Reason: err.Error()})
			}
		}
		doc.Version = step.to
	}
	return report, nil
}

func renameRule(from, to string) rule {
	return rule{key: from, apply: func(settings map[string]Value, v Value) error {
		delete(settings, from)
		settings[to] = v
		return nil
	}}
}

func dropRule(key, reason string) rule {
	return rule{key: key, apply: func(settings map[string]Value, v Value) error {
		// Deliberate drop: the user should still hear the setting is gone.
		return errors.New(reason)
	}}
}

// splitHostAlias turns the legacy single "alias=fqdn" string into an entry
// in the per-host alias table, merging with any aliases already present.
func splitHostAlias(settings map[string]Value, v Value) error {
	raw, ok := v.AsString()
	if !ok {
		return fmt.Errorf("expected \"alias=fqdn\" string, found %s", v.Kind())
	}
	alias, fqdn, found := strings.Cut(raw, "=")
	alias = strings.TrimSpace(alias)
	fqdn = strings.TrimSpace(fqdn)
	if !found || alias == "" || fqdn == "" {
		return fmt.Errorf("malformed alias %q, expected \"alias=fqdn\"", raw)
	}

	hosts := map[string]Value{}
	if existing, ok := settings["hosts"].AsTable(); ok {
		for key, val := range existing {
			hosts[key] = val
		}
	}
	hosts[alias] = StringValue(fqdn)
	settings["hosts"] = TableValue(hosts)
	delete(settings, "host_alias")
	return nil
}

func stringToInt(key string) func(map[string]Value, Value) error {
	return func(settings map[string]Value, v Value) error {
		if _, ok := v.AsInt(); ok {
			// Already numeric; hand-edited files often get ahead of the tag.
			return nil
		}
		raw, ok := v.AsString()
		if !ok {
			return fmt.Errorf("expected numeric string, found %s", v.Kind())
		}
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("value %q is not a number", raw)
		}
		settings[key] = IntValue(n)
		return nil
	}
}

func stringToList(key string) func(map[string]Value, Value) error {
	return func(settings map[string]Value, v Value) error {
		if _, ok := v.AsList(); ok {
			return nil
		}
		raw, ok := v.AsString()
		if !ok {
			return fmt.Errorf("expected string of names, found %s", v.Kind())
		}
		fields := strings.FieldsFunc(raw, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		settings[key] = StringListValue(fields...)
		return nil
	}
}

// strictHostkeyToOption folds the retired strict_hostkey boolean into the
// generic ssh_options list.
func strictHostkeyToOption(settings map[string]Value, v Value) error {
	strict, ok := v.AsBool()
	if !ok {
		return fmt.Errorf("expected boolean, found %s", v.Kind())
	}
	mode := "no"
	if strict {
		mode = "yes"
	}

	var options []Value
	if existing, ok := settings["ssh_options"].AsList(); ok {
		options = append(options, existing...)
	}
	options = append(options, StringValue("StrictHostKeyChecking="+mode))
	settings["ssh_options"] = ListValue(options...)
	delete(settings, "strict_hostkey")
	return nil
}
