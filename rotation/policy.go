package rotation

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Policy is a named Interval and Alignment pair, as read from a
// configuration file:
//
//	policies:
//	  - name: access-log
//	    interval: daily
//	    alignment: day
type Policy struct {
	Name      string    `yaml:"name,omitempty" json:"name,omitempty"`
	Interval  Interval  `yaml:"interval" json:"interval"`
	Alignment Alignment `yaml:"alignment" json:"alignment"`
}

// Validate verifies that the interval and alignment are defined values.
func (p Policy) Validate() error {
	if !p.Interval.Valid() {
		return illegalArgumentError(fmt.Sprintf("policy %q: unknown interval %d", p.Name, int(p.Interval)))
	}
	if !p.Alignment.Valid() {
		return illegalArgumentError(fmt.Sprintf("policy %q: unknown alignment %d", p.Name, int(p.Alignment)))
	}
	return nil
}

// Trigger returns a RotationTrigger for the policy. A nil cal means the
// host local time zone.
func (p Policy) Trigger(cal *Calendar) (*RotationTrigger, error) {
	return NewRotationTrigger(cal, p.Interval, p.Alignment)
}

// CronSpec returns the standard 5-field cron expression that fires at
// the same instants as the policy. Only policies aligned to their own
// interval boundary, such as Daily with AlignDay, have one.
func (p Policy) CronSpec() (string, bool) {
	if b, ok := boundary(p.Interval); !ok || b != p.Alignment {
		return "", false
	}
	switch p.Interval {
	case Minutely:
		return "* * * * *", true
	case Hourly:
		return "0 * * * *", true
	case Daily:
		return "0 0 * * *", true
	case Weekly:
		return "0 0 * * 1", true
	case Monthly:
		return "0 0 1 * *", true
	default:
		return "0 0 1 1 *", true
	}
}

// String returns a short description such as "access-log: Every day, aligned to day".
func (p Policy) String() string {
	description := fmt.Sprintf("%s, aligned to %s", DescribeInterval(p.Interval), p.Alignment)
	if p.Name == "" {
		return description
	}
	return p.Name + ": " + description
}

type policyDocument struct {
	Policies []Policy `yaml:"policies"`
}

// ParsePolicies decodes a YAML document holding a "policies" list and
// validates every entry.
func ParsePolicies(data []byte) ([]Policy, error) {
	var doc policyDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse policies: %w", err)
	}
	for i, p := range doc.Policies {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("policy %d: %w", i, err)
		}
	}
	return doc.Policies, nil
}
