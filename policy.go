package xcmerge

import (
	"fmt"
	"strings"
)

// CollisionPolicy decides what Build does when two message keys produce the same catalog key.
type CollisionPolicy string

const (
	// CollisionOverwrite keeps the entry of the message key that sorts last.
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionFail makes Build return a *CollisionError.
	CollisionFail CollisionPolicy = "fail"
)

// ParseCollisionPolicy accepts the policy names used in config files and flags.
// An empty name means CollisionOverwrite.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CollisionOverwrite:
		return CollisionOverwrite, nil
	case CollisionFail:
		return CollisionFail, nil
	default:
		return "", fmt.Errorf("unknown collision policy %q (want %q or %q)", s, CollisionOverwrite, CollisionFail)
	}
}

// UnmarshalYAML accepts a policy name, or a bool where true means fail.
func (p *CollisionPolicy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*p = ""
		return nil
	case bool:
		if t {
			*p = CollisionFail
		} else {
			*p = CollisionOverwrite
		}
		return nil
	case string:
		parsed, err := ParseCollisionPolicy(t)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	default:
		return fmt.Errorf("collisionPolicy must be a string or bool, got %T", v)
	}
}

// MarshalYAML emits the policy name.
func (p CollisionPolicy) MarshalYAML() (interface{}, error) {
	if p == "" {
		return nil, nil
	}
	return string(p), nil
}
