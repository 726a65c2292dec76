package cbloom

// DeletePolicy controls how Delete treats items that do not appear to be members.
type DeletePolicy uint8

const (
	// DeleteStrict rejects deletes of non-members with ErrNotPresent and deletes
	// that would underflow a counter with ErrCounterUnderflow. Rejected deletes
	// change nothing, including the item count.
	DeleteStrict DeletePolicy = iota

	// DeleteLenient silently ignores deletes of non-members but still decrements
	// the item count, which may therefore go negative. A delete whose indices
	// repeat a slot may push that counter below zero. Delete never returns an
	// error under this policy.
	DeleteLenient
)

func (p DeletePolicy) String() string {
	switch p {
	case DeleteStrict:
		return "strict"
	case DeleteLenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// Option configures a Filter at construction.
type Option func(*config)

type config struct {
	family HashFamily
	policy DeletePolicy
}

func defaultConfig() config {
	return config{
		family: Polynomial,
		policy: DeleteStrict,
	}
}

// WithHashFamily selects the hash family used to derive counter indices.
// The default is Polynomial. A nil family is ignored.
func WithHashFamily(family HashFamily) Option {
	return func(c *config) {
		if family != nil {
			c.family = family
		}
	}
}

// WithDeletePolicy selects how Delete handles non-members. The default is
// DeleteStrict.
func WithDeletePolicy(p DeletePolicy) Option {
	return func(c *config) {
		c.policy = p
	}
}
