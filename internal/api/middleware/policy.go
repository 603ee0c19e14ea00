package middleware

// Access is the requirement a route places on inbound requests.
type Access int

const (
	// Public routes skip token handling entirely.
	Public Access = iota
	// Authenticated routes require a valid token, with any authority set.
	Authenticated
	// WithAuthorities routes require a valid token carrying at least one of
	// the rule's named authorities.
	WithAuthorities
)

// Rule binds a method and an echo route template to an access requirement.
type Rule struct {
	Method      string
	Path        string
	Access      Access
	Authorities []string
}

// Policy is an ordered, immutable route policy table. The first matching
// rule wins; routes without a rule require authentication.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) Policy {
	return Policy{rules: rules}
}

// Lookup resolves the rule for a routed request. Path is matched against the
// registered route template, not the raw URL, so path parameters never leak
// into the table.
func (p Policy) Lookup(method, path string) Rule {
	for _, r := range p.rules {
		if r.Method == method && r.Path == path {
			return r
		}
	}
	return Rule{Method: method, Path: path, Access: Authenticated}
}

// hasAny reports whether the granted authority set intersects the required one.
func hasAny(granted, required []string) bool {
	if len(required) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(granted))
	for _, g := range granted {
		set[g] = struct{}{}
	}
	for _, r := range required {
		if _, ok := set[r]; ok {
			return true
		}
	}
	return false
}
