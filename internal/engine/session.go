package engine

// Entity names as accumulated in the session and reported in results.
const (
	EntityLocation   = "location"
	EntityVIP        = "vip"
	EntityRegular    = "regular"
	EntityLegality   = "legality"
	EntityContact    = "contact"
	EntityManasik    = "manasik"
	EntityUrgency    = "urgency"
	EntityPricing    = "pricing"
	EntityComparison = "comparison"
)

// Session is the mutable conversational state of one user session. It is
// owned by the Engine that created it and mutated only during Search.
type Session struct {
	LastCategory      string
	TokenHistory      [][]string
	Entities          map[string]bool
	QueryCount        int
	PackageQueryCount int
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{Entities: make(map[string]bool)}
}

// rememberEntities folds this query's raised flags into the accumulated set.
// The set only grows; a flag once raised stays for the whole session.
func (s *Session) rememberEntities(flags EntityFlags) {
	for _, name := range flags.names() {
		s.Entities[name] = true
	}
}

// entityNames returns the accumulated entity names in a fixed order.
func (s *Session) entityNames() []string {
	ordered := []string{
		EntityLocation, EntityVIP, EntityRegular, EntityLegality,
		EntityContact, EntityManasik, EntityUrgency, EntityPricing,
		EntityComparison,
	}
	names := make([]string, 0, len(s.Entities))
	for _, name := range ordered {
		if s.Entities[name] {
			names = append(names, name)
		}
	}
	return names
}
