package domain

import "time"

// MatchReasonMutualLike is the only reason this service records; the field
// is provenance, never branched on.
const MatchReasonMutualLike = "mutual_like"

// Match is an undirected edge. UserA < UserB always holds (canonical order),
// which gives the unordered pair its uniqueness constraint.
type Match struct {
	ID        int64     `json:"id" db:"id"`
	UserA     string    `json:"user_a" db:"user_a"`
	UserB     string    `json:"user_b" db:"user_b"`
	Reason    string    `json:"reason" db:"reason"`
	Intros    []string  `json:"intros,omitempty" db:"intros"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (m *Match) HasUser(userID string) bool {
	return m.UserA == userID || m.UserB == userID
}

func (m *Match) OtherUser(userID string) (string, bool) {
	if m.UserA == userID {
		return m.UserB, true
	}
	if m.UserB == userID {
		return m.UserA, true
	}
	return "", false
}

// CanonicalPair orders two user ids so {a,b} and {b,a} map to one row.
func CanonicalPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}
