package keys

import (
	"bytes"
	"sort"
	"strings"
	"testing"
)

func TestEncodeInt_Order(t *testing.T) {
	nums := []int64{-9223372036854775808, -1000, -1, 0, 1, 2, 15, 16, 1000, 9223372036854775807}

	encoded := make([]string, len(nums))
	for i, n := range nums {
		encoded[i] = EncodeInt(n)
		if len(encoded[i]) != 16 {
			t.Errorf("EncodeInt(%d) = %q, want 16 digits", n, encoded[i])
		}
	}

	if !sort.StringsAreSorted(encoded) {
		t.Errorf("encoded ints are not byte ordered: %v", encoded)
	}
}

func TestEncodeInt_Known(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "8000000000000000"},
		{1, "8000000000000001"},
		{-1, "7fffffffffffffff"},
		{255, "80000000000000ff"},
	}

	for _, tt := range tests {
		if got := EncodeInt(tt.n); got != tt.expected {
			t.Errorf("EncodeInt(%d) = %q, want %q", tt.n, got, tt.expected)
		}
	}
}

func TestMovie(t *testing.T) {
	key := Movie(2)
	if !bytes.HasPrefix(key, Movies()) {
		t.Errorf("movie key %q lacks movies prefix", key)
	}
	if string(key) != "movie/8000000000000002" {
		t.Errorf("unexpected movie key %q", key)
	}
}

func TestActorPrefix_MatchesPartition(t *testing.T) {
	tests := []struct {
		movieID  int64
		actor    string
		prefix   string
		expected bool
	}{
		{2, "Meryl Streep", "", true},
		{2, "Meryl Streep", "Meryl", true},
		{2, "Meryl Streep", "Meryl Streep", true},
		{2, "Meryl Streep", "meryl", false},
		{2, "Jim Broadbent", "Meryl", false},
		{3, "Meryl Streep", "", false},
		{20, "Meryl Streep", "", false},
	}

	for _, tt := range tests {
		got := bytes.HasPrefix(Actor(tt.movieID, tt.actor), ActorPrefix(2, tt.prefix))
		if got != tt.expected {
			t.Errorf("Actor(%d, %q) has prefix ActorPrefix(2, %q) = %v, want %v",
				tt.movieID, tt.actor, tt.prefix, got, tt.expected)
		}
	}
}

func TestRole_OrdersByRoleThenActor(t *testing.T) {
	roleKeys := []string{
		string(Role(2, "Leader's Father", "Iain Glen")),
		string(Role(2, "Lead", "Zed")),
		string(Role(2, "Lead Stand-in", "Meryl Fictional")),
		string(Role(2, "Lead", "Anna")),
	}
	sort.Strings(roleKeys)

	var order []string
	for _, k := range roleKeys {
		rest := strings.TrimPrefix(k, "cast/role/"+EncodeInt(2)+"/")
		order = append(order, strings.Replace(rest, roleSep, "|", 1))
	}

	expected := []string{"Lead|Anna", "Lead|Zed", "Lead Stand-in|Meryl Fictional", "Leader's Father|Iain Glen"}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("role order = %v, want %v", order, expected)
		}
	}
}

func TestRolePrefix_MatchesRoleNames(t *testing.T) {
	if !bytes.HasPrefix(Role(2, "Lead", "Anna"), RolePrefix(2, "Le")) {
		t.Error("expected role Lead to match prefix Le")
	}
	if bytes.HasPrefix(Role(2, "Margaret", "Meryl"), RolePrefix(2, "Le")) {
		t.Error("expected role Margaret not to match prefix Le")
	}
	if bytes.HasPrefix(Role(2, "Lead", "Anna"), ActorPrefix(2, "")) {
		t.Error("role keys must not share the actor keyspace")
	}
}

func TestValidName(t *testing.T) {
	if !ValidName("Margaret Thatcher") {
		t.Error("expected plain name to be valid")
	}
	if ValidName("bad\x00name") {
		t.Error("expected NUL name to be invalid")
	}
}
