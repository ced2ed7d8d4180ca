// Package keys provides byte-ordered key encoding for the local entity store.
//
// Keys mirror the DynamoDB layout: a movie keyspace ordered by id, a cast
// keyspace partitioned by movie id and ordered by actor name, and a role
// keyspace over the same partitions ordered by role name. Every key of a
// partition shares a common prefix, so a prefix iteration reads one partition
// in sort key order.
package keys

import (
	"fmt"
	"strings"
)

const (
	moviePrefix = "movie/"
	actorPrefix = "cast/actor/"
	rolePrefix  = "cast/role/"

	// roleSep ends the role name in a role key so that roles sharing a
	// prefix sort by role name first and actor name second.
	roleSep = "\x00"
)

// EncodeInt renders n as 16 hex digits whose byte order matches numeric order,
// negative numbers included.
func EncodeInt(n int64) string {
	return fmt.Sprintf("%016x", uint64(n)^(1<<63))
}

// Movies is the prefix of every movie key.
func Movies() []byte {
	return []byte(moviePrefix)
}

// Movie returns the key of a movie.
func Movie(id int64) []byte {
	return []byte(moviePrefix + EncodeInt(id))
}

// Actor returns the primary key of a cast member.
func Actor(movieID int64, actorName string) []byte {
	return []byte(actorPrefix + EncodeInt(movieID) + "/" + actorName)
}

// Role returns the role index key of a cast member. Role names are not
// unique, so the actor name completes the key.
func Role(movieID int64, roleName, actorName string) []byte {
	return []byte(rolePrefix + EncodeInt(movieID) + "/" + roleName + roleSep + actorName)
}

// ActorPrefix returns the prefix matching actor names in movieID's partition
// that begin with prefix.
func ActorPrefix(movieID int64, prefix string) []byte {
	return []byte(actorPrefix + EncodeInt(movieID) + "/" + prefix)
}

// RolePrefix returns the prefix matching role names in movieID's partition
// that begin with prefix.
func RolePrefix(movieID int64, prefix string) []byte {
	return []byte(rolePrefix + EncodeInt(movieID) + "/" + prefix)
}

// ValidName reports whether s can be embedded in a role key.
func ValidName(s string) bool {
	return !strings.Contains(s, roleSep)
}
