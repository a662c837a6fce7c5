package cache

import (
	"fmt"

	"github.com/gomodule/redigo/redis"
)

func snapshotKey(matchID string) string {
	return fmt.Sprintf("%s.snapshot", matchID)
}

// SaveSnapshot stores a match's encoded snapshot document.
func SaveSnapshot(matchID string, doc []byte, conn *redis.Conn) error {
	return Set(snapshotKey(matchID), doc, conn)
}

// LoadSnapshot fetches the encoded snapshot document for a match.
// redis.ErrNil surfaces when none was saved.
func LoadSnapshot(matchID string, conn *redis.Conn) ([]byte, error) {
	doc, err := redis.Bytes((*conn).Do("GET", snapshotKey(matchID)))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteSnapshot drops a saved snapshot, e.g. after match cleanup.
func DeleteSnapshot(matchID string, conn *redis.Conn) error {
	return Del(snapshotKey(matchID), conn)
}
