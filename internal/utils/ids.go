package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	RoomIDLength   = 8
	roomIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateRoomID returns a random alphanumeric room id drawn from a
// cryptographically strong source, so ids are not guessable.
func GenerateRoomID() string {
	b := make([]byte, RoomIDLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(roomIDAlphabet))))
		if err != nil {
			panic("utils: crypto/rand unavailable: " + err.Error())
		}
		b[i] = roomIDAlphabet[n.Int64()]
	}
	return string(b)
}
