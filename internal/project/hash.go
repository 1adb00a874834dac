package project

import (
	"crypto/sha256"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// Combine строит составной хеш: H( base || part1 || part2 ... ).
// Так ключ кэша связывает содержимое файла с версией инструмента.
func Combine(base Digest, parts ...[]byte) Digest {
	h := sha256.New()
	_, _ = h.Write(base[:])
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// ContentDigest хеширует произвольный контент.
func ContentDigest(content []byte) Digest {
	return sha256.Sum256(content)
}
