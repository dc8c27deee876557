package common

import (
	"fmt"
	"hash/fnv"
)

var pseudonymAdjectives = []string{
	"amber", "bold", "brave", "bright", "calm", "clever", "daring", "eager",
	"gentle", "golden", "honest", "humble", "keen", "kind", "lively", "loyal",
	"mellow", "noble", "patient", "quiet", "rising", "serene", "silver",
	"steady", "sturdy", "sunny", "swift", "tranquil", "vivid", "wise",
}

var pseudonymAnimals = []string{
	"badger", "bison", "crane", "deer", "dolphin", "eagle", "falcon", "fox",
	"hawk", "heron", "ibex", "jay", "koala", "lark", "lynx", "marten",
	"otter", "owl", "panda", "petrel", "raven", "robin", "seal", "sparrow",
	"swan", "tiger", "turtle", "whale", "wolf", "wren",
}

// Pseudonym derives a stable display name from a persistent user ID, so
// leaderboards never expose real names while the same user always shows up
// under the same alias.
func Pseudonym(userID string) string {
	h := fnv.New32a()
	h.Write([]byte(userID))
	sum := h.Sum32()

	adjective := pseudonymAdjectives[sum%uint32(len(pseudonymAdjectives))]
	animal := pseudonymAnimals[(sum/uint32(len(pseudonymAdjectives)))%uint32(len(pseudonymAnimals))]
	return fmt.Sprintf("%s-%s-%02d", adjective, animal, sum%100)
}
