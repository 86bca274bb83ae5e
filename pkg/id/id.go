package id

import (
	"fmt"
	"os"
	"sync"

	"github.com/bwmarrin/snowflake"
)

type Unique = int64

var generator = new(idGenerator)

type idGenerator struct {
	node *snowflake.Node
	once sync.Once
}

func (g *idGenerator) nextID() int64 {
	g.once.Do(func() {
		node, err := snowflake.NewNode(nodeID())
		if err != nil {
			panic(fmt.Sprintf("failed to initialize snowflake node: %s", err))
		}
		g.node = node
	})
	return g.node.Generate().Int64()
}

// New returns an ID unique within this process and, with high probability,
// among concurrently running wrclip processes.
func New() Unique {
	return generator.nextID()
}

// nodeID folds the pid into the 10 bit snowflake node range so transfers of
// a copy and a paste process can be told apart in interleaved logs.
func nodeID() int64 {
	return int64(os.Getpid()) % 1024
}
