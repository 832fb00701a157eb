package node

import (
	"net/http"

	"github.com/clarel-c/go-mydex/api"
	"github.com/clarel-c/go-mydex/db"
	"github.com/clarel-c/go-mydex/exchange"
	"github.com/clarel-c/go-mydex/log"
	"github.com/clarel-c/go-mydex/token"
	"github.com/clarel-c/go-mydex/token/memtoken"

	// register the database backends
	_ "github.com/clarel-c/go-mydex/db/badgerdb"
	_ "github.com/clarel-c/go-mydex/db/boltdb"
)

// Node is the central controller of the exchange, it owns the
// storage, the token bindings and the settlement manager and serves
// the http API.
type Node struct {
	config *Config

	database db.Database
	tokens   *token.Registry
	ex       *exchange.Manager
}

// NewNode creates a Node with all its managers wired up.
func NewNode(conf *Config) *Node {
	ctor, err := db.GetDB(conf.DBBackend)
	if err != nil {
		log.Fatalf("get db backend failed: %v", err)
	}
	database := ctor(conf.DBPath)

	tokens := token.NewRegistry()
	for _, tc := range conf.Tokens {
		tokens.Register(tc.ID, memtoken.New(tc.Name, tc.Symbol, tc.Decimals, tc.Supply, tc.Issuer))
		log.Infow("token registered", "id", tc.ID, "symbol", tc.Symbol, "supply", tc.Supply)
	}

	ex, err := exchange.NewManager(database, tokens, conf.CustodyAccount, conf.FeeAccount, conf.FeePercent)
	if err != nil {
		log.Fatalf("create exchange manager failed: %v", err)
	}

	return &Node{
		config:   conf,
		database: database,
		tokens:   tokens,
		ex:       ex,
	}
}

// Start serves the http API until the process exits.
func (n *Node) Start() {
	defer n.database.Close()

	handler := api.NewHandler(n.ex, n.tokens)

	log.Infow("start serving", "port", n.config.Port, "feeAccount", n.ex.FeeAccount(), "feePercent", n.ex.FeePercent())
	if err := http.ListenAndServe(":"+n.config.Port, handler); err != nil {
		log.Fatalf("serve http failed: %v", err)
	}
}
