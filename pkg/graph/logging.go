package graph

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("kgassert/graph", "knowledge graph model")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
