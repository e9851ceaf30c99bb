package update

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("kgassert/update", "graph updates")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
